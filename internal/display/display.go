// Package display renders the analysis as aligned tables for the CLI
// commands.
package display

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"text/tabwriter"

	"fantasy-nba-mcp/internal/espn"
	"fantasy-nba-mcp/internal/lineup"
	"fantasy-nba-mcp/internal/stats"
)

func rule(w io.Writer, n int) {
	fmt.Fprintln(w, strings.Repeat("=", n))
}

// PlayerScores prints each team's players ordered by season power, then the
// top free agents.
func PlayerScores(w io.Writer, lg *espn.League, scores map[string]*stats.PlayerScore) {
	rule(w, 80)
	fmt.Fprintln(w, "PLAYER POWER SCORES BY TEAM")
	rule(w, 80)

	for _, team := range lg.Teams {
		roster := stats.RosterScores(team.Roster, scores)
		if len(roster) == 0 {
			continue
		}
		fmt.Fprintf(w, "\n%s\n", team.Name)
		printScoreTable(w, roster)
	}

	if len(lg.FreeAgents) > 0 {
		fas := stats.RosterScores(lg.FreeAgents, scores)
		fmt.Fprintln(w, "\nTop Free Agents")
		printScoreTable(w, fas)
	}
}

func printScoreTable(w io.Writer, rows []*stats.PlayerScore) {
	tw := tabwriter.NewWriter(w, 2, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "Player\tGP\tPer-Game\tSeason")
	for _, sc := range rows {
		fmt.Fprintf(tw, "%s\t%.0f\t%.2f\t%.2f\n", sc.Name, sc.GamesPlayed, sc.AdjustedPower, sc.SeasonPower)
	}
	tw.Flush()
}

// TeamRankings prints the power ranking table, best first.
func TeamRankings(w io.Writer, averages []stats.TeamAverage) {
	rule(w, 80)
	fmt.Fprintln(w, "TEAM POWER RANKINGS")
	rule(w, 80)

	tw := tabwriter.NewWriter(w, 2, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "Rank\tTeam\tAvg Season\tAvg Per-Game\tRoster")
	for i, t := range averages {
		fmt.Fprintf(tw, "%d\t%s\t%.2f\t%.2f\t%d\n", i+1, t.Team, t.AvgSeason, t.AvgPerGame, t.RosterSize)
	}
	tw.Flush()
}

// TeamStatistics prints per-team average z-scores by category. sortBy is
// "name", "overall", or a category name.
func TeamStatistics(w io.Writer, averages []stats.TeamAverage, categories []string, sortBy string) {
	rows := make([]stats.TeamAverage, len(averages))
	copy(rows, averages)
	switch sortBy {
	case "name":
		sort.Slice(rows, func(i, j int) bool { return rows[i].Team < rows[j].Team })
	case "overall":
		sort.Slice(rows, func(i, j int) bool {
			return rows[i].OverallAvg(categories) > rows[j].OverallAvg(categories)
		})
	default:
		sort.Slice(rows, func(i, j int) bool {
			return rows[i].CategoryAvg[sortBy] > rows[j].CategoryAvg[sortBy]
		})
	}

	rule(w, 100)
	fmt.Fprintln(w, "TEAM STATISTICS - AVERAGE Z-SCORES BY CATEGORY")
	rule(w, 100)

	tw := tabwriter.NewWriter(w, 2, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "Team\t%s\tRoster\n", strings.Join(categories, "\t"))
	for _, t := range rows {
		parts := make([]string, len(categories))
		for i, cat := range categories {
			parts[i] = fmt.Sprintf("%.3f", t.CategoryAvg[cat])
		}
		fmt.Fprintf(tw, "%s\t%s\t%d\n", t.Team, strings.Join(parts, "\t"), t.RosterSize)
	}
	tw.Flush()
}

// CategoryRankings prints a per-category ranking table for every category.
func CategoryRankings(w io.Writer, averages []stats.TeamAverage, categories []string) {
	rule(w, 80)
	fmt.Fprintln(w, "CATEGORY RANKINGS")
	rule(w, 80)

	for _, cat := range categories {
		rows := make([]stats.TeamAverage, len(averages))
		copy(rows, averages)
		sort.Slice(rows, func(i, j int) bool { return rows[i].CategoryAvg[cat] > rows[j].CategoryAvg[cat] })

		fmt.Fprintf(w, "\n%s Rankings:\n", cat)
		tw := tabwriter.NewWriter(w, 2, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "Rank\tTeam\tAverage")
		for i, t := range rows {
			fmt.Fprintf(tw, "%d\t%s\t%.3f\n", i+1, t.Team, t.CategoryAvg[cat])
		}
		tw.Flush()
	}
}

// OverallRankings prints teams ordered by mean z-score across categories.
func OverallRankings(w io.Writer, averages []stats.TeamAverage, categories []string) {
	rows := make([]stats.TeamAverage, len(averages))
	copy(rows, averages)
	sort.Slice(rows, func(i, j int) bool {
		return rows[i].OverallAvg(categories) > rows[j].OverallAvg(categories)
	})

	rule(w, 80)
	fmt.Fprintln(w, "OVERALL TEAM RANKINGS (Average Z-Score Across All Categories)")
	rule(w, 80)

	tw := tabwriter.NewWriter(w, 2, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "Rank\tTeam\tAvg Z-Score\tRoster")
	for i, t := range rows {
		fmt.Fprintf(tw, "%d\t%s\t%.3f\t%d\n", i+1, t.Team, t.OverallAvg(categories), t.RosterSize)
	}
	tw.Flush()
}

// MatchupResult prints one head-to-head projection with category winners
// and the final category score.
func MatchupResult(w io.Writer, matchupID int, totalsA lineup.Totals, totalsB lineup.Totals, cmp lineup.Comparison, categories []string) {
	rule(w, 100)
	fmt.Fprintf(w, "MATCHUP %d: %s vs %s\n", matchupID, cmp.TeamA, cmp.TeamB)
	rule(w, 100)
	fmt.Fprintf(w, "Projected Games Played: %s = %d, %s = %d\n\n",
		cmp.TeamA, totalsA.GamesPlayed, cmp.TeamB, totalsB.GamesPlayed)

	tw := tabwriter.NewWriter(w, 2, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "Category\t%s\t%s\tWinner\n", cmp.TeamA, cmp.TeamB)
	for _, cat := range categories {
		format := "%.1f"
		if cat == "FT%" {
			format = "%.3f"
		}
		fmt.Fprintf(tw, "%s\t"+format+"\t"+format+"\t%s\n",
			cat, totalsA.Stats[cat], totalsB.Stats[cat], cmp.Winners[cat])
	}
	tw.Flush()
	fmt.Fprintf(w, "\nFINAL: %s %d-%d %s\n", cmp.TeamA, cmp.WinsA, cmp.WinsB, cmp.TeamB)
}
