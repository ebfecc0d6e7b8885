package lineup

import (
	"fantasy-nba-mcp/internal/config"
	"fantasy-nba-mcp/internal/espn"
	"fantasy-nba-mcp/internal/schedule"
	"fantasy-nba-mcp/internal/stats"
)

// Totals is a team's aggregated category line for a matchup window.
// GamesPlayed counts filled lineup slots across all days.
type Totals struct {
	Stats       map[string]float64
	GamesPlayed int
}

// ProjectTeam fills an optimized lineup for each scoring period in the
// matchup and sums the per-game lines. Days with no eligible players simply
// contribute nothing. FT% is computed from the summed FTM/FTA at the end
// rather than averaged per day.
func (pr *Projector) ProjectTeam(team *espn.Team, matchupID int, lg *espn.League, scores map[string]*stats.PlayerScore, statKey string, cal config.Calendar) Totals {
	projectedKey := config.ProjectedStatKey(lg.Year)
	totals := Totals{Stats: make(map[string]float64, len(countedStats)+1)}
	for _, stat := range countedStats {
		totals.Stats[stat] = 0
	}

	for _, period := range cal.Matchups[matchupID] {
		available := schedule.PlayingOn(team.Roster, period, lg)
		if len(available) == 0 {
			continue
		}
		for _, a := range pr.FillDay(available, scores, statKey, projectedKey) {
			if a.Player == nil {
				continue
			}
			for _, stat := range countedStats {
				totals.Stats[stat] += a.Stats[stat]
			}
			totals.GamesPlayed++
		}
	}

	if fta := totals.Stats["FTA"]; fta > 0 {
		totals.Stats["FT%"] = totals.Stats["FTM"] / fta
	} else {
		totals.Stats["FT%"] = 0
	}
	return totals
}

// Comparison is the head-to-head result of one matchup projection.
type Comparison struct {
	TeamA   string
	TeamB   string
	WinsA   int
	WinsB   int
	Ties    int
	Winners map[string]string // category -> winning team name, or "TIE"
}

// Compare scores two teams' totals category by category. A strictly greater
// total wins the category; equal totals award neither side.
func Compare(teamA string, totalsA Totals, teamB string, totalsB Totals, categories []string) Comparison {
	c := Comparison{
		TeamA:   teamA,
		TeamB:   teamB,
		Winners: make(map[string]string, len(categories)),
	}
	for _, cat := range categories {
		a := totalsA.Stats[cat]
		b := totalsB.Stats[cat]
		switch {
		case a > b:
			c.Winners[cat] = teamA
			c.WinsA++
		case b > a:
			c.Winners[cat] = teamB
			c.WinsB++
		default:
			c.Winners[cat] = "TIE"
			c.Ties++
		}
	}
	return c
}
