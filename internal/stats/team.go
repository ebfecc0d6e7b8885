package stats

import (
	"sort"

	"fantasy-nba-mcp/internal/espn"
)

// TeamAverage is one fantasy team's roster-wide averages: per-category mean
// z-score plus mean power, the basis for the power rankings.
type TeamAverage struct {
	Team        string
	RosterSize  int
	CategoryAvg map[string]float64
	AvgPerGame  float64
	AvgSeason   float64
}

// OverallAvg is the mean z-score across all categories, the "overall"
// ranking column.
func (t TeamAverage) OverallAvg(categories []string) float64 {
	if len(categories) == 0 {
		return 0
	}
	sum := 0.0
	for _, cat := range categories {
		sum += t.CategoryAvg[cat]
	}
	return sum / float64(len(categories))
}

// TeamAverages aggregates player scores per roster. Players without a score
// for the period (no data) are skipped; a team whose whole roster lacks data
// is dropped. Result is ordered best average season power first.
func (e *Engine) TeamAverages(teams []*espn.Team, scores map[string]*PlayerScore) []TeamAverage {
	out := make([]TeamAverage, 0, len(teams))
	for _, team := range teams {
		scored := make([]*PlayerScore, 0, len(team.Roster))
		for _, p := range team.Roster {
			if sc, ok := scores[p.Name]; ok {
				scored = append(scored, sc)
			}
		}
		if len(scored) == 0 {
			continue
		}

		avg := TeamAverage{
			Team:        team.Name,
			RosterSize:  len(scored),
			CategoryAvg: make(map[string]float64, len(e.Categories)),
		}
		n := float64(len(scored))
		for _, cat := range e.Categories {
			sum := 0.0
			for _, sc := range scored {
				sum += sc.ZScores[cat]
			}
			avg.CategoryAvg[cat] = sum / n
		}
		for _, sc := range scored {
			avg.AvgPerGame += sc.AdjustedPower
			avg.AvgSeason += sc.SeasonPower
		}
		avg.AvgPerGame /= n
		avg.AvgSeason /= n
		out = append(out, avg)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].AvgSeason != out[j].AvgSeason {
			return out[i].AvgSeason > out[j].AvgSeason
		}
		return out[i].Team < out[j].Team
	})
	return out
}

// RosterScores returns the scored players of one roster, best season power
// first.
func RosterScores(roster []*espn.Player, scores map[string]*PlayerScore) []*PlayerScore {
	out := make([]*PlayerScore, 0, len(roster))
	for _, p := range roster {
		if sc, ok := scores[p.Name]; ok {
			out = append(out, sc)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].SeasonPower != out[j].SeasonPower {
			return out[i].SeasonPower > out[j].SeasonPower
		}
		return out[i].Name < out[j].Name
	})
	return out
}
