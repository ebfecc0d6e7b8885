// Package schedule answers calendar questions: which matchup period a date
// falls in, which NBA games a player has during a matchup, and which roster
// players are available on a given scoring-period day.
package schedule

import (
	"sort"
	"time"

	"fantasy-nba-mcp/internal/config"
	"fantasy-nba-mcp/internal/espn"
)

// Game is one NBA game on a player's schedule within a matchup window.
type Game struct {
	Date            time.Time
	Opponent        string
	ScoringPeriodID int
}

// CurrentMatchupID maps a wall-clock date onto the matchup calendar.
// Before the season it returns the first matchup, after it the last.
func CurrentMatchupID(now time.Time, cal config.Calendar) int {
	day := now.UTC().Truncate(24 * time.Hour)
	start := cal.SeasonStart.UTC().Truncate(24 * time.Hour)

	ids := make([]int, 0, len(cal.Matchups))
	for id := range cal.Matchups {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	if len(ids) == 0 {
		return 1
	}

	if day.Before(start) {
		return ids[0]
	}

	// Scoring period N is day N of the season, starting at 1.
	period := int(day.Sub(start).Hours()/24) + 1
	for _, id := range ids {
		periods := cal.Matchups[id]
		if len(periods) == 0 {
			continue
		}
		if period >= periods[0] && period <= periods[len(periods)-1] {
			return id
		}
	}
	return ids[len(ids)-1]
}

// PlayerGames lists the games the player's NBA team plays during the given
// matchup, sorted by date. Unknown pro teams and unknown matchup ids yield
// an empty schedule, not an error.
func PlayerGames(p *espn.Player, matchupID int, lg *espn.League, cal config.Calendar) []Game {
	periods, ok := cal.Matchups[matchupID]
	if !ok {
		return nil
	}
	out := make([]Game, 0, len(periods))
	for _, period := range periods {
		games := lg.GamesOn(p.ProTeamID, period)
		if len(games) == 0 {
			continue
		}
		g := games[0] // one game per scoring period
		opponentID := g.HomeID
		if g.AwayID != p.ProTeamID {
			opponentID = g.AwayID
		}
		out = append(out, Game{
			Date:            g.Date,
			Opponent:        espn.ProTeamAbbrev(opponentID),
			ScoringPeriodID: period,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out
}

// PlayingOn filters a roster to the players who are healthy and whose NBA
// team plays on the given scoring-period day.
func PlayingOn(roster []*espn.Player, scoringPeriodID int, lg *espn.League) []*espn.Player {
	out := make([]*espn.Player, 0, len(roster))
	for _, p := range roster {
		if p.IsOut() {
			continue
		}
		if len(lg.GamesOn(p.ProTeamID, scoringPeriodID)) > 0 {
			out = append(out, p)
		}
	}
	return out
}
