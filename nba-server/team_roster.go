package main

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"fantasy-nba-mcp/internal/fuzzy"
	"fantasy-nba-mcp/internal/schedule"
)

// TeamRosterArgs are the input arguments for the get_team_roster tool.
type TeamRosterArgs struct {
	Team      string `json:"team" jsonschema:"Fantasy team name, fuzzy matched (required)"`
	StatKey   string `json:"stat_key,omitempty" jsonschema:"Stat period: total|last_30|last_15|last_7|projected (default total)"`
	MatchupID *int   `json:"matchup_id,omitempty" jsonschema:"Matchup period 1-20 for game schedules (0 = current)"`
}

// RosterEntry is one player's line in the roster breakdown.
type RosterEntry struct {
	PlayerName   string             `json:"player_name"`
	Team         string             `json:"team"`
	Positions    []string           `json:"positions"`
	InjuryStatus string             `json:"injury_status,omitempty"`
	PerGamePower float64            `json:"per_game_power"`
	ZScores      map[string]float64 `json:"zscores"`
	GameDates    []string           `json:"game_dates"`
}

// TeamRosterOutput is the get_team_roster tool result.
type TeamRosterOutput struct {
	TeamName    string        `json:"team_name"`
	StatPeriod  string        `json:"stat_period"`
	FullStatKey string        `json:"full_stat_key"`
	MatchupID   int           `json:"matchup_id"`
	RosterCount int           `json:"roster_count"`
	Roster      []RosterEntry `json:"roster"`
}

func buildTeamRoster(ctx context.Context, d *toolDeps, args TeamRosterArgs) (TeamRosterOutput, error) {
	if args.Team == "" {
		return TeamRosterOutput{}, fmt.Errorf("team is required")
	}
	matchupID, err := d.resolveMatchupID(args.MatchupID)
	if err != nil {
		return TeamRosterOutput{}, err
	}
	statKey, err := d.resolveStatKey(args.StatKey, "total")
	if err != nil {
		return TeamRosterOutput{}, err
	}

	lg, err := d.fetchLeague(ctx)
	if err != nil {
		return TeamRosterOutput{}, err
	}

	team := fuzzy.FindTeam(args.Team, lg.Teams)
	if team == nil {
		return TeamRosterOutput{}, fmt.Errorf("team %q not found. Available teams: %s",
			args.Team, strings.Join(teamNames(lg.Teams), ", "))
	}

	scores := d.engine.Scores(lg.AllPlayers(), statKey, d.projectedKey())

	out := TeamRosterOutput{
		TeamName:    team.Name,
		StatPeriod:  orDefault(args.StatKey, "total"),
		FullStatKey: statKey,
		MatchupID:   matchupID,
	}
	for _, p := range team.Roster {
		games := schedule.PlayerGames(p, matchupID, lg, d.cal)
		dates := make([]string, 0, len(games))
		for _, g := range games {
			dates = append(dates, g.Date.Format("2006-01-02"))
		}

		entry := RosterEntry{
			PlayerName:   p.Name,
			Team:         p.ProTeam,
			Positions:    p.Positions,
			InjuryStatus: p.InjuryStatus,
			GameDates:    dates,
		}
		if sc, ok := scores[p.Name]; ok {
			entry.PerGamePower = sc.PerGamePower
			entry.ZScores = sc.ZScores
		} else {
			// No stats for this period — still listed, with zero power.
			entry.ZScores = map[string]float64{}
		}
		out.Roster = append(out.Roster, entry)
	}

	sort.Slice(out.Roster, func(i, j int) bool {
		if out.Roster[i].PerGamePower != out.Roster[j].PerGamePower {
			return out.Roster[i].PerGamePower > out.Roster[j].PerGamePower
		}
		return out.Roster[i].PlayerName < out.Roster[j].PlayerName
	})
	out.RosterCount = len(out.Roster)
	return out, nil
}
