package main

import (
	"context"

	"fantasy-nba-mcp/internal/schedule"
)

// TopFreeAgentsArgs are the input arguments for the get_top_free_agents tool.
type TopFreeAgentsArgs struct {
	StatKey   string `json:"stat_key,omitempty" jsonschema:"Stat period: total|last_30|last_15|last_7|projected (default total)"`
	MatchupID *int   `json:"matchup_id,omitempty" jsonschema:"Matchup period 1-20 (0 = current)"`
	Limit     int    `json:"limit,omitempty" jsonschema:"How many free agents to return (default 10)"`
}

// FreeAgentEntry is one ranked waiver-wire candidate.
type FreeAgentEntry struct {
	PlayerName   string             `json:"player_name"`
	Team         string             `json:"team"`
	Positions    []string           `json:"positions"`
	InjuryStatus string             `json:"injury_status,omitempty"`
	PerGamePower float64            `json:"per_game_power"`
	ZScores      map[string]float64 `json:"zscores"`
	GameDates    []string           `json:"game_dates"`
}

// TopFreeAgentsOutput is the get_top_free_agents tool result.
type TopFreeAgentsOutput struct {
	StatPeriod  string           `json:"stat_period"`
	FullStatKey string           `json:"full_stat_key"`
	MatchupID   int              `json:"matchup_id"`
	Count       int              `json:"count"`
	FreeAgents  []FreeAgentEntry `json:"free_agents"`
}

func buildTopFreeAgents(ctx context.Context, d *toolDeps, args TopFreeAgentsArgs) (TopFreeAgentsOutput, error) {
	matchupID, err := d.resolveMatchupID(args.MatchupID)
	if err != nil {
		return TopFreeAgentsOutput{}, err
	}
	statKey, err := d.resolveStatKey(args.StatKey, "total")
	if err != nil {
		return TopFreeAgentsOutput{}, err
	}
	limit := args.Limit
	if limit <= 0 {
		limit = 10
	}

	lg, err := d.fetchLeague(ctx)
	if err != nil {
		return TopFreeAgentsOutput{}, err
	}

	scores := d.engine.Scores(lg.AllPlayers(), statKey, d.projectedKey())
	ranked := d.engine.RankFreeAgents(lg.FreeAgents, scores)

	byName := make(map[string]int, len(lg.FreeAgents))
	for i, p := range lg.FreeAgents {
		byName[p.Name] = i
	}

	out := TopFreeAgentsOutput{
		StatPeriod:  orDefault(args.StatKey, "total"),
		FullStatKey: statKey,
		MatchupID:   matchupID,
	}
	for _, sc := range ranked {
		if len(out.FreeAgents) >= limit {
			break
		}
		p := lg.FreeAgents[byName[sc.Name]]
		games := schedule.PlayerGames(p, matchupID, lg, d.cal)
		dates := make([]string, 0, len(games))
		for _, g := range games {
			dates = append(dates, g.Date.Format("2006-01-02"))
		}
		out.FreeAgents = append(out.FreeAgents, FreeAgentEntry{
			PlayerName:   p.Name,
			Team:         p.ProTeam,
			Positions:    p.Positions,
			InjuryStatus: p.InjuryStatus,
			PerGamePower: sc.PerGamePower,
			ZScores:      sc.ZScores,
			GameDates:    dates,
		})
	}
	out.Count = len(out.FreeAgents)
	return out, nil
}
