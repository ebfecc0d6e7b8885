package main

import (
	"context"
	"fmt"

	"fantasy-nba-mcp/internal/fuzzy"
)

// PlayerStatsArgs are the input arguments for the get_player_stats tool.
type PlayerStatsArgs struct {
	PlayerName string `json:"player_name" jsonschema:"Player name, fuzzy matched (required)"`
	StatKey    string `json:"stat_key,omitempty" jsonschema:"Stat period: total|last_30|last_15|last_7|projected (default total)"`
}

// PlayerStatsOutput is the get_player_stats tool result.
type PlayerStatsOutput struct {
	PlayerID     int                `json:"player_id"`
	PlayerName   string             `json:"player_name"`
	Team         string             `json:"team"`
	Positions    []string           `json:"positions"`
	InjuryStatus string             `json:"injury_status,omitempty"`
	LineupSlot   string             `json:"lineup_slot,omitempty"`
	OnIR         bool               `json:"on_ir"`
	Stats        map[string]float64 `json:"stats"`
	ZScores      map[string]float64 `json:"zscores"`
	PerGamePower float64            `json:"per_game_power"`
	StatPeriod   string             `json:"stat_period"`
	FullStatKey  string             `json:"full_stat_key"`
}

func buildPlayerStats(ctx context.Context, d *toolDeps, args PlayerStatsArgs) (PlayerStatsOutput, error) {
	if args.PlayerName == "" {
		return PlayerStatsOutput{}, fmt.Errorf("player_name is required")
	}
	statKey, err := d.resolveStatKey(args.StatKey, "total")
	if err != nil {
		return PlayerStatsOutput{}, err
	}

	lg, err := d.fetchLeague(ctx)
	if err != nil {
		return PlayerStatsOutput{}, err
	}

	all := lg.AllPlayers()
	player := fuzzy.FindPlayer(args.PlayerName, all)
	if player == nil {
		return PlayerStatsOutput{}, fmt.Errorf("player %q not found", args.PlayerName)
	}

	scores := d.engine.Scores(all, statKey, d.projectedKey())
	sc, ok := scores[player.Name]
	if !ok {
		return PlayerStatsOutput{}, fmt.Errorf("no stats available for %s with stat_key %q", player.Name, args.StatKey)
	}

	return PlayerStatsOutput{
		PlayerID:     player.ID,
		PlayerName:   player.Name,
		Team:         player.ProTeam,
		Positions:    player.Positions,
		InjuryStatus: player.InjuryStatus,
		LineupSlot:   player.LineupSlot,
		OnIR:         player.OnIR(),
		Stats:        sc.RawStats,
		ZScores:      sc.ZScores,
		PerGamePower: sc.PerGamePower,
		StatPeriod:   orDefault(args.StatKey, "total"),
		FullStatKey:  statKey,
	}, nil
}

func (d *toolDeps) projectedKey() string {
	return fmt.Sprintf("%d_projected", d.cfg.Year)
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
