package main

import (
	"context"
	"fmt"

	"fantasy-nba-mcp/internal/lineup"
)

// MatchupProjectionsArgs are the input arguments for the
// get_matchup_projections tool.
type MatchupProjectionsArgs struct {
	MatchupID *int   `json:"matchup_id,omitempty" jsonschema:"Matchup period 1-20 (0 = current)"`
	StatKey   string `json:"stat_key,omitempty" jsonschema:"Stat period: projected|total|last_30|last_15|last_7 (default projected)"`
}

// MatchupProjection is one head-to-head pairing's projected result.
type MatchupProjection struct {
	TeamA           string            `json:"team_a"`
	TeamB           string            `json:"team_b"`
	TeamAWins       int               `json:"team_a_wins"`
	TeamBWins       int               `json:"team_b_wins"`
	ProjectedResult string            `json:"projected_result"`
	CategoryWinners map[string]string `json:"category_winners"`
}

// MatchupProjectionsOutput is the get_matchup_projections tool result.
type MatchupProjectionsOutput struct {
	MatchupID   int                 `json:"matchup_id"`
	StatPeriod  string              `json:"stat_period"`
	FullStatKey string              `json:"full_stat_key"`
	Matchups    []MatchupProjection `json:"matchups"`
}

func buildMatchupProjections(ctx context.Context, d *toolDeps, args MatchupProjectionsArgs) (MatchupProjectionsOutput, error) {
	matchupID, err := d.resolveMatchupID(args.MatchupID)
	if err != nil {
		return MatchupProjectionsOutput{}, err
	}
	statKey, err := d.resolveStatKey(args.StatKey, "projected")
	if err != nil {
		return MatchupProjectionsOutput{}, err
	}

	lg, err := d.fetchLeague(ctx)
	if err != nil {
		return MatchupProjectionsOutput{}, err
	}

	scores := d.engine.Scores(lg.AllPlayers(), statKey, d.projectedKey())

	// Project every team once; pairings reference the shared totals.
	totals := make(map[string]lineup.Totals, len(lg.Teams))
	for _, team := range lg.Teams {
		totals[team.Name] = d.projector.ProjectTeam(team, matchupID, lg, scores, statKey, d.cal)
	}

	out := MatchupProjectionsOutput{
		MatchupID:   matchupID,
		StatPeriod:  orDefault(args.StatKey, "projected"),
		FullStatKey: statKey,
	}
	for _, pair := range lg.Pairings(matchupID) {
		home, away := pair[0], pair[1]
		cmp := lineup.Compare(home.Name, totals[home.Name], away.Name, totals[away.Name], d.engine.Categories)
		out.Matchups = append(out.Matchups, MatchupProjection{
			TeamA:           home.Name,
			TeamB:           away.Name,
			TeamAWins:       cmp.WinsA,
			TeamBWins:       cmp.WinsB,
			ProjectedResult: fmt.Sprintf("%d-%d", cmp.WinsA, cmp.WinsB),
			CategoryWinners: cmp.Winners,
		})
	}
	return out, nil
}
