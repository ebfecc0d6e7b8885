package main

import (
	"context"
	"fmt"
	"strings"

	"fantasy-nba-mcp/internal/espn"
	"fantasy-nba-mcp/internal/fuzzy"
)

// TeamProjectionArgs are the input arguments for the get_team_projection tool.
type TeamProjectionArgs struct {
	TeamName  string `json:"team_name" jsonschema:"Fantasy team name, fuzzy matched (required)"`
	MatchupID *int   `json:"matchup_id,omitempty" jsonschema:"Matchup period 1-20 (0 = current)"`
	StatKey   string `json:"stat_key,omitempty" jsonschema:"Stat period: projected|total|last_30|last_15|last_7 (default projected)"`
}

// TeamProjectionOutput is the get_team_projection tool result.
type TeamProjectionOutput struct {
	TeamName       string             `json:"team_name"`
	MatchupID      int                `json:"matchup_id"`
	StatPeriod     string             `json:"stat_period"`
	FullStatKey    string             `json:"full_stat_key"`
	ProjectedStats map[string]float64 `json:"projected_stats"`
	GamesPlayed    int                `json:"games_played"`
}

func buildTeamProjection(ctx context.Context, d *toolDeps, args TeamProjectionArgs) (TeamProjectionOutput, error) {
	if args.TeamName == "" {
		return TeamProjectionOutput{}, fmt.Errorf("team_name is required")
	}
	matchupID, err := d.resolveMatchupID(args.MatchupID)
	if err != nil {
		return TeamProjectionOutput{}, err
	}
	statKey, err := d.resolveStatKey(args.StatKey, "projected")
	if err != nil {
		return TeamProjectionOutput{}, err
	}

	lg, err := d.fetchLeague(ctx)
	if err != nil {
		return TeamProjectionOutput{}, err
	}

	team := fuzzy.FindTeam(args.TeamName, lg.Teams)
	if team == nil {
		return TeamProjectionOutput{}, fmt.Errorf("team %q not found. Available teams: %s",
			args.TeamName, strings.Join(teamNames(lg.Teams), ", "))
	}

	scores := d.engine.Scores(lg.AllPlayers(), statKey, d.projectedKey())
	totals := d.projector.ProjectTeam(team, matchupID, lg, scores, statKey, d.cal)

	projected := make(map[string]float64, len(d.engine.Categories))
	for _, cat := range d.engine.Categories {
		projected[cat] = totals.Stats[cat]
	}

	return TeamProjectionOutput{
		TeamName:       team.Name,
		MatchupID:      matchupID,
		StatPeriod:     orDefault(args.StatKey, "projected"),
		FullStatKey:    statKey,
		ProjectedStats: projected,
		GamesPlayed:    totals.GamesPlayed,
	}, nil
}

func teamNames(teams []*espn.Team) []string {
	out := make([]string, len(teams))
	for i, t := range teams {
		out[i] = t.Name
	}
	return out
}
