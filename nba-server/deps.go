package main

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog"

	"fantasy-nba-mcp/internal/config"
	"fantasy-nba-mcp/internal/espn"
	"fantasy-nba-mcp/internal/lineup"
	"fantasy-nba-mcp/internal/schedule"
	"fantasy-nba-mcp/internal/stats"
)

// toolDeps is everything a tool handler needs. fetchLeague is a function so
// tests can substitute a canned league for the live ESPN fetch.
type toolDeps struct {
	cfg         *config.Settings
	cal         config.Calendar
	engine      *stats.Engine
	projector   *lineup.Projector
	logger      zerolog.Logger
	fetchLeague func(ctx context.Context) (*espn.League, error)
}

func newToolDeps(cfg *config.Settings, logger zerolog.Logger) *toolDeps {
	engine := stats.NewEngine()
	client := espn.NewClient(cfg, logger)
	return &toolDeps{
		cfg:         cfg,
		cal:         config.DefaultCalendar(),
		engine:      engine,
		projector:   lineup.NewProjector(engine),
		logger:      logger,
		fetchLeague: client.FetchLeague,
	}
}

// resolveMatchupID defaults a missing or zero matchup id to the current one
// and validates it against the calendar.
func (d *toolDeps) resolveMatchupID(id *int) (int, error) {
	resolved := 0
	if id != nil {
		resolved = *id
	}
	if resolved == 0 {
		resolved = schedule.CurrentMatchupID(time.Now(), d.cal)
	}
	if _, ok := d.cal.Matchups[resolved]; !ok {
		return 0, fmt.Errorf("invalid matchup_id %d (must be 1-%d)", resolved, len(d.cal.Matchups))
	}
	return resolved, nil
}

// resolveStatKey converts a short period key, defaulting empty to def.
func (d *toolDeps) resolveStatKey(short string, def string) (string, error) {
	if short == "" {
		short = def
	}
	return config.ResolveStatKey(d.cfg.Year, short)
}

func toolJSON(v any) (*mcp.CallToolResult, any, error) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return toolError(err), nil, nil
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: string(b)},
		},
	}, nil, nil
}

func toolError(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{
			&mcp.TextContent{Text: fmt.Sprintf("error: %v", err)},
		},
	}
}
