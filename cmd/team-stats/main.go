// Command team-stats prints per-team average z-scores by category, with
// optional per-category and overall ranking tables.
package main

import (
	"context"
	"flag"
	"os"

	"github.com/rs/zerolog"

	"fantasy-nba-mcp/internal/config"
	"fantasy-nba-mcp/internal/display"
	"fantasy-nba-mcp/internal/espn"
	"fantasy-nba-mcp/internal/stats"
)

func main() {
	var (
		period       = flag.String("period", "projected", "stat period: total|last_30|last_15|last_7|projected")
		sortBy       = flag.String("sort", "name", "sort teams by: name, overall, or a category (PTS, BLK, STL, AST, REB, 3PM, FT%, DD)")
		showRankings = flag.Bool("show-rankings", false, "include detailed per-category rankings")
	)
	flag.Parse()

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	cfg, err := config.Load(logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("config load failed")
	}
	statKey, err := config.ResolveStatKey(cfg.Year, *period)
	if err != nil {
		logger.Fatal().Err(err).Msg("bad period")
	}

	client := espn.NewClient(cfg, logger)
	lg, err := client.FetchLeague(context.Background())
	if err != nil {
		logger.Fatal().Err(err).Msg("league fetch failed")
	}

	engine := stats.NewEngine()
	scores := engine.Scores(lg.AllPlayers(), statKey, config.ProjectedStatKey(cfg.Year))
	engine.ApplyBaseline(scores)
	averages := engine.TeamAverages(lg.Teams, scores)

	display.TeamStatistics(os.Stdout, averages, engine.Categories, *sortBy)
	if *showRankings {
		display.CategoryRankings(os.Stdout, averages, engine.Categories)
	}
	display.OverallRankings(os.Stdout, averages, engine.Categories)
}
