// Command display-results prints player power scores by team and the
// league-wide team power rankings for a stat period.
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
	period := flag.String("period", "last_30", "stat period: total|last_30|last_15|last_7|projected")
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

	display.PlayerScores(os.Stdout, lg, scores)
	display.TeamRankings(os.Stdout, engine.TeamAverages(lg.Teams, scores))
}
