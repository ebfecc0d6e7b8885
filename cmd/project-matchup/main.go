// Command project-matchup projects head-to-head category results for every
// pairing in a matchup period by optimizing each team's lineup day by day.
package main

import (
	"context"
	"flag"
	"os"
	"strconv"

	"github.com/rs/zerolog"

	"fantasy-nba-mcp/internal/config"
	"fantasy-nba-mcp/internal/display"
	"fantasy-nba-mcp/internal/espn"
	"fantasy-nba-mcp/internal/lineup"
	"fantasy-nba-mcp/internal/stats"
)

func main() {
	period := flag.String("period", "projected", "stat period: total|last_30|last_15|last_7|projected")
	flag.Parse()

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	if flag.NArg() != 1 {
		logger.Fatal().Msg("usage: project-matchup [--period P] <matchup_id>")
	}
	matchupID, err := strconv.Atoi(flag.Arg(0))
	if err != nil {
		logger.Fatal().Err(err).Msg("matchup_id must be an integer")
	}

	cfg, err := config.Load(logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("config load failed")
	}
	cal := config.DefaultCalendar()
	if _, ok := cal.Matchups[matchupID]; !ok {
		logger.Fatal().Int("matchup_id", matchupID).Msg("unknown matchup id")
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
	projector := lineup.NewProjector(engine)
	scores := engine.Scores(lg.AllPlayers(), statKey, config.ProjectedStatKey(cfg.Year))

	for _, pair := range lg.Pairings(matchupID) {
		home, away := pair[0], pair[1]
		totalsA := projector.ProjectTeam(home, matchupID, lg, scores, statKey, cal)
		totalsB := projector.ProjectTeam(away, matchupID, lg, scores, statKey, cal)
		cmp := lineup.Compare(home.Name, totalsA, away.Name, totalsB, engine.Categories)
		display.MatchupResult(os.Stdout, matchupID, totalsA, totalsB, cmp, engine.Categories)
	}
}
