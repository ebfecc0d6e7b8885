// Command schema-dump fetches the raw ESPN API payloads, prints their JSON
// structure (paths and types, not values), and optionally snapshots them to
// disk. Useful when ESPN shuffles the API shape and the parsers need
// re-checking.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/rs/zerolog"

	"fantasy-nba-mcp/internal/config"
	"fantasy-nba-mcp/internal/espn"
	"fantasy-nba-mcp/internal/store"
)

func main() {
	var (
		maxDepth = flag.Int("depth", 8, "max depth for the schema walk")
		outDir   = flag.String("out", "", "snapshot directory (empty = don't write)")
	)
	flag.Parse()

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	cfg, err := config.Load(logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("config load failed")
	}
	client := espn.NewClient(cfg, logger)
	ctx := context.Background()

	var snaps *store.SnapshotStore
	if *outDir != "" {
		snaps = store.NewSnapshotStore(*outDir, time.Now())
	}

	payloads := []struct {
		title string
		fetch func() ([]byte, error)
	}{
		{"LEAGUE", func() ([]byte, error) {
			return client.RawLeague(ctx, "view=mTeam&view=mRoster&view=mMatchup&view=mSettings")
		}},
		{"PLAYER_INFO", func() ([]byte, error) {
			return client.RawLeague(ctx, "view=kona_player_info")
		}},
		{"PRO_SCHEDULE", func() ([]byte, error) {
			return client.RawProSchedule(ctx)
		}},
	}

	for _, p := range payloads {
		body, err := p.fetch()
		if err != nil {
			logger.Fatal().Err(err).Str("payload", p.title).Msg("fetch failed")
		}
		dump(p.title, body, *maxDepth)
		if snaps != nil {
			if err := snaps.Write(p.title, body); err != nil {
				logger.Fatal().Err(err).Str("payload", p.title).Msg("snapshot failed")
			}
			logger.Info().Str("path", snaps.Path(p.title)).Msg("snapshot written")
		}
	}
}

func dump(title string, body []byte, maxDepth int) {
	fmt.Println("\n================================================================================")
	fmt.Println(title)
	fmt.Println("================================================================================")
	var v any
	if err := json.Unmarshal(body, &v); err != nil {
		fmt.Printf("(not JSON: %v)\n", err)
		return
	}
	walk(v, "$", 0, maxDepth)
}

// walk prints one line per JSON path with the value's type. Lists are
// sampled by their first element.
func walk(v any, path string, depth, maxDepth int) {
	if depth > maxDepth {
		fmt.Printf("%-60s %s\n", path, "(max depth)")
		return
	}

	switch x := v.(type) {
	case map[string]any:
		fmt.Printf("%-60s dict keys=%d\n", path, len(x))
		keys := make([]string, 0, len(x))
		for k := range x {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			walk(x[k], path+"."+k, depth+1, maxDepth)
		}
	case []any:
		fmt.Printf("%-60s list len=%d\n", path, len(x))
		if len(x) > 0 {
			walk(x[0], path+"[]", depth+1, maxDepth)
		}
	case string:
		fmt.Printf("%-60s str\n", path)
	case bool:
		fmt.Printf("%-60s bool\n", path)
	case float64:
		fmt.Printf("%-60s number\n", path)
	case nil:
		fmt.Printf("%-60s null\n", path)
	default:
		fmt.Printf("%-60s %T\n", path, v)
	}
}
