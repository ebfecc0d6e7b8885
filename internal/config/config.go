package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

// Settings holds everything read from the environment: league identity,
// ESPN auth cookies for private leagues, and server options.
type Settings struct {
	LeagueID int
	Year     int
	ESPNS2   string
	SWID     string
	APIKey   string
	LogLevel string
}

func Load(logger zerolog.Logger) (*Settings, error) {
	if err := godotenv.Load(); err != nil {
		logger.Debug().Msg(".env file not found, using environment variables or defaults")
	}

	leagueID, err := getEnvInt("LEAGUE_ID", 682068465)
	if err != nil {
		return nil, err
	}
	year, err := getEnvInt("SEASON_YEAR", 2026)
	if err != nil {
		return nil, err
	}

	cfg := &Settings{
		LeagueID: leagueID,
		Year:     year,
		ESPNS2:   os.Getenv("ESPN_S2"),
		SWID:     os.Getenv("SWID"),
		APIKey:   os.Getenv("NBA_MCP_API_KEY"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	logger.Info().
		Int("league_id", cfg.LeagueID).
		Int("year", cfg.Year).
		Bool("private_auth", cfg.ESPNS2 != "" && cfg.SWID != "").
		Msg("configuration loaded")

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}

// StatCategories are the eight head-to-head scoring categories, in display
// order. DD (expected double-doubles) is derived, not read from ESPN.
var StatCategories = []string{"PTS", "BLK", "STL", "AST", "REB", "3PM", "FT%", "DD"}

// StdDevRatios approximate each counting stat's game-to-game standard
// deviation as a fraction of its per-game mean. Blocks and steals swing the
// most night to night.
var StdDevRatios = map[string]float64{
	"PTS": 0.35,
	"REB": 0.40,
	"AST": 0.45,
	"BLK": 0.60,
	"STL": 0.60,
}

// LineupSlots in fill order: specific positions first, then flex, then
// utility. Order matters for the greedy optimizer.
var LineupSlots = []string{"PG", "SG", "SF", "PF", "C", "G", "F", "UTIL", "UTIL", "UTIL"}

// GamesPerSeason is the NBA regular-season game count used to scale
// per-game power into season power.
const GamesPerSeason = 82.0

// Calendar maps fantasy matchup periods onto scoring-period days.
// One scoring period is one calendar day starting at SeasonStart.
type Calendar struct {
	SeasonStart time.Time
	Matchups    map[int][]int
}

// DefaultCalendar is the 2026 season schedule: Oct 21, 2025 through
// Mar 15, 2026, twenty matchups, one double-length week over the
// All-Star break.
func DefaultCalendar() Calendar {
	m := make(map[int][]int, 20)
	m[1] = periodRange(1, 7) // short opening week
	start := 7
	for id := 2; id <= 20; id++ {
		length := 7
		if id == 17 {
			length = 14 // All-Star break
		}
		m[id] = periodRange(start, start+length)
		start += length
	}
	return Calendar{
		SeasonStart: time.Date(2025, time.October, 21, 0, 0, 0, 0, time.UTC),
		Matchups:    m,
	}
}

func periodRange(from, to int) []int {
	out := make([]int, 0, to-from)
	for p := from; p < to; p++ {
		out = append(out, p)
	}
	return out
}

// Periods lists the valid short stat-period keys.
var Periods = []string{"total", "last_30", "last_15", "last_7", "projected"}

// ResolveStatKey converts a short period key ("last_30", "total", ...) into
// the full ESPN stat key ("2026_last_30"). Already-full keys pass through.
func ResolveStatKey(year int, short string) (string, error) {
	prefix := strconv.Itoa(year) + "_"
	if len(short) > len(prefix) && short[:len(prefix)] == prefix {
		return short, nil
	}
	switch short {
	case "total", "last_30", "last_15", "last_7", "projected":
		return prefix + short, nil
	case "last30":
		return prefix + "last_30", nil
	case "last15":
		return prefix + "last_15", nil
	case "last7":
		return prefix + "last_7", nil
	case "projection":
		return prefix + "projected", nil
	}
	return "", fmt.Errorf("invalid stat key %q (valid: total, last_30, last_15, last_7, projected)", short)
}

// ProjectedStatKey is the fallback key for players with no data in the
// requested period (e.g. rookies before their first game).
func ProjectedStatKey(year int) string {
	return strconv.Itoa(year) + "_projected"
}
