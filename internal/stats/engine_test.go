package stats

import (
	"math"
	"testing"

	"fantasy-nba-mcp/internal/espn"
)

const statKey = "2026_total"
const projKey = "2026_projected"

// player builds a minimal player with one stat line under key.
func player(name string, key string, avg map[string]float64) *espn.Player {
	return &espn.Player{
		Name:  name,
		Stats: map[string]espn.StatLine{key: {Avg: avg}},
	}
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestScores_ZScoresSumToZero(t *testing.T) {
	players := []*espn.Player{
		player("A", statKey, map[string]float64{"PTS": 10}),
		player("B", statKey, map[string]float64{"PTS": 20}),
		player("C", statKey, map[string]float64{"PTS": 30}),
	}

	scores := NewEngine().Scores(players, statKey, projKey)

	sum := 0.0
	for _, sc := range scores {
		sum += sc.ZScores["PTS"]
	}
	if !almostEqual(sum, 0) {
		t.Errorf("PTS z-scores sum = %v, want 0", sum)
	}
}

func TestScores_KnownValues(t *testing.T) {
	// Population [10, 20, 30]: mean 20, population std sqrt(200/3).
	players := []*espn.Player{
		player("A", statKey, map[string]float64{"PTS": 10}),
		player("B", statKey, map[string]float64{"PTS": 20}),
		player("C", statKey, map[string]float64{"PTS": 30}),
	}

	scores := NewEngine().Scores(players, statKey, projKey)

	sigma := math.Sqrt(200.0 / 3.0)
	if got := scores["A"].ZScores["PTS"]; !almostEqual(got, -10/sigma) {
		t.Errorf("A z = %v, want %v", got, -10/sigma)
	}
	if got := scores["B"].ZScores["PTS"]; !almostEqual(got, 0) {
		t.Errorf("B z = %v, want 0", got)
	}
	if got := scores["C"].ZScores["PTS"]; !almostEqual(got, 10/sigma) {
		t.Errorf("C z = %v, want %v", got, 10/sigma)
	}
}

func TestScores_ZeroVarianceGivesZeroZScores(t *testing.T) {
	players := []*espn.Player{
		player("A", statKey, map[string]float64{"REB": 5}),
		player("B", statKey, map[string]float64{"REB": 5}),
		player("C", statKey, map[string]float64{"REB": 5}),
	}

	scores := NewEngine().Scores(players, statKey, projKey)

	for name, sc := range scores {
		if sc.ZScores["REB"] != 0 {
			t.Errorf("%s REB z = %v, want exactly 0 for zero-variance category", name, sc.ZScores["REB"])
		}
	}
}

func TestScores_MissingPeriodExcluded(t *testing.T) {
	players := []*espn.Player{
		player("A", statKey, map[string]float64{"PTS": 10}),
		player("NoData", "2026_last_7", map[string]float64{"PTS": 50}),
	}

	scores := NewEngine().Scores(players, statKey, projKey)

	if _, ok := scores["NoData"]; ok {
		t.Error("player without requested or projected stats should be excluded")
	}
	if _, ok := scores["A"]; !ok {
		t.Error("player with requested stats should be included")
	}
}

func TestScores_FallsBackToProjected(t *testing.T) {
	players := []*espn.Player{
		player("A", statKey, map[string]float64{"PTS": 10}),
		player("Rookie", projKey, map[string]float64{"PTS": 18}),
	}

	scores := NewEngine().Scores(players, statKey, projKey)

	if _, ok := scores["Rookie"]; !ok {
		t.Fatal("player with only projected stats should fall back, not be dropped")
	}
}

func TestScores_MissingCategoryIsZeroNotContributing(t *testing.T) {
	// Only A has 3PM data; its z must be 0 (single-sample variance is 0)
	// and B's absent value must not pollute the population.
	players := []*espn.Player{
		player("A", statKey, map[string]float64{"3PM": 2, "PTS": 10}),
		player("B", statKey, map[string]float64{"PTS": 20}),
	}

	scores := NewEngine().Scores(players, statKey, projKey)

	if got := scores["B"].ZScores["3PM"]; got != 0 {
		t.Errorf("B 3PM z = %v, want 0 for missing value", got)
	}
	if got := scores["A"].ZScores["3PM"]; got != 0 {
		t.Errorf("A 3PM z = %v, want 0 (population of one has no variance)", got)
	}
}

func TestScores_PerGamePowerIsSumOfZScores(t *testing.T) {
	players := []*espn.Player{
		player("A", statKey, map[string]float64{"PTS": 10, "REB": 12}),
		player("B", statKey, map[string]float64{"PTS": 30, "REB": 4}),
	}

	scores := NewEngine().Scores(players, statKey, projKey)

	for name, sc := range scores {
		sum := 0.0
		for _, z := range sc.ZScores {
			sum += z
		}
		if !almostEqual(sc.PerGamePower, sum) {
			t.Errorf("%s PerGamePower = %v, want sum of z-scores %v", name, sc.PerGamePower, sum)
		}
	}
}

func TestApplyBaseline_ShiftsWorstToPlusOne(t *testing.T) {
	players := []*espn.Player{
		player("A", statKey, map[string]float64{"PTS": 10}),
		player("B", statKey, map[string]float64{"PTS": 30}),
	}

	e := NewEngine()
	scores := e.Scores(players, statKey, projKey)
	e.ApplyBaseline(scores)

	min := math.Inf(1)
	for _, sc := range scores {
		if sc.AdjustedPower < min {
			min = sc.AdjustedPower
		}
	}
	if !almostEqual(min, 1) {
		t.Errorf("minimum adjusted power = %v, want 1 after baseline shift", min)
	}
}

func TestApplyBaseline_ScalesByGamesPlayed(t *testing.T) {
	p := player("A", statKey, map[string]float64{"PTS": 10})
	p.Stats[projKey] = espn.StatLine{Avg: map[string]float64{"PTS": 10, "GP": 41}}
	full := player("B", statKey, map[string]float64{"PTS": 30})

	e := NewEngine()
	scores := e.Scores([]*espn.Player{p, full}, statKey, projKey)
	e.ApplyBaseline(scores)

	sc := scores["A"]
	want := sc.AdjustedPower * 0.5
	if !almostEqual(sc.SeasonPower, want) {
		t.Errorf("SeasonPower = %v, want %v for a 41-game projection", sc.SeasonPower, want)
	}
	// B has no GP in its projection — defaults to a full season.
	if b := scores["B"]; !almostEqual(b.SeasonPower, b.AdjustedPower) {
		t.Errorf("SeasonPower = %v, want %v with default 82 games", b.SeasonPower, b.AdjustedPower)
	}
}

func TestApplyBaseline_EmptyScores(t *testing.T) {
	NewEngine().ApplyBaseline(map[string]*PlayerScore{}) // must not panic
}

func TestRankFreeAgents_Ordering(t *testing.T) {
	fas := []*espn.Player{
		player("Low", statKey, map[string]float64{"PTS": 5}),
		player("High", statKey, map[string]float64{"PTS": 35}),
		player("Mid", statKey, map[string]float64{"PTS": 20}),
	}

	e := NewEngine()
	scores := e.Scores(fas, statKey, projKey)
	ranked := e.RankFreeAgents(fas, scores)

	if len(ranked) != 3 {
		t.Fatalf("ranked len = %d, want 3", len(ranked))
	}
	if ranked[0].Name != "High" || ranked[2].Name != "Low" {
		t.Errorf("ranked order = [%s %s %s], want [High Mid Low]", ranked[0].Name, ranked[1].Name, ranked[2].Name)
	}
}

func TestMeanStd_EmptySample(t *testing.T) {
	mean, std := meanStd(nil)
	if mean != 0 || std != 1 {
		t.Errorf("meanStd(nil) = (%v, %v), want (0, 1)", mean, std)
	}
}
