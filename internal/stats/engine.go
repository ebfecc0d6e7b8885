// Package stats turns raw per-game averages into normalized player value:
// per-category z-scores over the whole fetched population, an expected
// double-double probability, and power scores used for every ranking in the
// toolkit. Everything here is a pure function of its inputs and is recomputed
// on each call.
package stats

import (
	"math"
	"sort"

	"fantasy-nba-mcp/internal/config"
	"fantasy-nba-mcp/internal/espn"
)

// Engine carries the category list and variance constants so computations
// never reach for package-level state.
type Engine struct {
	Categories     []string
	DDRatios       map[string]float64
	GamesPerSeason float64
}

func NewEngine() *Engine {
	return &Engine{
		Categories:     config.StatCategories,
		DDRatios:       config.StdDevRatios,
		GamesPerSeason: config.GamesPerSeason,
	}
}

// PlayerScore is one player's normalized record for a stat period.
type PlayerScore struct {
	Name     string
	ZScores  map[string]float64
	RawStats map[string]float64

	// PerGamePower is the plain sum of category z-scores.
	PerGamePower float64

	// GamesPlayed is the projected season game count used for scaling.
	GamesPlayed float64

	// AdjustedPower and SeasonPower are set by ApplyBaseline.
	AdjustedPower float64
	SeasonPower   float64
}

// Scores computes per-category z-scores and per-game power for every player
// with data in statKey, falling back to projectedKey for players who have
// not produced stats in the requested period. Players with neither are left
// out of the result. Mean and standard deviation are computed once per
// category across the full input population.
func (e *Engine) Scores(players []*espn.Player, statKey string, projectedKey string) map[string]*PlayerScore {
	type extracted struct {
		name string
		vals map[string]float64
	}

	raw := make(map[string][]float64, len(e.Categories))
	population := make([]extracted, 0, len(players))
	seen := make(map[string]bool, len(players))

	for _, p := range players {
		if seen[p.Name] {
			continue
		}
		line, ok := p.Line(statKey)
		if !ok {
			line, ok = p.Line(projectedKey)
		}
		if !ok {
			continue
		}
		seen[p.Name] = true

		vals := make(map[string]float64, len(e.Categories))
		for _, cat := range e.Categories {
			if cat == "DD" {
				continue
			}
			v, ok := line.Avg[cat]
			if !ok {
				continue
			}
			vals[cat] = v
			raw[cat] = append(raw[cat], v)
		}
		dd := e.ExpectedDoubleDoubles(line.Avg)
		vals["DD"] = dd
		raw["DD"] = append(raw["DD"], dd)

		population = append(population, extracted{name: p.Name, vals: vals})
	}

	means := make(map[string]float64, len(e.Categories))
	stds := make(map[string]float64, len(e.Categories))
	for _, cat := range e.Categories {
		means[cat], stds[cat] = meanStd(raw[cat])
	}

	scores := make(map[string]*PlayerScore, len(population))
	for _, ext := range population {
		z := make(map[string]float64, len(e.Categories))
		power := 0.0
		for _, cat := range e.Categories {
			v, ok := ext.vals[cat]
			if !ok || stds[cat] == 0 {
				z[cat] = 0
				continue
			}
			z[cat] = (v - means[cat]) / stds[cat]
			power += z[cat]
		}
		scores[ext.name] = &PlayerScore{
			Name:         ext.name,
			ZScores:      z,
			RawStats:     ext.vals,
			PerGamePower: power,
			GamesPlayed:  e.GamesPerSeason,
		}
	}

	// Projected games played, for season scaling. Players who never made it
	// into the projection get a full season by default.
	for _, p := range players {
		sc, ok := scores[p.Name]
		if !ok {
			continue
		}
		if line, ok := p.Line(projectedKey); ok {
			if gp, ok := line.Avg["GP"]; ok {
				sc.GamesPlayed = gp
			}
		}
	}

	return scores
}

// ApplyBaseline shifts every per-game power up by a common offset so the
// worst score sits at +1, then scales by expected games played. The shift
// keeps a negative per-game score from flipping sign when multiplied by a
// large game count.
func (e *Engine) ApplyBaseline(scores map[string]*PlayerScore) {
	if len(scores) == 0 {
		return
	}
	min := math.Inf(1)
	for _, sc := range scores {
		if sc.PerGamePower < min {
			min = sc.PerGamePower
		}
	}
	baseline := 0.0
	if min < 0 {
		baseline = math.Abs(min) + 1
	}
	for _, sc := range scores {
		sc.AdjustedPower = sc.PerGamePower + baseline
		sc.SeasonPower = sc.AdjustedPower * (sc.GamesPlayed / e.GamesPerSeason)
	}
}

// RankFreeAgents returns the free agents that have scores, best per-game
// power first. Ties break by name so output is deterministic.
func (e *Engine) RankFreeAgents(freeAgents []*espn.Player, scores map[string]*PlayerScore) []*PlayerScore {
	out := make([]*PlayerScore, 0, len(freeAgents))
	for _, p := range freeAgents {
		if sc, ok := scores[p.Name]; ok {
			out = append(out, sc)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].PerGamePower != out[j].PerGamePower {
			return out[i].PerGamePower > out[j].PerGamePower
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// meanStd returns the mean and population standard deviation. An empty
// sample degrades to mean 0 / std 1 so downstream z-scores come out 0.
func meanStd(xs []float64) (float64, float64) {
	if len(xs) == 0 {
		return 0, 1
	}
	sum := 0.0
	for _, x := range xs {
		sum += x
	}
	mean := sum / float64(len(xs))
	ss := 0.0
	for _, x := range xs {
		d := x - mean
		ss += d * d
	}
	return mean, math.Sqrt(ss / float64(len(xs)))
}
