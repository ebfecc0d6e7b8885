package lineup

import (
	"sort"

	"fantasy-nba-mcp/internal/config"
	"fantasy-nba-mcp/internal/espn"
	"fantasy-nba-mcp/internal/stats"
)

// Projector assigns players to daily lineup slots and aggregates the result.
type Projector struct {
	Slots  []string
	Engine *stats.Engine
}

func NewProjector(engine *stats.Engine) *Projector {
	return &Projector{Slots: config.LineupSlots, Engine: engine}
}

// Assignment is one filled lineup slot for a day: the player and the
// per-game stat line they contribute. A nil Player means the slot went
// unfilled and contributes nothing.
type Assignment struct {
	Slot   string
	Player *espn.Player
	Stats  map[string]float64
}

// counting stats accumulated per assignment; FT% is derived from FTM/FTA
// at window aggregation time.
var countedStats = []string{"PTS", "AST", "BLK", "REB", "STL", "3PM", "FTM", "FTA", "DD"}

// FillDay greedily builds one day's lineup: slots are processed in declared
// order, and each takes the highest-per-game-power unassigned player whose
// positions fit. No backtracking — a flex-eligible star taken early can
// strand a later specific slot. Accepted approximation.
func (pr *Projector) FillDay(available []*espn.Player, scores map[string]*stats.PlayerScore, statKey string, projectedKey string) []Assignment {
	type candidate struct {
		player *espn.Player
		power  float64
	}
	ranked := make([]candidate, 0, len(available))
	for _, p := range available {
		sc, ok := scores[p.Name]
		if !ok {
			continue
		}
		ranked = append(ranked, candidate{player: p, power: sc.PerGamePower})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].power != ranked[j].power {
			return ranked[i].power > ranked[j].power
		}
		return ranked[i].player.Name < ranked[j].player.Name
	})

	used := make(map[string]bool, len(pr.Slots))
	lineup := make([]Assignment, 0, len(pr.Slots))
	for _, slot := range pr.Slots {
		assigned := Assignment{Slot: slot}
		for _, c := range ranked {
			if used[c.player.Name] || !CanFill(c.player.Positions, slot) {
				continue
			}
			line, ok := c.player.Line(statKey)
			if !ok {
				line, ok = c.player.Line(projectedKey)
			}
			if !ok {
				continue
			}
			statsOut := make(map[string]float64, len(countedStats))
			for _, stat := range countedStats {
				if stat == "DD" {
					statsOut[stat] = pr.Engine.ExpectedDoubleDoubles(line.Avg)
					continue
				}
				statsOut[stat] = line.Avg[stat]
			}
			assigned.Player = c.player
			assigned.Stats = statsOut
			used[c.player.Name] = true
			break
		}
		lineup = append(lineup, assigned)
	}
	return lineup
}
