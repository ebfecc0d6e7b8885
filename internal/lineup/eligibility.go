// Package lineup fills daily lineups greedily and projects head-to-head
// matchup totals from them.
package lineup

// CanFill reports whether a player with the given position eligibilities can
// occupy a lineup slot. G flexes to PG/SG, F to SF/PF, UTIL takes anyone.
func CanFill(positions []string, slot string) bool {
	if slot == "UTIL" {
		return true
	}
	for _, pos := range positions {
		if pos == slot {
			return true
		}
		if slot == "G" && (pos == "PG" || pos == "SG") {
			return true
		}
		if slot == "F" && (pos == "SF" || pos == "PF") {
			return true
		}
	}
	return false
}
