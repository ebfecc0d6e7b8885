package stats

import "math"

// ddStats are the five categories that can contribute to a double-double.
var ddStats = [5]string{"PTS", "REB", "AST", "STL", "BLK"}

const ddThreshold = 9.5 // 10+ with continuity correction

// defaultDDRatio is the stddev/mean ratio for a stat without a configured one.
const defaultDDRatio = 0.4

// ExpectedDoubleDoubles estimates a player's probability of recording a
// double-double in a game: each contributing stat crossing 10 is modelled as
// a normal tail with stddev proportional to its mean, and the five events
// are combined as independent into P(at least two) = 1 - P(0) - P(1).
// Independence is a deliberate approximation. The result is always in [0,1].
func (e *Engine) ExpectedDoubleDoubles(avg map[string]float64) float64 {
	probs := make([]float64, 0, len(ddStats))
	for _, stat := range ddStats {
		mean, ok := avg[stat]
		if !ok || mean == 0 {
			probs = append(probs, 0)
			continue
		}
		ratio, ok := e.DDRatios[stat]
		if !ok {
			ratio = defaultDDRatio
		}
		sd := mean * ratio
		if sd <= 0 {
			if mean >= ddThreshold {
				probs = append(probs, 1)
			} else {
				probs = append(probs, 0)
			}
			continue
		}
		z := (ddThreshold - mean) / sd
		probs = append(probs, 1-normCDF(z))
	}

	pZero := 1.0
	for _, p := range probs {
		pZero *= 1 - p
	}
	pOne := 0.0
	for i, pi := range probs {
		term := pi
		for j, pj := range probs {
			if j != i {
				term *= 1 - pj
			}
		}
		pOne += term
	}

	dd := 1 - pZero - pOne
	if dd < 0 {
		return 0
	}
	if dd > 1 {
		return 1
	}
	return dd
}

// normCDF is the standard normal cumulative distribution function.
func normCDF(z float64) float64 {
	return 0.5 * math.Erfc(-z/math.Sqrt2)
}
