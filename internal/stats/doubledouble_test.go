package stats

import "testing"

func TestExpectedDoubleDoubles_ZeroMeans(t *testing.T) {
	e := NewEngine()
	got := e.ExpectedDoubleDoubles(map[string]float64{"PTS": 0, "REB": 0, "AST": 0, "STL": 0, "BLK": 0})
	if got != 0 {
		t.Errorf("DD probability = %v, want 0 for all-zero means", got)
	}
}

func TestExpectedDoubleDoubles_InUnitInterval(t *testing.T) {
	e := NewEngine()
	cases := []map[string]float64{
		{"PTS": 5},
		{"PTS": 28, "REB": 12},
		{"PTS": 28, "REB": 12, "AST": 9, "STL": 2, "BLK": 1.5},
		{"PTS": 100, "REB": 100, "AST": 100, "STL": 100, "BLK": 100},
		{"PTS": 9.5, "REB": 9.5},
	}
	for _, avg := range cases {
		got := e.ExpectedDoubleDoubles(avg)
		if got < 0 || got > 1 {
			t.Errorf("DD probability = %v for %v, want within [0,1]", got, avg)
		}
	}
}

func TestExpectedDoubleDoubles_SingleStatCannotDoubleDouble(t *testing.T) {
	// One qualifying stat means at most one category crosses 10, so the
	// probability of two must stay (near) zero.
	e := NewEngine()
	got := e.ExpectedDoubleDoubles(map[string]float64{"PTS": 40})
	if got > 1e-9 {
		t.Errorf("DD probability = %v, want ~0 with a single contributing stat", got)
	}
}

func TestExpectedDoubleDoubles_DominantPairNearCertain(t *testing.T) {
	e := NewEngine()
	got := e.ExpectedDoubleDoubles(map[string]float64{"PTS": 80, "REB": 80})
	if got < 0.99 {
		t.Errorf("DD probability = %v, want near 1 for two far-above-threshold means", got)
	}
}

func TestExpectedDoubleDoubles_MonotonicInSecondStat(t *testing.T) {
	e := NewEngine()
	low := e.ExpectedDoubleDoubles(map[string]float64{"PTS": 25, "REB": 6})
	high := e.ExpectedDoubleDoubles(map[string]float64{"PTS": 25, "REB": 12})
	if high <= low {
		t.Errorf("DD probability should grow with the second stat: low=%v high=%v", low, high)
	}
}

func TestExpectedDoubleDoubles_MissingStatsTreatedAsZero(t *testing.T) {
	e := NewEngine()
	withZeros := e.ExpectedDoubleDoubles(map[string]float64{"PTS": 25, "REB": 11, "AST": 0, "STL": 0, "BLK": 0})
	withMissing := e.ExpectedDoubleDoubles(map[string]float64{"PTS": 25, "REB": 11})
	if withZeros != withMissing {
		t.Errorf("missing stats should behave like zeros: %v != %v", withMissing, withZeros)
	}
}
