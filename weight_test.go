package spellchecker

import (
	"math"
	"testing"
)

func TestNegLog(t *testing.T) {
	for _, c := range []struct {
		x    float64
		want Weight
	}{
		{1, 0},
		{0, Weight(math.Inf(1))},
		{-1, Weight(math.Inf(1))},
	} {
		if got := negLog(c.x); got != c.want {
			t.Errorf("negLog(%v) = %v; want %v", c.x, got, c.want)
		}
	}

	if got := negLog(0.5); got <= 0 {
		t.Errorf("negLog(0.5) = %v; want > 0", got)
	}
}
