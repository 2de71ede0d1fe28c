package generate

import (
	"math"
	"math/rand"
	"testing"
	"time"

	"seed-maze/internal/gamemap"
)

func TestTimeBudgetEasyFormula(t *testing.T) {
	g, _ := Carve(15, 15, rand.New(rand.NewSource(2024)))
	d := gamemap.ShortestPath(g, gamemap.Position{}, gamemap.Position{X: 14, Y: 14})
	if d == gamemap.Unreachable {
		t.Fatal("goal unreachable")
	}
	want := float64(d)/3.5 + 3.0
	if got := TimeBudgetSeconds(d, Easy, 0); got != want {
		t.Errorf("TimeBudgetSeconds(%d, Easy, 0) = %v, want %v", d, got, want)
	}
}

func TestTimeBudgetDecay(t *testing.T) {
	cases := []struct {
		name  string
		path  int
		tier  Tier
		level int
		want  float64
	}{
		{"easy level 0", 35, Easy, 0, 13.0},
		{"medium level 0", 0, Medium, 0, 6.0},
		{"medium level 10", 7, Medium, 10, 2.0 + 6.0 - 0.7},
		{"hard level 100", 0, Hard, 100, 12.0 - 7.0},
		{"easy buffer exhausted", 7, Easy, 50, 2.0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := TimeBudgetSeconds(tc.path, tc.tier, tc.level)
			if math.Abs(got-tc.want) > 1e-9 {
				t.Errorf("TimeBudgetSeconds(%d,%v,%d) = %v, want %v", tc.path, tc.tier, tc.level, got, tc.want)
			}
		})
	}
}

// TestTimeBudgetClampsToBase: once the decay passes the buffer, the budget
// is exactly the travel time.
func TestTimeBudgetClampsToBase(t *testing.T) {
	const path = 60
	base := float64(path) / PaceCellsPerSecond
	for _, level := range []int{172, 200, 1000} {
		if got := TimeBudgetSeconds(path, Hard, level); got != base {
			t.Errorf("Hard level %d: got %v, want base %v", level, got, base)
		}
	}
}

func TestTimeBudgetNonNegative(t *testing.T) {
	for _, tier := range Tiers() {
		for level := 0; level < 400; level += 7 {
			for _, path := range []int{-5, 0, 1, 40, 300} {
				base := float64(max(path, 0)) / PaceCellsPerSecond
				got := TimeBudgetSeconds(path, tier, level)
				if got < base || base < 0 {
					t.Fatalf("%v level=%d path=%d: budget %v below base %v", tier, level, path, got, base)
				}
			}
		}
	}
}

func TestTimeBudgetDuration(t *testing.T) {
	if got, want := TimeBudget(7, Easy, 0), 5*time.Second; got != want {
		t.Errorf("TimeBudget(7, Easy, 0) = %v, want %v", got, want)
	}
}
