package spin

import (
	"errors"
	"math"
	"testing"

	"gonum.org/v1/gonum/stat/distuv"
)

func TestPickWinner(t *testing.T) {
	t.Run("empty wheel returns error", func(t *testing.T) {
		_, err := PickWinner(0, NewSeededRNG(1))
		if !errors.Is(err, ErrEmptyWheel) {
			t.Fatalf("expected ErrEmptyWheel, got %v", err)
		}
	})

	t.Run("single item always wins", func(t *testing.T) {
		rng := NewSeededRNG(42)
		for i := 0; i < 1000; i++ {
			idx, err := PickWinner(1, rng)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if idx != 0 {
				t.Fatalf("expected index 0, got %d", idx)
			}
		}
	})

	t.Run("index always in range", func(t *testing.T) {
		rng := NewSeededRNG(7)
		for i := 0; i < 10000; i++ {
			idx, err := PickWinner(6, rng)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if idx < 0 || idx >= 6 {
				t.Fatalf("index %d out of range [0,6)", idx)
			}
		}
	})
}

// Chi-square goodness-of-fit over 100k trials with a 6-item wheel.
// The null hypothesis (uniform selection) must not be rejected at p=0.01.
func TestPickWinnerUniformity(t *testing.T) {
	const (
		n      = 6
		trials = 100000
	)
	rng := NewSeededRNG(20240115)

	counts := make([]int, n)
	for i := 0; i < trials; i++ {
		idx, err := PickWinner(n, rng)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		counts[idx]++
	}

	expected := float64(trials) / float64(n)
	var chi2 float64
	for _, c := range counts {
		diff := float64(c) - expected
		chi2 += diff * diff / expected
	}

	dist := distuv.ChiSquared{K: float64(n - 1)}
	if p := dist.Survival(chi2); p < 0.01 {
		t.Fatalf("uniformity rejected: chi2=%.3f p=%.5f counts=%v", chi2, p, counts)
	}
}

func TestTerminalAngle(t *testing.T) {
	t.Run("empty wheel returns error", func(t *testing.T) {
		_, err := TerminalAngle(0, 0, 0, NewSeededRNG(1))
		if !errors.Is(err, ErrEmptyWheel) {
			t.Fatalf("expected ErrEmptyWheel, got %v", err)
		}
	})

	t.Run("winner out of range returns error", func(t *testing.T) {
		_, err := TerminalAngle(3, 3, 0, NewSeededRNG(1))
		if !errors.Is(err, ErrIndexOutOfRange) {
			t.Fatalf("expected ErrIndexOutOfRange, got %v", err)
		}
	})

	t.Run("always spins at least four full turns forward", func(t *testing.T) {
		rng := NewSeededRNG(3)
		for i := 0; i < 1000; i++ {
			current := (rng.Float64() - 0.5) * 100
			target, err := TerminalAngle(6, i%6, current, rng)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if delta := target - current; delta < 4*fullTurn {
				t.Fatalf("delta %.4f below four full turns", delta)
			}
		}
	})

	t.Run("single item never divides by zero", func(t *testing.T) {
		target, err := TerminalAngle(1, 0, 1.5, NewSeededRNG(9))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if math.IsNaN(target) || math.IsInf(target, 0) {
			t.Fatalf("degenerate target angle %v", target)
		}
	})
}

func TestFocusedIndex(t *testing.T) {
	t.Run("empty wheel returns error", func(t *testing.T) {
		_, err := FocusedIndex(0, 1.0)
		if !errors.Is(err, ErrEmptyWheel) {
			t.Fatalf("expected ErrEmptyWheel, got %v", err)
		}
	})

	t.Run("single item always focused", func(t *testing.T) {
		for _, rotation := range []float64{-100, -1, 0, 0.5, math.Pi, 99} {
			idx, err := FocusedIndex(1, rotation)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if idx != 0 {
				t.Fatalf("rotation %v: expected 0, got %d", rotation, idx)
			}
		}
	})

	t.Run("zero rotation points at the sector under the pointer", func(t *testing.T) {
		// With 4 sectors the pointer reference 3π/2 falls in sector 3.
		idx, err := FocusedIndex(4, 0)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if idx != 3 {
			t.Fatalf("expected sector 3, got %d", idx)
		}
	})
}

// Round-trip invariant: the focused index at the terminal angle is always the
// committed winner, for every wheel size, winner, and starting angle.
func TestAngleRoundTrip(t *testing.T) {
	rng := NewSeededRNG(99)
	angles := []float64{-37.2, -math.Pi, -0.001, 0, 0.5, math.Pi, 6.28, 123.456}

	for _, n := range []int{1, 2, 6, 12} {
		for winner := 0; winner < n; winner++ {
			for _, start := range angles {
				target, err := TerminalAngle(n, winner, start, rng)
				if err != nil {
					t.Fatalf("TerminalAngle(%d, %d, %v): %v", n, winner, start, err)
				}
				got, err := FocusedIndex(n, target)
				if err != nil {
					t.Fatalf("FocusedIndex(%d, %v): %v", n, target, err)
				}
				if got != winner {
					t.Fatalf("n=%d winner=%d start=%v: focused %d at terminal angle %v",
						n, winner, start, got, target)
				}
			}
		}
	}
}

func TestPosMod(t *testing.T) {
	tests := []struct {
		x, m, want float64
	}{
		{0, fullTurn, 0},
		{fullTurn, fullTurn, 0},
		{-1, fullTurn, fullTurn - 1},
		{3 * fullTurn, fullTurn, 0},
		{-0.5 * fullTurn, fullTurn, 0.5 * fullTurn},
	}
	for _, tt := range tests {
		if got := posMod(tt.x, tt.m); math.Abs(got-tt.want) > 1e-9 {
			t.Fatalf("posMod(%v, %v) = %v, want %v", tt.x, tt.m, got, tt.want)
		}
	}
}
