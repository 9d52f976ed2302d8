// Package spin computes spin outcomes for a wheel of n ordered sectors: a
// uniformly random winner, the terminal rotation angle that parks the fixed
// pointer on that winner, and the inverse mapping from any rotation back to
// the currently pointed-at sector. All functions are pure; Session adds the
// one-spin state machine used to drive an animation.
package spin

import (
	"errors"
	"math"
)

var (
	// ErrEmptyWheel is returned when an operation is attempted on a wheel
	// with no sectors.
	ErrEmptyWheel = errors.New("wheel has no items")

	// ErrIndexOutOfRange is returned when a winner index does not address a
	// sector of the wheel.
	ErrIndexOutOfRange = errors.New("winner index out of range")
)

// PointerAngle is the fixed pointer position the wheel rotates against,
// "up" in the drawing orientation where sector 0 starts at angle 0.
const PointerAngle = 3 * math.Pi / 2

const (
	minExtraTurns = 4 // every spin adds at least this many full forward turns
	fullTurn      = 2 * math.Pi
)

// PickWinner draws a winner index from a discrete uniform distribution over
// [0, n). Each index has probability exactly 1/n in expectation.
func PickWinner(n int, rng RandomSource) (int, error) {
	if n <= 0 {
		return 0, ErrEmptyWheel
	}
	idx := int(rng.Float64() * float64(n))
	if idx >= n { // guard against Float64 returning a value rounding to 1.0
		idx = n - 1
	}
	return idx, nil
}

// TerminalAngle returns the rotation at which the pointer aligns with the
// angular center of sector winner, plus 4 to 5 full forward turns beyond
// current so the animation always visibly spins forward.
func TerminalAngle(n, winner int, current float64, rng RandomSource) (float64, error) {
	if n <= 0 {
		return 0, ErrEmptyWheel
	}
	if winner < 0 || winner >= n {
		return 0, ErrIndexOutOfRange
	}

	sector := fullTurn / float64(n)
	target := PointerAngle - (float64(winner)+0.5)*sector

	turns := minExtraTurns + int(math.Floor(rng.Float64()*2))
	delta := posMod(target-current, fullTurn) + float64(turns)*fullTurn
	return current + delta, nil
}

// FocusedIndex returns which sector the fixed pointer overlaps at the given
// rotation. Sector i occupies [i*(2π/n), (i+1)*(2π/n)) in the wheel's local
// frame; the rotated-to-local mapping is (PointerAngle - rotation) mod 2π.
//
// Consistent with TerminalAngle: for every valid winner k and any starting
// angle, FocusedIndex(n, TerminalAngle(n, k, a)) == k.
func FocusedIndex(n int, rotation float64) (int, error) {
	if n <= 0 {
		return 0, ErrEmptyWheel
	}
	if n == 1 {
		return 0, nil
	}
	sector := fullTurn / float64(n)
	local := posMod(PointerAngle-rotation, fullTurn)
	return int(math.Floor(local/sector)) % n, nil
}

// posMod returns x mod m normalized into [0, m).
func posMod(x, m float64) float64 {
	r := math.Mod(x, m)
	if r < 0 {
		r += m
	}
	return r
}
