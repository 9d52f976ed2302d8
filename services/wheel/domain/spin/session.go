package spin

import (
	"math"
	"time"
)

// State is the phase of one spin cycle.
type State int

const (
	StateIdle State = iota
	StateSpinning
	StateSettled
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateSpinning:
		return "spinning"
	case StateSettled:
		return "settled"
	default:
		return "unknown"
	}
}

const (
	minSpinDuration  = 3600 * time.Millisecond
	spinDurationSpan = 900 * time.Millisecond
)

// Result is the outcome committed at spin start. The winner is decided
// before the first frame renders; the animation only reveals it.
type Result struct {
	Winner        int
	TerminalAngle float64
	Duration      time.Duration
}

// Frame is one animation tick: the rotation to render, the sector the
// pointer currently overlaps (for tick/highlight feedback), and whether the
// spin has settled.
type Frame struct {
	Rotation float64
	Focused  int
	Settled  bool
}

// Session drives one wheel's spin cycle: Idle → Spinning → Settled, with
// Settled → Idle implicit on the next Start. Not safe for concurrent use;
// a session belongs to a single animation loop.
type Session struct {
	rng      RandomSource
	state    State
	rotation float64 // carries over between spins as the next start angle

	n       int
	result  Result
	startAt float64
}

// NewSession creates an idle session. Pass nil to use the default
// crypto-backed random source.
func NewSession(rng RandomSource) *Session {
	if rng == nil {
		rng = DefaultRNG()
	}
	return &Session{rng: rng}
}

// State returns the current phase.
func (s *Session) State() State { return s.state }

// Rotation returns the wheel's current rotation angle.
func (s *Session) Rotation() float64 { return s.rotation }

// Start commits a spin outcome for a wheel of n sectors and transitions to
// Spinning. A Start while already Spinning is a no-op: the previously
// committed result is returned unchanged and no state moves.
func (s *Session) Start(n int) (Result, error) {
	if s.state == StateSpinning {
		return s.result, nil
	}
	if n <= 0 {
		return Result{}, ErrEmptyWheel
	}

	winner, err := PickWinner(n, s.rng)
	if err != nil {
		return Result{}, err
	}
	terminal, err := TerminalAngle(n, winner, s.rotation, s.rng)
	if err != nil {
		return Result{}, err
	}

	s.n = n
	s.startAt = s.rotation
	s.result = Result{
		Winner:        winner,
		TerminalAngle: terminal,
		Duration:      minSpinDuration + time.Duration(s.rng.Float64()*float64(spinDurationSpan)),
	}
	s.state = StateSpinning
	return s.result, nil
}

// Tick advances the animation to the given elapsed time since Start and
// returns the frame to render. Once elapsed reaches the spin duration the
// rotation is pinned to the exact terminal angle, so the focused index at
// the final frame always equals the committed winner.
//
// Ticking an idle or settled session returns the resting frame.
func (s *Session) Tick(elapsed time.Duration) Frame {
	if s.state != StateSpinning {
		focused := 0
		if s.n > 0 {
			focused, _ = FocusedIndex(s.n, s.rotation)
		}
		return Frame{Rotation: s.rotation, Focused: focused, Settled: s.state == StateSettled}
	}

	if elapsed >= s.result.Duration {
		s.rotation = s.result.TerminalAngle
		s.state = StateSettled
		return Frame{Rotation: s.rotation, Focused: s.result.Winner, Settled: true}
	}

	progress := easeInOutCubic(float64(elapsed) / float64(s.result.Duration))
	s.rotation = s.startAt + (s.result.TerminalAngle-s.startAt)*progress
	focused, _ := FocusedIndex(s.n, s.rotation)
	return Frame{Rotation: s.rotation, Focused: focused}
}

// easeInOutCubic maps linear progress p ∈ [0,1] to eased progress:
// slow start, fast middle, slow landing.
func easeInOutCubic(p float64) float64 {
	if p < 0.5 {
		return 4 * p * p * p
	}
	return 1 - math.Pow(-2*p+2, 3)/2
}
