package spin

import (
	"errors"
	"testing"
	"time"
)

func TestSessionStart(t *testing.T) {
	t.Run("empty wheel returns error", func(t *testing.T) {
		s := NewSession(NewSeededRNG(1))
		if _, err := s.Start(0); !errors.Is(err, ErrEmptyWheel) {
			t.Fatalf("expected ErrEmptyWheel, got %v", err)
		}
		if s.State() != StateIdle {
			t.Fatalf("expected idle after failed start, got %v", s.State())
		}
	})

	t.Run("start transitions to spinning", func(t *testing.T) {
		s := NewSession(NewSeededRNG(2))
		result, err := s.Start(6)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s.State() != StateSpinning {
			t.Fatalf("expected spinning, got %v", s.State())
		}
		if result.Winner < 0 || result.Winner >= 6 {
			t.Fatalf("winner %d out of range", result.Winner)
		}
		if result.Duration < minSpinDuration || result.Duration > minSpinDuration+spinDurationSpan {
			t.Fatalf("duration %v out of range", result.Duration)
		}
	})

	t.Run("start while spinning is a no-op", func(t *testing.T) {
		s := NewSession(NewSeededRNG(3))
		first, err := s.Start(6)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		rotationBefore := s.Rotation()

		second, err := s.Start(6)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if second != first {
			t.Fatalf("second start changed the committed result: %+v vs %+v", second, first)
		}
		if s.State() != StateSpinning {
			t.Fatalf("expected still spinning, got %v", s.State())
		}
		if s.Rotation() != rotationBefore {
			t.Fatalf("rotation moved on a no-op start")
		}
	})

	t.Run("settled goes back to idle on next start", func(t *testing.T) {
		s := NewSession(NewSeededRNG(4))
		first, _ := s.Start(6)
		s.Tick(first.Duration)
		if s.State() != StateSettled {
			t.Fatalf("expected settled, got %v", s.State())
		}

		if _, err := s.Start(6); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s.State() != StateSpinning {
			t.Fatalf("expected spinning after restart, got %v", s.State())
		}
	})
}

func TestSessionTick(t *testing.T) {
	t.Run("final frame pins the committed winner", func(t *testing.T) {
		for seed := uint64(0); seed < 50; seed++ {
			s := NewSession(NewSeededRNG(seed))
			result, err := s.Start(12)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			frame := s.Tick(result.Duration)
			if !frame.Settled {
				t.Fatalf("seed %d: expected settled frame", seed)
			}
			if frame.Rotation != result.TerminalAngle {
				t.Fatalf("seed %d: rotation %v not pinned to terminal %v",
					seed, frame.Rotation, result.TerminalAngle)
			}
			if frame.Focused != result.Winner {
				t.Fatalf("seed %d: focused %d != winner %d", seed, frame.Focused, result.Winner)
			}
		}
	})

	t.Run("rotation advances monotonically", func(t *testing.T) {
		s := NewSession(NewSeededRNG(11))
		result, _ := s.Start(6)

		prev := s.Rotation()
		for elapsed := time.Duration(0); elapsed < result.Duration; elapsed += 100 * time.Millisecond {
			frame := s.Tick(elapsed)
			if frame.Rotation < prev {
				t.Fatalf("rotation moved backward at %v: %v < %v", elapsed, frame.Rotation, prev)
			}
			prev = frame.Rotation
		}
	})

	t.Run("mid-spin frames report the currently focused sector", func(t *testing.T) {
		s := NewSession(NewSeededRNG(12))
		result, _ := s.Start(6)

		frame := s.Tick(result.Duration / 2)
		if frame.Settled {
			t.Fatal("settled before duration elapsed")
		}
		if frame.Focused < 0 || frame.Focused >= 6 {
			t.Fatalf("focused %d out of range", frame.Focused)
		}
	})

	t.Run("ticking an idle session returns the resting frame", func(t *testing.T) {
		s := NewSession(NewSeededRNG(13))
		frame := s.Tick(time.Second)
		if frame.Settled || frame.Rotation != 0 {
			t.Fatalf("unexpected idle frame %+v", frame)
		}
	})
}

func TestEaseInOutCubic(t *testing.T) {
	if got := easeInOutCubic(0); got != 0 {
		t.Fatalf("ease(0) = %v, want 0", got)
	}
	if got := easeInOutCubic(1); got != 1 {
		t.Fatalf("ease(1) = %v, want 1", got)
	}
	if got := easeInOutCubic(0.5); got != 0.5 {
		t.Fatalf("ease(0.5) = %v, want 0.5", got)
	}
	// Slow start: first tenth covers far less than a tenth of the distance.
	if got := easeInOutCubic(0.1); got >= 0.1 {
		t.Fatalf("ease(0.1) = %v, expected below 0.1", got)
	}
}
