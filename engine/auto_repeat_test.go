package engine

import (
	"testing"
	"time"
)

// TestAutoRepeatDelayThenInterval verifies the two-stage countdown
func TestAutoRepeatDelayThenInterval(t *testing.T) {
	ar := newAutoRepeat(250*time.Millisecond, 100*time.Millisecond)

	if !ar.press() {
		t.Fatal("Expected press to fire immediately")
	}

	// Below the initial delay: nothing
	if fired := ar.advance(200 * time.Millisecond); fired != 0 {
		t.Errorf("Expected 0 firings before delay, got %d", fired)
	}
	// Crossing the delay: one firing
	if fired := ar.advance(60 * time.Millisecond); fired != 1 {
		t.Errorf("Expected 1 firing at delay, got %d", fired)
	}
	// Each interval afterwards: one firing
	if fired := ar.advance(100 * time.Millisecond); fired != 1 {
		t.Errorf("Expected 1 firing per interval, got %d", fired)
	}
}

// TestAutoRepeatLongFrame verifies a long frame yields several firings
func TestAutoRepeatLongFrame(t *testing.T) {
	ar := newAutoRepeat(250*time.Millisecond, 100*time.Millisecond)
	ar.press()

	// 250ms delay plus three full intervals in one frame
	if fired := ar.advance(560 * time.Millisecond); fired != 4 {
		t.Errorf("Expected 4 firings in a 560ms frame, got %d", fired)
	}
}

// TestAutoRepeatRelease verifies releasing stops repeats
func TestAutoRepeatRelease(t *testing.T) {
	ar := newAutoRepeat(250*time.Millisecond, 100*time.Millisecond)
	ar.press()
	ar.release()

	if fired := ar.advance(time.Second); fired != 0 {
		t.Errorf("Expected 0 firings after release, got %d", fired)
	}

	// A fresh press restarts the delay
	ar.press()
	if fired := ar.advance(200 * time.Millisecond); fired != 0 {
		t.Errorf("Expected 0 firings before new delay, got %d", fired)
	}
}

// TestAutoRepeatZeroDelay verifies the soft-drop configuration repeats
// from the first interval
func TestAutoRepeatZeroDelay(t *testing.T) {
	ar := newAutoRepeat(0, 50*time.Millisecond)
	ar.press()

	if fired := ar.advance(50 * time.Millisecond); fired != 1 {
		t.Errorf("Expected 1 firing after one interval, got %d", fired)
	}
}
