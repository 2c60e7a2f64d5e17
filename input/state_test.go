package input

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
)

func keyEvent(key tcell.Key, r rune) *tcell.EventKey {
	return tcell.NewEventKey(key, r, tcell.ModNone)
}

// TestLookupDefaults verifies representative default bindings
func TestLookupDefaults(t *testing.T) {
	kt := DefaultKeyTable()

	cases := []struct {
		name string
		ev   *tcell.EventKey
		want Action
	}{
		{"left arrow", keyEvent(tcell.KeyLeft, 0), ActionMoveLeft},
		{"vi left", keyEvent(tcell.KeyRune, 'h'), ActionMoveLeft},
		{"rotate", keyEvent(tcell.KeyUp, 0), ActionRotateCW},
		{"counter rotate", keyEvent(tcell.KeyRune, 'z'), ActionRotateCCW},
		{"hard drop", keyEvent(tcell.KeyRune, ' '), ActionHardDrop},
		{"quit", keyEvent(tcell.KeyCtrlC, 0), ActionQuit},
	}
	for _, tc := range cases {
		got, ok := kt.Lookup(tc.ev)
		if !ok || got != tc.want {
			t.Errorf("%s: expected %v, got %v (ok=%v)", tc.name, tc.want, got, ok)
		}
	}

	if _, ok := kt.Lookup(keyEvent(tcell.KeyRune, '?')); ok {
		t.Error("Expected unbound rune to miss")
	}
}

// TestStatePressEdge verifies a single event yields one press edge
func TestStatePressEdge(t *testing.T) {
	s := NewState(nil)
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	s.HandleEvent(keyEvent(tcell.KeyLeft, 0), now)
	f := s.Snapshot(now)
	if !f.Pressed(ActionMoveLeft) {
		t.Error("Expected MoveLeft pressed")
	}
	if !f.Held(ActionMoveLeft) {
		t.Error("Expected a pressed action to read as held in the same frame")
	}

	// The edge clears on the next snapshot
	f = s.Snapshot(now.Add(16 * time.Millisecond))
	if f.Pressed(ActionMoveLeft) {
		t.Error("Expected press edge cleared on second snapshot")
	}
}

// TestStateHoldDetection verifies terminal auto-repeat events promote a
// key to held, and silence releases it
func TestStateHoldDetection(t *testing.T) {
	s := NewState(nil)
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	s.HandleEvent(keyEvent(tcell.KeyRight, 0), now)
	s.Snapshot(now)

	// Repeat events arriving within the confirm window mean held
	now = now.Add(500 * time.Millisecond)
	s.HandleEvent(keyEvent(tcell.KeyRight, 0), now)
	f := s.Snapshot(now)
	if f.Pressed(ActionMoveRight) {
		t.Error("Expected repeat event to not count as a new press")
	}
	if !f.Held(ActionMoveRight) {
		t.Error("Expected MoveRight held after repeat event")
	}

	// Silence past the release window drops the hold
	f = s.Snapshot(now.Add(400 * time.Millisecond))
	if f.Held(ActionMoveRight) {
		t.Error("Expected hold released after silence")
	}

	// The next event after a long gap is a fresh press
	now = now.Add(2 * time.Second)
	s.HandleEvent(keyEvent(tcell.KeyRight, 0), now)
	f = s.Snapshot(now)
	if !f.Pressed(ActionMoveRight) {
		t.Error("Expected fresh press after long gap")
	}
}

// TestStateIgnoresUnboundAndNonKey verifies stray events do nothing
func TestStateIgnoresUnboundAndNonKey(t *testing.T) {
	s := NewState(nil)
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	s.HandleEvent(keyEvent(tcell.KeyRune, '?'), now)
	s.HandleEvent(tcell.NewEventResize(80, 24), now)

	f := s.Snapshot(now)
	for a := Action(0); a < ActionCount; a++ {
		if f.Pressed(a) || f.Held(a) {
			t.Errorf("Expected no action, got %v", a)
		}
	}
}
