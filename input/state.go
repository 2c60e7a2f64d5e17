package input

import (
	"time"

	"github.com/gdamore/tcell/v2"
)

// Hold inference timing. Terminals report key repeats, never key
// release, so a key counts as held once its auto-repeat stream has
// started and for as long as repeat events keep arriving.
const (
	// holdConfirm is the window within which a second event for the
	// same action confirms the key is physically held
	holdConfirm = 600 * time.Millisecond

	// holdRelease is how long after the last event a confirmed hold
	// survives before the key is considered released
	holdRelease = 250 * time.Millisecond
)

type keyState struct {
	lastSeen time.Time
	repeated bool
}

// State accumulates terminal key events between frames and produces
// one Frame snapshot per frame. Single-owner: the main loop both
// feeds events and takes snapshots.
type State struct {
	table   *KeyTable
	keys    [ActionCount]keyState
	pressed [ActionCount]bool
}

// NewState creates an input state using the given key table
func NewState(table *KeyTable) *State {
	if table == nil {
		table = DefaultKeyTable()
	}
	return &State{table: table}
}

// HandleEvent records a terminal key event. Non-key events and unbound
// keys are ignored.
func (s *State) HandleEvent(ev tcell.Event, now time.Time) {
	keyEv, ok := ev.(*tcell.EventKey)
	if !ok {
		return
	}
	action, ok := s.table.Lookup(keyEv)
	if !ok {
		return
	}

	ks := &s.keys[action]
	if now.Sub(ks.lastSeen) < holdConfirm {
		// Terminal auto-repeat stream: the key is physically held
		ks.repeated = true
	} else {
		ks.repeated = false
		s.pressed[action] = true
	}
	ks.lastSeen = now
}

// Snapshot returns the input frame for this render frame and clears
// press edges.
func (s *State) Snapshot(now time.Time) Frame {
	var f Frame
	for a := Action(0); a < ActionCount; a++ {
		if s.pressed[a] {
			f.Press(a)
			s.pressed[a] = false
		}
		ks := &s.keys[a]
		if ks.repeated && now.Sub(ks.lastSeen) < holdRelease {
			f.SetHeld(a)
		}
	}
	return f
}
