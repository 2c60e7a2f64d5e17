package input

import "github.com/gdamore/tcell/v2"

// KeyTable maps terminal keys to logical actions. Special keys and
// printable runes are looked up separately, matching how tcell reports
// them.
type KeyTable struct {
	SpecialKeys map[tcell.Key]Action
	Runes       map[rune]Action
}

// DefaultKeyTable returns the built-in bindings: arrows plus vi-style
// movement, z/x rotation, space hard drop.
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]Action{
			tcell.KeyLeft:   ActionMoveLeft,
			tcell.KeyRight:  ActionMoveRight,
			tcell.KeyDown:   ActionSoftDrop,
			tcell.KeyUp:     ActionRotateCW,
			tcell.KeyEscape: ActionQuit,
			tcell.KeyCtrlC:  ActionQuit,
		},
		Runes: map[rune]Action{
			'h': ActionMoveLeft,
			'l': ActionMoveRight,
			'j': ActionSoftDrop,
			'k': ActionRotateCW,
			'x': ActionRotateCW,
			'z': ActionRotateCCW,
			' ': ActionHardDrop,
			'c': ActionHold,
			'p': ActionPause,
			'r': ActionRestart,
			'q': ActionQuit,
		},
	}
}

// Lookup resolves a tcell key event to an action
func (kt *KeyTable) Lookup(ev *tcell.EventKey) (Action, bool) {
	if ev.Key() == tcell.KeyRune {
		a, ok := kt.Runes[ev.Rune()]
		return a, ok
	}
	a, ok := kt.SpecialKeys[ev.Key()]
	return a, ok
}
