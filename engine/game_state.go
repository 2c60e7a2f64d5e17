package engine

import (
	"github.com/lixenwraith/blockfall/board"
	"github.com/lixenwraith/blockfall/constants"
	"github.com/lixenwraith/blockfall/piece"
)

// Status is the top-level session state
type Status uint8

const (
	StatusRunning Status = iota
	StatusPaused
	StatusGameOver
)

// String returns a display name for the status
func (s Status) String() string {
	switch s {
	case StatusRunning:
		return "RUNNING"
	case StatusPaused:
		return "PAUSED"
	case StatusGameOver:
		return "GAME OVER"
	}
	return "UNKNOWN"
}

// Phase is the per-piece sub-cycle within a running session. Modeled
// as a single tagged value so states like "locking while falling"
// cannot be expressed.
type Phase uint8

const (
	// PhaseFalling: the piece has open space below and descends on the
	// gravity timer
	PhaseFalling Phase = iota

	// PhaseGrounded: the piece rests on support; the lock-delay timer
	// is counting down
	PhaseGrounded

	// PhaseLocking: the piece is being committed to the board and
	// completed rows are being cleared. Transient within one frame
	// step; the phase returns to PhaseFalling at the next spawn.
	PhaseLocking
)

// GameState is the complete state of one game session, reset wholesale
// on restart. Only the Controller mutates it; rendering reads it
// through Snapshot.
type GameState struct {
	Board   *board.Board
	Current ActivePiece
	Next    piece.Kind

	// Hold slot
	Hold    piece.Kind
	HasHold bool
	CanHold bool

	Score      int
	HighScore  int // best score across restarts, this process only
	Level      int
	StartLevel int
	Lines      int
	Combo      int

	Status Status
	Phase  Phase
}

// NewGameState creates a fresh session state at the given start level.
// No piece is spawned yet; the Controller spawns on construction.
func NewGameState(width, height, startLevel int) *GameState {
	if startLevel < 0 {
		startLevel = 0
	}
	return &GameState{
		Board:      board.New(width, height),
		StartLevel: startLevel,
		Level:      startLevel,
		Status:     StatusRunning,
		Phase:      PhaseFalling,
	}
}

// SpawnOrigin returns the fixed top-center origin for new pieces
func (gs *GameState) SpawnOrigin() (row, col int) {
	return 0, gs.Board.Width()/2 - 2
}

// RecalcLevel derives the level from cleared lines. Nondecreasing
// within a session.
func (gs *GameState) RecalcLevel() {
	gs.Level = gs.StartLevel + gs.Lines/constants.LinesPerLevel
}
