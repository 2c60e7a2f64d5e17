package engine

import (
	"testing"

	"github.com/lixenwraith/blockfall/piece"
)

// TestGameStateInitialization verifies a fresh session's fields
func TestGameStateInitialization(t *testing.T) {
	gs := NewGameState(10, 20, 0)

	if gs.Board.Width() != 10 || gs.Board.Height() != 20 {
		t.Errorf("Expected 10x20 board, got %dx%d", gs.Board.Width(), gs.Board.Height())
	}
	if gs.Score != 0 || gs.Lines != 0 || gs.Combo != 0 {
		t.Errorf("Expected zero counters, got score=%d lines=%d combo=%d", gs.Score, gs.Lines, gs.Combo)
	}
	if gs.Status != StatusRunning {
		t.Errorf("Expected Running, got %v", gs.Status)
	}
	if gs.HasHold {
		t.Error("Expected empty hold slot")
	}
}

// TestGameStateNegativeStartLevel verifies clamping to zero
func TestGameStateNegativeStartLevel(t *testing.T) {
	gs := NewGameState(10, 20, -3)
	if gs.Level != 0 || gs.StartLevel != 0 {
		t.Errorf("Expected start level clamped to 0, got level=%d start=%d", gs.Level, gs.StartLevel)
	}
}

// TestRecalcLevel verifies level derivation from cleared lines
func TestRecalcLevel(t *testing.T) {
	cases := []struct {
		start, lines, want int
	}{
		{0, 0, 0},
		{0, 9, 0},
		{0, 10, 1},
		{0, 25, 2},
		{5, 10, 6},
	}
	for _, tc := range cases {
		gs := NewGameState(10, 20, tc.start)
		gs.Lines = tc.lines
		gs.RecalcLevel()
		if gs.Level != tc.want {
			t.Errorf("start=%d lines=%d: expected level %d, got %d", tc.start, tc.lines, tc.want, gs.Level)
		}
	}
}

// TestSpawnOrigin verifies the fixed top-center origin
func TestSpawnOrigin(t *testing.T) {
	gs := NewGameState(10, 20, 0)
	row, col := gs.SpawnOrigin()
	if row != 0 || col != 3 {
		t.Errorf("Expected origin (0,3), got (%d,%d)", row, col)
	}
}

// TestSnapshotIsolation verifies mutating a snapshot cannot touch live state
func TestSnapshotIsolation(t *testing.T) {
	c, _ := newTestController(piece.T)

	snap := c.Snapshot()
	snap.Cells[5][5].Filled = true
	snap.ActiveCells[0] = piece.Offset{Row: 99, Col: 99}

	if c.State.Board.Cell(5, 5).Filled {
		t.Error("Expected board untouched by snapshot mutation")
	}
	fresh := c.Snapshot()
	if fresh.ActiveCells[0].Row == 99 {
		t.Error("Expected active cells recomputed per snapshot")
	}
}
