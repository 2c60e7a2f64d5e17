package engine

import (
	"github.com/lixenwraith/blockfall/board"
	"github.com/lixenwraith/blockfall/piece"
)

// Snapshot is the read-only view of one frame's game state handed to
// rendering. It copies everything it exposes, so renderers can never
// mutate live state and the controller can keep mutating after the
// snapshot is taken.
type Snapshot struct {
	Width  int
	Height int
	Cells  [][]board.Cell

	ActiveCells []piece.Offset
	ActiveColor piece.Color
	GhostCells  []piece.Offset

	Next    piece.Kind
	Hold    piece.Kind
	HasHold bool

	Score     int
	HighScore int
	Level     int
	Lines     int
	Combo     int

	Status Status
	Phase  Phase
}

// Snapshot captures the current frame's render state
func (c *Controller) Snapshot() Snapshot {
	st := c.State
	w, h := st.Board.Width(), st.Board.Height()

	cells := make([][]board.Cell, h)
	for row := 0; row < h; row++ {
		cells[row] = make([]board.Cell, w)
		for col := 0; col < w; col++ {
			cells[row][col] = st.Board.Cell(row, col)
		}
	}

	snap := Snapshot{
		Width:     w,
		Height:    h,
		Cells:     cells,
		Next:      st.Next,
		Hold:      st.Hold,
		HasHold:   st.HasHold,
		Score:     st.Score,
		HighScore: st.HighScore,
		Level:     st.Level,
		Lines:     st.Lines,
		Combo:     st.Combo,
		Status:    st.Status,
		Phase:     st.Phase,
	}

	// The terminal spawn collision leaves no drawable active piece
	if st.Status != StatusGameOver {
		snap.ActiveCells = st.Current.Cells()
		snap.ActiveColor = st.Current.Color()
		snap.GhostCells = c.GhostCells()
	}
	return snap
}
