package board

import "github.com/lixenwraith/blockfall/piece"

// Cell is one square of the well. A cell is either empty or filled
// with the color of the piece that locked into it.
type Cell struct {
	Filled bool
	Color  piece.Color
}

// Board is the fixed-size well that pieces lock into. Rows grow
// downward; row 0 is the top. Cells above the top of the well
// (negative rows) are treated as empty and in-bounds, so a freshly
// spawned piece may overhang the visible area.
type Board struct {
	width  int
	height int
	cells  [][]Cell // [row][col]
}

// New creates an empty board with the given dimensions
func New(width, height int) *Board {
	b := &Board{width: width, height: height}
	b.cells = make([][]Cell, height)
	for row := range b.cells {
		b.cells[row] = make([]Cell, width)
	}
	return b
}

// Width returns the number of columns
func (b *Board) Width() int { return b.width }

// Height returns the number of rows
func (b *Board) Height() int { return b.height }

// Cell returns the cell at the given coordinate. Coordinates outside
// the well read as empty.
func (b *Board) Cell(row, col int) Cell {
	if row < 0 || row >= b.height || col < 0 || col >= b.width {
		return Cell{}
	}
	return b.cells[row][col]
}

// Collides reports whether any of the given absolute cells lies beyond
// a side wall, below the floor, or on a filled cell. Cells above the
// top of the well only collide if they are out of bounds horizontally.
func (b *Board) Collides(cells []piece.Offset) bool {
	for _, c := range cells {
		if c.Col < 0 || c.Col >= b.width || c.Row >= b.height {
			return true
		}
		if c.Row >= 0 && b.cells[c.Row][c.Col].Filled {
			return true
		}
	}
	return false
}

// Lock marks the given absolute cells filled with the given color.
// The caller must have verified the placement with Collides; cells
// above the top of the well are dropped silently.
func (b *Board) Lock(cells []piece.Offset, color piece.Color) {
	for _, c := range cells {
		if c.Row >= 0 && c.Row < b.height && c.Col >= 0 && c.Col < b.width {
			b.cells[c.Row][c.Col] = Cell{Filled: true, Color: color}
		}
	}
}

// FullRows returns the indices of all completely filled rows, top to
// bottom. Used by rendering to flash rows before ClearLines removes them.
func (b *Board) FullRows() []int {
	var full []int
	for row := 0; row < b.height; row++ {
		if b.rowFull(row) {
			full = append(full, row)
		}
	}
	return full
}

func (b *Board) rowFull(row int) bool {
	for col := 0; col < b.width; col++ {
		if !b.cells[row][col].Filled {
			return false
		}
	}
	return true
}

// ClearLines removes every completely filled row, collapses the rows
// above each removed row downward preserving their order, inserts
// empty rows at the top, and returns the number of rows removed.
func (b *Board) ClearLines() int {
	cleared := 0
	// Walk bottom-up, compacting surviving rows into place
	dst := b.height - 1
	for src := b.height - 1; src >= 0; src-- {
		if b.rowFull(src) {
			cleared++
			continue
		}
		if dst != src {
			b.cells[dst] = b.cells[src]
		}
		dst--
	}
	for ; dst >= 0; dst-- {
		b.cells[dst] = make([]Cell, b.width)
	}
	return cleared
}

// IsGameOver reports whether a freshly spawned piece at the given
// absolute cells already collides with filled cells, which is the
// terminal condition.
func (b *Board) IsGameOver(spawnCells []piece.Offset) bool {
	return b.Collides(spawnCells)
}

// Reset empties every cell, keeping dimensions
func (b *Board) Reset() {
	for row := range b.cells {
		for col := range b.cells[row] {
			b.cells[row][col] = Cell{}
		}
	}
}
