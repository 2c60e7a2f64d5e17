package engine

import "github.com/lixenwraith/blockfall/piece"

// ActivePiece is the piece currently falling: a catalog kind plus its
// rotation state and origin on the board. It exists from spawn until
// lock, after which it is replaced wholesale by the next spawn.
type ActivePiece struct {
	Kind     piece.Kind
	Rotation int
	Row, Col int // origin of the shape bounding box
}

// Cells returns the four absolute board cells the piece occupies
func (p ActivePiece) Cells() []piece.Offset {
	return p.CellsAt(p.Row, p.Col, p.Rotation)
}

// CellsAt returns the absolute cells the piece would occupy at a
// candidate origin and rotation, without mutating the piece. Movement
// and rotation use this to collision-test before committing.
func (p ActivePiece) CellsAt(row, col, rotation int) []piece.Offset {
	offsets := piece.ShapeOffsets(p.Kind, rotation)
	cells := make([]piece.Offset, len(offsets))
	for i, o := range offsets {
		cells[i] = piece.Offset{Row: row + o.Row, Col: col + o.Col}
	}
	return cells
}

// Color returns the piece's base color
func (p ActivePiece) Color() piece.Color {
	return p.Kind.Color()
}
