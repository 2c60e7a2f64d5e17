package render

import (
	"github.com/lixenwraith/blockfall/constants"
)

// WellRenderer draws the well frame and the locked stack
type WellRenderer struct{}

// NewWellRenderer creates the well renderer
func NewWellRenderer() *WellRenderer {
	return &WellRenderer{}
}

// Render draws the border and every filled cell of the board
func (r *WellRenderer) Render(ctx *Context) {
	snap := ctx.Snap

	// Border
	left := ctx.WellX - constants.CellWidth
	right := ctx.WellX + snap.Width*constants.CellWidth
	for row := -1; row <= snap.Height; row++ {
		y := ctx.WellY + row
		for i := 0; i < constants.CellWidth; i++ {
			ctx.Screen.SetContent(left+i, y, '█', nil, StyleFrame)
			ctx.Screen.SetContent(right+i, y, '█', nil, StyleFrame)
		}
	}
	for x := left; x < right+constants.CellWidth; x++ {
		ctx.Screen.SetContent(x, ctx.WellY+snap.Height, '█', nil, StyleFrame)
	}

	// Locked stack
	for row := 0; row < snap.Height; row++ {
		for col := 0; col < snap.Width; col++ {
			cell := snap.Cells[row][col]
			if cell.Filled {
				ctx.DrawBlock(row, col, BlockStyle(cell.Color))
			}
		}
	}
}
