package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/blockfall/constants"
	"github.com/lixenwraith/blockfall/engine"
)

// Context carries everything a renderer needs for one frame: the
// screen, the game snapshot, and the computed layout origins.
type Context struct {
	Screen tcell.Screen
	Snap   engine.Snapshot

	// Top-left screen coordinates of the well interior
	WellX, WellY int

	// Left edge of the sidebar
	SidebarX int
}

// NewContext computes the frame layout from the current screen size;
// the well is centered vertically and the sidebar sits to its right.
func NewContext(screen tcell.Screen, snap engine.Snapshot) *Context {
	width, height := screen.Size()

	wellWidth := snap.Width * constants.CellWidth
	wellX := (width - wellWidth - constants.SidebarWidth) / 2
	if wellX < constants.CellWidth {
		wellX = constants.CellWidth
	}
	wellY := (height - snap.Height) / 2
	if wellY < 1 {
		wellY = 1
	}

	return &Context{
		Screen:   screen,
		Snap:     snap,
		WellX:    wellX,
		WellY:    wellY,
		SidebarX: wellX + wellWidth + 2*constants.CellWidth,
	}
}

// CellOrigin converts board coordinates to the screen position of the
// cell's left column.
func (ctx *Context) CellOrigin(row, col int) (x, y int) {
	return ctx.WellX + col*constants.CellWidth, ctx.WellY + row
}

// DrawBlock paints one board cell with the given style
func (ctx *Context) DrawBlock(row, col int, style tcell.Style) {
	if row < 0 {
		return
	}
	x, y := ctx.CellOrigin(row, col)
	for i := 0; i < constants.CellWidth; i++ {
		ctx.Screen.SetContent(x+i, y, ' ', nil, style)
	}
}

// DrawGhostBlock paints one cell as a ghost outline
func (ctx *Context) DrawGhostBlock(row, col int, style tcell.Style) {
	if row < 0 {
		return
	}
	x, y := ctx.CellOrigin(row, col)
	for i := 0; i < constants.CellWidth; i++ {
		ctx.Screen.SetContent(x+i, y, '░', nil, style)
	}
}

// DrawText writes a string starting at the given screen position
func (ctx *Context) DrawText(x, y int, text string, style tcell.Style) {
	for i, r := range text {
		ctx.Screen.SetContent(x+i, y, r, nil, style)
	}
}
