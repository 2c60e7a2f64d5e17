package render

import (
	"fmt"

	"github.com/lixenwraith/blockfall/constants"
	"github.com/lixenwraith/blockfall/piece"
)

// SidebarRenderer draws the score panel and the next/hold previews
type SidebarRenderer struct{}

// NewSidebarRenderer creates the sidebar renderer
func NewSidebarRenderer() *SidebarRenderer {
	return &SidebarRenderer{}
}

// Render draws counters and piece previews right of the well
func (r *SidebarRenderer) Render(ctx *Context) {
	snap := ctx.Snap
	x := ctx.SidebarX
	y := ctx.WellY

	ctx.DrawText(x, y, "SCORE", StyleLabel)
	ctx.DrawText(x, y+1, fmt.Sprintf("%d", snap.Score), StyleText)
	ctx.DrawText(x, y+3, "HIGH", StyleLabel)
	ctx.DrawText(x, y+4, fmt.Sprintf("%d", snap.HighScore), StyleText)
	ctx.DrawText(x, y+6, "LEVEL", StyleLabel)
	ctx.DrawText(x, y+7, fmt.Sprintf("%d", snap.Level), StyleText)
	ctx.DrawText(x, y+9, "LINES", StyleLabel)
	ctx.DrawText(x, y+10, fmt.Sprintf("%d", snap.Lines), StyleText)
	if snap.Combo > 1 {
		ctx.DrawText(x, y+11, fmt.Sprintf("combo x%d", snap.Combo), StyleBanner)
	}

	ctx.DrawText(x, y+13, "NEXT", StyleLabel)
	r.drawPreview(ctx, x, y+14, snap.Next)

	ctx.DrawText(x, y+14+constants.PreviewBoxSize, "HOLD", StyleLabel)
	if snap.HasHold {
		r.drawPreview(ctx, x, y+15+constants.PreviewBoxSize, snap.Hold)
	}
}

// drawPreview draws a kind's spawn shape into a small box
func (r *SidebarRenderer) drawPreview(ctx *Context, x, y int, kind piece.Kind) {
	style := BlockStyle(kind.Color())
	for _, o := range piece.ShapeOffsets(kind, 0) {
		px := x + o.Col*constants.CellWidth
		py := y + o.Row
		for i := 0; i < constants.CellWidth; i++ {
			ctx.Screen.SetContent(px+i, py, ' ', nil, style)
		}
	}
}
