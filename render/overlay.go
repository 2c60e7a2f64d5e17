package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/blockfall/constants"
	"github.com/lixenwraith/blockfall/engine"
)

// OverlayRenderer draws the pause and game-over banners across the well
type OverlayRenderer struct{}

// NewOverlayRenderer creates the overlay renderer
func NewOverlayRenderer() *OverlayRenderer {
	return &OverlayRenderer{}
}

// Render draws the banner for a non-running status
func (r *OverlayRenderer) Render(ctx *Context) {
	snap := ctx.Snap
	centerY := ctx.WellY + snap.Height/2
	wellWidth := snap.Width * constants.CellWidth

	switch snap.Status {
	case engine.StatusPaused:
		r.centered(ctx, centerY, wellWidth, "PAUSED", StyleBanner)
		r.centered(ctx, centerY+2, wellWidth, "p resume  r restart  q quit", StyleLabel)
	case engine.StatusGameOver:
		r.centered(ctx, centerY-2, wellWidth, "GAME OVER", StyleGameEnd)
		r.centered(ctx, centerY, wellWidth, fmt.Sprintf("score %d", snap.Score), StyleText)
		r.centered(ctx, centerY+1, wellWidth, fmt.Sprintf("lines %d  level %d", snap.Lines, snap.Level), StyleText)
		r.centered(ctx, centerY+3, wellWidth, "r restart  q quit", StyleLabel)
	}
}

// centered draws text horizontally centered over the well
func (r *OverlayRenderer) centered(ctx *Context, y, wellWidth int, text string, style tcell.Style) {
	x := ctx.WellX + (wellWidth-len(text))/2
	if x < ctx.WellX-constants.CellWidth {
		x = ctx.WellX - constants.CellWidth
	}
	ctx.DrawText(x, y, text, style)
}
