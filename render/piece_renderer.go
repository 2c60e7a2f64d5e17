package render

import "github.com/lixenwraith/blockfall/engine"

// PieceRenderer draws the ghost preview and the active piece over the
// stack. Ghost first so the real piece wins where they overlap.
type PieceRenderer struct{}

// NewPieceRenderer creates the active piece renderer
func NewPieceRenderer() *PieceRenderer {
	return &PieceRenderer{}
}

// Render draws the ghost and active cells while a session is live
func (r *PieceRenderer) Render(ctx *Context) {
	snap := ctx.Snap
	if snap.Status == engine.StatusGameOver {
		return
	}

	ghost := GhostStyle(snap.ActiveColor)
	for _, c := range snap.GhostCells {
		ctx.DrawGhostBlock(c.Row, c.Col, ghost)
	}

	active := BlockStyle(snap.ActiveColor)
	for _, c := range snap.ActiveCells {
		ctx.DrawBlock(c.Row, c.Col, active)
	}
}
