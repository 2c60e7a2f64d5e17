package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/blockfall/piece"
)

// pieceColors maps logical piece colors to terminal colors
var pieceColors = map[piece.Color]tcell.Color{
	piece.ColorCyan:   tcell.ColorAqua,
	piece.ColorYellow: tcell.ColorYellow,
	piece.ColorPurple: tcell.ColorFuchsia,
	piece.ColorGreen:  tcell.ColorGreen,
	piece.ColorRed:    tcell.ColorRed,
	piece.ColorBlue:   tcell.ColorBlue,
	piece.ColorOrange: tcell.ColorOrange,
}

// BlockStyle returns the style for a filled cell of the given color
func BlockStyle(c piece.Color) tcell.Style {
	col, ok := pieceColors[c]
	if !ok {
		col = tcell.ColorGray
	}
	return tcell.StyleDefault.Background(col)
}

// GhostStyle returns the outline style for the ghost piece
func GhostStyle(c piece.Color) tcell.Style {
	col, ok := pieceColors[c]
	if !ok {
		col = tcell.ColorGray
	}
	return tcell.StyleDefault.Foreground(col)
}

// Fixed UI styles
var (
	StyleFrame   = tcell.StyleDefault.Foreground(tcell.ColorGray)
	StyleText    = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	StyleLabel   = tcell.StyleDefault.Foreground(tcell.ColorGray)
	StyleBanner  = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	StyleGameEnd = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
)
