package constants

// UI Layout Constants
const (
	// CellWidth is the number of terminal columns per board cell.
	// Two columns per cell keeps the well roughly square on most fonts.
	CellWidth = 2

	// WellBorderWidth is the thickness of the well frame in cells
	WellBorderWidth = 1

	// SidebarWidth is the width of the score/preview panel in terminal columns
	SidebarWidth = 18

	// PreviewBoxSize is the side length of the next/hold preview boxes in cells
	PreviewBoxSize = 4
)

// MinScreenWidth and MinScreenHeight are the smallest terminal size the
// game renders into without clipping.
const (
	MinScreenWidth  = BoardWidth*CellWidth + 2*WellBorderWidth*CellWidth + SidebarWidth
	MinScreenHeight = BoardHeight + 2*WellBorderWidth
)
