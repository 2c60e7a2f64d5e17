package piece

import "fmt"

// Kind identifies one of the seven tetromino shapes
type Kind uint8

const (
	I Kind = iota
	O
	T
	S
	Z
	J
	L

	// KindCount is the number of distinct tetromino kinds
	KindCount = 7
)

// String returns the conventional single-letter name of the kind
func (k Kind) String() string {
	if k >= KindCount {
		return "?"
	}
	return string("IOTSZJL"[k])
}

// Color is a logical block color, decoupled from any terminal palette.
// Rendering maps Color to actual terminal styles.
type Color uint8

const (
	ColorNone Color = iota
	ColorCyan
	ColorYellow
	ColorPurple
	ColorGreen
	ColorRed
	ColorBlue
	ColorOrange
)

// kindColors assigns each kind its guideline color
var kindColors = [KindCount]Color{
	I: ColorCyan,
	O: ColorYellow,
	T: ColorPurple,
	S: ColorGreen,
	Z: ColorRed,
	J: ColorBlue,
	L: ColorOrange,
}

// Color returns the base color of the kind
func (k Kind) Color() Color {
	return kindColors[k]
}

// Offset is a cell position relative to a piece origin, rows growing
// downward. It doubles as an absolute board coordinate where that is
// what a function documents.
type Offset struct {
	Row, Col int
}

// shapes holds the occupied cells of every (kind, rotation) pair,
// relative to the piece origin (top-left of the bounding box).
// Rotation states follow the Super Rotation System: state 0 is the
// spawn orientation, successive states are clockwise quarter turns.
// The O kind has a single effective state.
var shapes = [KindCount][][4]Offset{
	I: {
		{{1, 0}, {1, 1}, {1, 2}, {1, 3}},
		{{0, 2}, {1, 2}, {2, 2}, {3, 2}},
		{{2, 0}, {2, 1}, {2, 2}, {2, 3}},
		{{0, 1}, {1, 1}, {2, 1}, {3, 1}},
	},
	O: {
		{{0, 1}, {0, 2}, {1, 1}, {1, 2}},
	},
	T: {
		{{0, 1}, {1, 0}, {1, 1}, {1, 2}},
		{{0, 1}, {1, 1}, {1, 2}, {2, 1}},
		{{1, 0}, {1, 1}, {1, 2}, {2, 1}},
		{{0, 1}, {1, 0}, {1, 1}, {2, 1}},
	},
	S: {
		{{0, 1}, {0, 2}, {1, 0}, {1, 1}},
		{{0, 1}, {1, 1}, {1, 2}, {2, 2}},
		{{1, 1}, {1, 2}, {2, 0}, {2, 1}},
		{{0, 0}, {1, 0}, {1, 1}, {2, 1}},
	},
	Z: {
		{{0, 0}, {0, 1}, {1, 1}, {1, 2}},
		{{0, 2}, {1, 1}, {1, 2}, {2, 1}},
		{{1, 0}, {1, 1}, {2, 1}, {2, 2}},
		{{0, 1}, {1, 0}, {1, 1}, {2, 0}},
	},
	J: {
		{{0, 0}, {1, 0}, {1, 1}, {1, 2}},
		{{0, 1}, {0, 2}, {1, 1}, {2, 1}},
		{{1, 0}, {1, 1}, {1, 2}, {2, 2}},
		{{0, 1}, {1, 1}, {2, 0}, {2, 1}},
	},
	L: {
		{{0, 2}, {1, 0}, {1, 1}, {1, 2}},
		{{0, 1}, {1, 1}, {2, 1}, {2, 2}},
		{{1, 0}, {1, 1}, {1, 2}, {2, 0}},
		{{0, 0}, {0, 1}, {1, 1}, {2, 1}},
	},
}

// RotationCount returns the number of rotation states the kind defines
func RotationCount(k Kind) int {
	return len(shapes[k])
}

// ShapeOffsets returns the four occupied cells of the kind at the given
// rotation state, relative to the piece origin. The returned slice is
// shared catalog data and must not be modified.
//
// A rotation index outside the kind's defined range is a catalog misuse
// and panics.
func ShapeOffsets(k Kind, rotation int) []Offset {
	states := shapes[k]
	if rotation < 0 || rotation >= len(states) {
		panic(fmt.Sprintf("piece: invalid rotation %d for kind %s (%d states)", rotation, k, len(states)))
	}
	return states[rotation][:]
}
