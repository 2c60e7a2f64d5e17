package piece

// Wall-kick offset tables from the Super Rotation System, stored as
// (row, col) adjustments with rows growing downward (the published
// tables use y-up, so their y values appear here sign-flipped).
//
// The in-place position is not listed; rotation code tries the
// unadjusted placement before consulting the table.

type kickKey struct {
	from, to int
}

// jlstzKicks covers the J, L, S, T and Z kinds, which share one table
var jlstzKicks = map[kickKey][]Offset{
	{0, 1}: {{0, -1}, {-1, -1}, {2, 0}, {2, -1}},
	{1, 0}: {{0, 1}, {1, 1}, {-2, 0}, {-2, 1}},
	{1, 2}: {{0, 1}, {1, 1}, {-2, 0}, {-2, 1}},
	{2, 1}: {{0, -1}, {-1, -1}, {2, 0}, {2, -1}},
	{2, 3}: {{0, 1}, {-1, 1}, {2, 0}, {2, 1}},
	{3, 2}: {{0, -1}, {1, -1}, {-2, 0}, {-2, -1}},
	{3, 0}: {{0, -1}, {1, -1}, {-2, 0}, {-2, -1}},
	{0, 3}: {{0, 1}, {-1, 1}, {2, 0}, {2, 1}},
}

// iKicks covers the I kind, whose long axis needs its own offsets
var iKicks = map[kickKey][]Offset{
	{0, 1}: {{0, -2}, {0, 1}, {1, -2}, {-2, 1}},
	{1, 0}: {{0, 2}, {0, -1}, {-1, 2}, {2, -1}},
	{1, 2}: {{0, -1}, {0, 2}, {-2, -1}, {1, 2}},
	{2, 1}: {{0, 1}, {0, -2}, {2, 1}, {-1, -2}},
	{2, 3}: {{0, 2}, {0, -1}, {-1, 2}, {2, -1}},
	{3, 2}: {{0, -2}, {0, 1}, {1, -2}, {-2, 1}},
	{3, 0}: {{0, 1}, {0, -2}, {2, 1}, {-1, -2}},
	{0, 3}: {{0, -1}, {0, 2}, {-2, -1}, {1, 2}},
}

// Kicks returns the ordered wall-kick adjustments to try when rotating
// the kind from one rotation state to another, after the unadjusted
// placement has failed. The O kind has no kicks and returns nil.
// Transitions a kind never performs (non-adjacent states) return nil.
func Kicks(k Kind, from, to int) []Offset {
	switch k {
	case O:
		return nil
	case I:
		return iKicks[kickKey{from, to}]
	default:
		return jlstzKicks[kickKey{from, to}]
	}
}
