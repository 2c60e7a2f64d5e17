package constants

import "time"

// Game Loop Timing Constants
const (
	// FrameUpdateInterval is the rendering frame rate interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// SourceFrameDuration is the frame length of the classic 30 FPS
	// gravity table that fallIntervals is derived from
	SourceFrameDuration = 33 * time.Millisecond
)

// Board Dimensions
const (
	// BoardWidth is the number of columns in the well
	BoardWidth = 10

	// BoardHeight is the number of visible rows in the well
	BoardHeight = 20
)

// Gravity
//
// fallFrames is the classic per-level gravity curve expressed in 30 FPS
// frames per row. Levels beyond the table floor at the last entry.
var fallFrames = [...]int{
	48, 43, 38, 33, 28, 23, 18, 13, 8, 6,
	5, 5, 5, 4, 4, 4, 3, 3, 3, 2,
	2, 2, 2, 2, 2, 2, 2, 2, 2, 1,
}

// FallInterval returns the time a piece rests on each row at the given
// level. Monotonically decreasing, floored at one source frame.
func FallInterval(level int) time.Duration {
	if level < 0 {
		level = 0
	}
	if level >= len(fallFrames) {
		level = len(fallFrames) - 1
	}
	return time.Duration(fallFrames[level]) * SourceFrameDuration
}

// Auto-Repeat (held direction keys)
const (
	// AutoRepeatDelay is the hold time before a direction starts repeating
	AutoRepeatDelay = 250 * time.Millisecond

	// AutoRepeatInterval is the repeat rate once auto-repeat has started
	AutoRepeatInterval = 100 * time.Millisecond

	// SoftDropInterval is the repeat rate of a held soft drop (no initial delay)
	SoftDropInterval = 50 * time.Millisecond
)

// Lock Delay
const (
	// LockDelay is the grace period after a piece lands before it locks
	LockDelay = 500 * time.Millisecond

	// LockDelayExtension is added back to the lock timer (capped at
	// LockDelay) when a grounded piece moves or rotates successfully
	LockDelayExtension = 166 * time.Millisecond
)

// Scoring
const (
	// LockBonus is awarded for every locked piece
	LockBonus = 10

	// SoftDropPointsPerCell is awarded per row descended under soft drop
	SoftDropPointsPerCell = 1

	// HardDropPointsPerCell is awarded per row descended by a hard drop
	HardDropPointsPerCell = 2

	// ComboPointsPerStep scales the consecutive-clear combo bonus
	ComboPointsPerStep = 50

	// LinesPerLevel is the number of cleared lines that advance the level
	LinesPerLevel = 10
)

// lineClearPoints is the base award for clearing n rows at once,
// scaled by (level+1) at award time. Four rows score disproportionately.
var lineClearPoints = [...]int{0, 100, 300, 500, 800}

// LineClearPoints returns the unscaled award for clearing lines rows
// simultaneously.
func LineClearPoints(lines int) int {
	if lines < 0 {
		return 0
	}
	if lines >= len(lineClearPoints) {
		lines = len(lineClearPoints) - 1
	}
	return lineClearPoints[lines]
}
