package constants

import "time"

// Sound effect durations and envelope shaping
const (
	LockSoundDuration = 70 * time.Millisecond
	LockSoundAttack   = 2 * time.Millisecond
	LockSoundRelease  = 50 * time.Millisecond

	ClearNoteDuration = 90 * time.Millisecond
	ClearNoteAttack   = 5 * time.Millisecond
	ClearNoteRelease  = 60 * time.Millisecond

	LevelUpNoteDuration = 120 * time.Millisecond
	LevelUpNoteAttack   = 5 * time.Millisecond
	LevelUpNoteRelease  = 80 * time.Millisecond

	GameOverNoteDuration = 250 * time.Millisecond
	GameOverNoteAttack   = 10 * time.Millisecond
	GameOverNoteRelease  = 180 * time.Millisecond
)
