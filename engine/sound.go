package engine

// SoundPlayer receives gameplay events worth a sound effect. The audio
// package implements it; NopSoundPlayer serves tests and muted runs.
type SoundPlayer interface {
	PlayLock()
	PlayClear(lines int)
	PlayLevelUp()
	PlayGameOver()
}

// NopSoundPlayer discards all sound events
type NopSoundPlayer struct{}

func (NopSoundPlayer) PlayLock()     {}
func (NopSoundPlayer) PlayClear(int) {}
func (NopSoundPlayer) PlayLevelUp()  {}
func (NopSoundPlayer) PlayGameOver() {}
