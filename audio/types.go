package audio

// SoundType represents different sound effects
type SoundType int

const (
	SoundLock     SoundType = iota // Piece settling into the stack
	SoundClear                     // Line clear chime
	SoundLevelUp                   // Level advance fanfare
	SoundGameOver                  // Stack topped out
	soundTypeCount
)

// AudioConfig holds volume and sample rate settings
type AudioConfig struct {
	Enabled       bool
	SampleRate    int
	MasterVolume  float64
	EffectVolumes map[SoundType]float64
}

// DefaultAudioConfig returns the standard audio configuration
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		SampleRate:   48000,
		MasterVolume: 0.8,
		EffectVolumes: map[SoundType]float64{
			SoundLock:     0.6,
			SoundClear:    0.9,
			SoundLevelUp:  0.9,
			SoundGameOver: 0.8,
		},
	}
}
