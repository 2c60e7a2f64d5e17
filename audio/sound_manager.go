package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// SoundManager owns the speaker and mixes effect streamers into it. It
// satisfies the game's SoundPlayer interface; every Play method is a
// no-op until Initialize succeeds, so the game runs fine without audio.
type SoundManager struct {
	mu          sync.Mutex
	cfg         *AudioConfig
	mixer       *beep.Mixer
	initialized bool
}

// NewSoundManager creates a sound manager with the given configuration
func NewSoundManager(cfg *AudioConfig) *SoundManager {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	return &SoundManager{
		cfg:   cfg,
		mixer: &beep.Mixer{},
	}
}

// Initialize sets up the audio system
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if !sm.cfg.Enabled {
		return nil
	}

	rate := beep.SampleRate(sm.cfg.SampleRate)
	err := speaker.Init(rate, rate.N(time.Millisecond*100))
	if err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds and closes the audio system
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	// beep has no speaker Close; clearing the mixer silences everything
	sm.mixer.Clear()
	sm.initialized = false
}

func (sm *SoundManager) play(s beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// PlayLock plays the piece lock thud
func (sm *SoundManager) PlayLock() {
	sm.play(CreateLockSound(sm.cfg))
}

// PlayClear plays the line clear chime scaled to the row count
func (sm *SoundManager) PlayClear(lines int) {
	sm.play(CreateClearSound(sm.cfg, lines))
}

// PlayLevelUp plays the level advance chime
func (sm *SoundManager) PlayLevelUp() {
	sm.play(CreateLevelUpSound(sm.cfg))
}

// PlayGameOver plays the topping out sequence
func (sm *SoundManager) PlayGameOver() {
	sm.play(CreateGameOverSound(sm.cfg))
}
