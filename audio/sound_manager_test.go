package audio

import (
	"os"
	"testing"
)

// TestSoundManagerGracefulDegradation verifies audio operations don't panic when not initialized
func TestSoundManagerGracefulDegradation(t *testing.T) {
	sm := NewSoundManager(nil)

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("Sound operations panicked without initialization: %v", r)
		}
	}()

	sm.PlayLock()
	sm.PlayClear(1)
	sm.PlayClear(4)
	sm.PlayLevelUp()
	sm.PlayGameOver()
	sm.Cleanup()
}

// TestSoundManagerDisabled verifies a disabled config skips speaker setup
func TestSoundManagerDisabled(t *testing.T) {
	cfg := DefaultAudioConfig()
	cfg.Enabled = false
	sm := NewSoundManager(cfg)

	if err := sm.Initialize(); err != nil {
		t.Errorf("Expected disabled initialization to succeed, got: %v", err)
	}

	// Still safe to play; everything is a no-op
	sm.PlayLock()
	sm.Cleanup()
}

// TestSoundManagerInitialization verifies sound manager can be initialized and cleaned up
func TestSoundManagerInitialization(t *testing.T) {
	sm := NewSoundManager(DefaultAudioConfig())

	// Speaker initialization may fail in CI/test environments without
	// audio devices; the game is expected to work without audio.
	err := sm.Initialize()
	if err != nil {
		t.Logf("Sound initialization failed (expected in test environment): %v", err)
		return
	}

	// Second initialization should be a no-op
	if err := sm.Initialize(); err != nil {
		t.Errorf("Second initialization should succeed as no-op, got error: %v", err)
	}

	sm.Cleanup()
}

// TestLoadAudioConfigEnv verifies environment overrides
func TestLoadAudioConfigEnv(t *testing.T) {
	os.Setenv("BLOCKFALL_AUDIO_ENABLED", "false")
	os.Setenv("BLOCKFALL_MASTER_VOLUME", "50")
	os.Setenv("BLOCKFALL_SFX_VOLUMES", `{"lock": 0.1, "clear": 0.2}`)
	defer func() {
		os.Unsetenv("BLOCKFALL_AUDIO_ENABLED")
		os.Unsetenv("BLOCKFALL_MASTER_VOLUME")
		os.Unsetenv("BLOCKFALL_SFX_VOLUMES")
	}()

	cfg := LoadAudioConfig()

	if cfg.Enabled {
		t.Error("Expected audio disabled via environment")
	}
	if cfg.MasterVolume != 0.5 {
		t.Errorf("Expected master volume 0.5, got %f", cfg.MasterVolume)
	}
	if cfg.EffectVolumes[SoundLock] != 0.1 {
		t.Errorf("Expected lock volume 0.1, got %f", cfg.EffectVolumes[SoundLock])
	}
	if cfg.EffectVolumes[SoundClear] != 0.2 {
		t.Errorf("Expected clear volume 0.2, got %f", cfg.EffectVolumes[SoundClear])
	}
	// Untouched effects keep their defaults
	if cfg.EffectVolumes[SoundGameOver] != 0.8 {
		t.Errorf("Expected default gameover volume 0.8, got %f", cfg.EffectVolumes[SoundGameOver])
	}
}

// TestLoadAudioConfigDefaults verifies a clean environment yields defaults
func TestLoadAudioConfigDefaults(t *testing.T) {
	os.Unsetenv("BLOCKFALL_AUDIO_ENABLED")
	os.Unsetenv("BLOCKFALL_MASTER_VOLUME")
	os.Unsetenv("BLOCKFALL_SFX_VOLUMES")
	os.Unsetenv("BLOCKFALL_SAMPLE_RATE")

	cfg := LoadAudioConfig()
	def := DefaultAudioConfig()

	if cfg.SampleRate != def.SampleRate {
		t.Errorf("Expected sample rate %d, got %d", def.SampleRate, cfg.SampleRate)
	}
	if cfg.MasterVolume != def.MasterVolume {
		t.Errorf("Expected master volume %f, got %f", def.MasterVolume, cfg.MasterVolume)
	}
	if len(cfg.EffectVolumes) != int(soundTypeCount) {
		t.Errorf("Expected %d effect volumes, got %d", soundTypeCount, len(cfg.EffectVolumes))
	}
}
