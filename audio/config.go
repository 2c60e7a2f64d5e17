package audio

import (
	"encoding/json"
	"os"
	"strconv"
)

// LoadAudioConfig loads audio configuration from environment variables
func LoadAudioConfig() *AudioConfig {
	cfg := DefaultAudioConfig()

	if enabled := os.Getenv("BLOCKFALL_AUDIO_ENABLED"); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			cfg.Enabled = val
		}
	}

	// Master volume (0-100 converted to 0.0-1.0)
	if volume := os.Getenv("BLOCKFALL_MASTER_VOLUME"); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			cfg.MasterVolume = float64(val) / 100.0
			if cfg.MasterVolume < 0 {
				cfg.MasterVolume = 0
			}
			if cfg.MasterVolume > 1 {
				cfg.MasterVolume = 1
			}
		}
	}

	// Per-effect volumes from JSON
	if effectVols := os.Getenv("BLOCKFALL_SFX_VOLUMES"); effectVols != "" {
		var volumes map[string]float64
		if err := json.Unmarshal([]byte(effectVols), &volumes); err == nil {
			if v, ok := volumes["lock"]; ok {
				cfg.EffectVolumes[SoundLock] = v
			}
			if v, ok := volumes["clear"]; ok {
				cfg.EffectVolumes[SoundClear] = v
			}
			if v, ok := volumes["levelup"]; ok {
				cfg.EffectVolumes[SoundLevelUp] = v
			}
			if v, ok := volumes["gameover"]; ok {
				cfg.EffectVolumes[SoundGameOver] = v
			}
		}
	}

	if sampleRate := os.Getenv("BLOCKFALL_SAMPLE_RATE"); sampleRate != "" {
		if val, err := strconv.Atoi(sampleRate); err == nil && val > 0 {
			cfg.SampleRate = val
		}
	}

	return cfg
}
