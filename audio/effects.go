package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/blockfall/constants"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates raw audio waves
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a new oscillator for wave generation
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	samples := rate.N(duration)
	return &oscillator{
		freq:     freq,
		phase:    0,
		duration: samples,
		position: 0,
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, false
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		// Advance phase
		o.phase += o.freq / float64(o.rate)
		o.phase = o.phase - math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope creates an ADSR envelope (simplified to just attack/release)
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := total - att - rel
	if sus < 0 {
		sus = 0
	}

	return &envelope{
		streamer:       s,
		position:       0,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, false
		}

		var vol float64 = 1.0

		// Attack phase
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		// Release phase
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			remaining := e.totalSamples - e.position
			vol = float64(remaining) / float64(e.releaseSamples)
			if vol < 0 {
				vol = 0
			}
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// Helper to create a volume effect safely
// math.Log2(0) is -Inf, so we handle 0 volume by making it silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// Sound effect generators

// CreateLockSound generates a short low thud for a piece settling
func CreateLockSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	osc := NewOscillator(180.0, constants.LockSoundDuration, WaveSquare, rate)
	shaped := NewEnvelope(osc, constants.LockSoundDuration, constants.LockSoundAttack, constants.LockSoundRelease, rate)

	vol := cfg.EffectVolumes[SoundLock] * cfg.MasterVolume
	return newVolume(shaped, vol)
}

// clearNotes holds the ascending chime scale (C6, E6, G6, C7); clearing
// more rows at once plays more of it.
var clearNotes = []float64{1046.50, 1318.51, 1567.98, 2093.00}

// CreateClearSound generates an ascending chime, one note per cleared row
func CreateClearSound(cfg *AudioConfig, lines int) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	if lines < 1 {
		lines = 1
	}
	if lines > len(clearNotes) {
		lines = len(clearNotes)
	}

	streamers := make([]beep.Streamer, 0, lines)
	for _, freq := range clearNotes[:lines] {
		note := NewOscillator(freq, constants.ClearNoteDuration, WaveSine, rate)
		shaped := NewEnvelope(note, constants.ClearNoteDuration, constants.ClearNoteAttack, constants.ClearNoteRelease, rate)
		streamers = append(streamers, shaped)
	}
	sequence := beep.Seq(streamers...)

	vol := cfg.EffectVolumes[SoundClear] * cfg.MasterVolume
	return newVolume(sequence, vol)
}

// CreateLevelUpSound generates a two-note chime for a level advance
func CreateLevelUpSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	// First note (B5)
	n1 := NewOscillator(987.77, constants.LevelUpNoteDuration, WaveSquare, rate)
	n1Shaped := NewEnvelope(n1, constants.LevelUpNoteDuration, constants.LevelUpNoteAttack, constants.LevelUpNoteRelease, rate)

	// Second note (E6)
	n2 := NewOscillator(1318.51, constants.LevelUpNoteDuration, WaveSquare, rate)
	n2Shaped := NewEnvelope(n2, constants.LevelUpNoteDuration, constants.LevelUpNoteAttack, constants.LevelUpNoteRelease, rate)

	sequence := beep.Seq(n1Shaped, n2Shaped)

	vol := cfg.EffectVolumes[SoundLevelUp] * cfg.MasterVolume
	return newVolume(sequence, vol)
}

// CreateGameOverSound generates a descending three-note saw for topping out
func CreateGameOverSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	freqs := []float64{440.0, 329.63, 220.0}
	streamers := make([]beep.Streamer, 0, len(freqs))
	for _, freq := range freqs {
		note := NewOscillator(freq, constants.GameOverNoteDuration, WaveSaw, rate)
		shaped := NewEnvelope(note, constants.GameOverNoteDuration, constants.GameOverNoteAttack, constants.GameOverNoteRelease, rate)
		streamers = append(streamers, shaped)
	}
	sequence := beep.Seq(streamers...)

	vol := cfg.EffectVolumes[SoundGameOver] * cfg.MasterVolume
	return newVolume(sequence, vol)
}
