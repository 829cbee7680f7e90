package terminal

import (
	"math"
	"sync"
	"time"

	cfg "github.com/automoto/bullethell/config"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
)

// SoundManager plays synthesized sound triggers on the system speaker
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	rate        beep.SampleRate
	initialized bool
}

// NewSoundManager creates a new sound manager
func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer: &beep.Mixer{},
		rate:  beep.SampleRate(cfg.Audio.SampleRate),
	}
}

// Initialize sets up the audio system
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	err := speaker.Init(sm.rate, sm.rate.N(time.Second/10))
	if err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops every sound still playing
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}

// Play starts the named effect. Unknown names and an uninitialized speaker are ignored.
func (sm *SoundManager) Play(name string) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	tone, ok := cfg.Sound.Tones[name]
	if !ok {
		return
	}

	vol := cfg.Audio.DefaultSFXVol
	if mult, ok := cfg.Sound.VolumeMultipliers[name]; ok {
		vol *= mult
	}

	streamer := beep.Take(sm.rate.N(time.Duration(tone.Millis)*time.Millisecond), newSweep(tone, sm.rate))
	speaker.Lock()
	sm.mixer.Add(withVolume(streamer, vol))
	speaker.Unlock()
}

// newSweep glides a sine from tone.Freq to tone.EndFreq while fading out.
func newSweep(tone cfg.Tone, rate beep.SampleRate) beep.Streamer {
	total := rate.N(time.Duration(tone.Millis) * time.Millisecond)
	position := 0
	phase := 0.0
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples {
			if position >= total {
				return i, i > 0
			}
			progress := float64(position) / float64(total)
			freq := tone.Freq + (tone.EndFreq-tone.Freq)*progress
			val := math.Sin(2*math.Pi*phase) * (1 - progress)
			samples[i][0] = val
			samples[i][1] = val

			phase += freq / float64(rate)
			phase -= math.Floor(phase)
			position++
		}
		return len(samples), true
	})
}

func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}
