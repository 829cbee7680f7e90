package assets

import (
	"encoding/binary"
	"fmt"
	"math"

	cfg "github.com/automoto/bullethell/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// AudioLoader synthesizes and caches the sound effects named in the sound table
type AudioLoader struct {
	sfxCache map[string][]byte // 16-bit stereo PCM per trigger name
	context  *audio.Context
}

// NewAudioLoader creates a new audio loader with the given context
func NewAudioLoader(ctx *audio.Context) *AudioLoader {
	return &AudioLoader{
		sfxCache: make(map[string][]byte),
		context:  ctx,
	}
}

// PreloadSFX renders a sound effect into the cache without creating a player.
func (l *AudioLoader) PreloadSFX(name string) error {
	if _, ok := l.sfxCache[name]; ok {
		return nil
	}
	tone, ok := cfg.Sound.Tones[name]
	if !ok {
		return fmt.Errorf("no tone for sound %q", name)
	}
	l.sfxCache[name] = Synthesize(tone, l.context.SampleRate())
	return nil
}

// LoadSFX returns a new player for the named effect each time.
func (l *AudioLoader) LoadSFX(name string) (*audio.Player, error) {
	if err := l.PreloadSFX(name); err != nil {
		return nil, err
	}
	return l.context.NewPlayerFromBytes(l.sfxCache[name]), nil
}

// Synthesize renders tone as a sine sweep with a linear fade out, in the 16-bit little endian
// stereo layout ebiten players expect.
func Synthesize(tone cfg.Tone, sampleRate int) []byte {
	n := sampleRate * tone.Millis / 1000
	buf := make([]byte, n*4)
	phase := 0.0
	for i := 0; i < n; i++ {
		progress := float64(i) / float64(n)
		freq := tone.Freq + (tone.EndFreq-tone.Freq)*progress
		phase += 2 * math.Pi * freq / float64(sampleRate)
		v := int16(math.Sin(phase) * (1 - progress) * math.MaxInt16 * 0.8)
		binary.LittleEndian.PutUint16(buf[i*4:], uint16(v))
		binary.LittleEndian.PutUint16(buf[i*4+2:], uint16(v))
	}
	return buf
}
