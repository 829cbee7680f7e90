package config

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	SoundShoot
	SoundClash // Two bullets cancel each other
	SoundHit   // A player bullet damages an enemy
)

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate    int
	DefaultSFXVol float64
}

// Tone describes a synthesized effect: a sweep from Freq to EndFreq over Millis.
type Tone struct {
	Freq    float64
	EndFreq float64
	Millis  int
}

// SoundConfig maps sound IDs to trigger names and synth parameters
type SoundConfig struct {
	Names             map[SoundID]string
	Tones             map[string]Tone
	VolumeMultipliers map[string]float64
}

var Audio AudioConfig
var Sound SoundConfig

// Name returns the trigger name for id, or "" for unknown ids.
func (s SoundConfig) Name(id SoundID) string {
	return s.Names[id]
}

func init() {
	Audio = AudioConfig{
		SampleRate:    44100,
		DefaultSFXVol: 0.6,
	}

	Sound = SoundConfig{
		Names: map[SoundID]string{
			SoundShoot: "shoot",
			SoundClash: "shoot_2",
			SoundHit:   "shoot_3",
		},
		Tones: map[string]Tone{
			"shoot":   {Freq: 880, EndFreq: 660, Millis: 60},
			"shoot_2": {Freq: 420, EndFreq: 180, Millis: 90},
			"shoot_3": {Freq: 220, EndFreq: 110, Millis: 120},
		},
		VolumeMultipliers: map[string]float64{
			"shoot":   0.5,
			"shoot_3": 1.5,
		},
	}
}
