package scenes

import (
	"log"
	"sync"

	"github.com/automoto/bullethell/assets"
	cfg "github.com/automoto/bullethell/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// Global audio state - created once and shared across all scenes
var (
	globalAudioContext *audio.Context
	globalAudioLoader  *assets.AudioLoader
	globalSFXVolume    float64
	audioInitOnce      sync.Once
)

// initGlobalAudio initializes the global audio context (called once)
func initGlobalAudio() {
	audioInitOnce.Do(func() {
		globalAudioContext = audio.NewContext(cfg.Audio.SampleRate)
		globalAudioLoader = assets.NewAudioLoader(globalAudioContext)
		globalSFXVolume = cfg.Audio.DefaultSFXVol
	})
}

// PreloadAllSFX renders all sound effects at startup to avoid lag on first play.
func PreloadAllSFX() {
	initGlobalAudio()

	for _, name := range cfg.Sound.Names {
		if err := globalAudioLoader.PreloadSFX(name); err != nil {
			log.Printf("audio: %v", err)
		}
	}
}

// Speaker plays simulation sound triggers through ebiten audio.
type Speaker struct{}

func (Speaker) Play(name string) {
	initGlobalAudio()
	if globalSFXVolume <= 0 {
		return
	}

	player, err := globalAudioLoader.LoadSFX(name)
	if err != nil {
		return
	}

	volume := globalSFXVolume
	if mult, ok := cfg.Sound.VolumeMultipliers[name]; ok {
		volume *= mult
	}

	player.SetVolume(volume)
	player.Play()
}
