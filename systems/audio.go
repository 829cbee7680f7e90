package systems

import (
	"github.com/automoto/bullethell/archetypes"
	"github.com/automoto/bullethell/components"
	cfg "github.com/automoto/bullethell/config"
	"github.com/yohamta/donburi"
)

// GetOrCreateAudio returns the audio queue singleton, creating it on first use.
func GetOrCreateAudio(w donburi.World) *components.AudioData {
	if entry, ok := components.Audio.First(w); ok {
		return components.Audio.Get(entry)
	}
	entry := archetypes.Audio.Spawn(w)
	return components.Audio.Get(entry)
}

// PlaySFX queues a sound effect to be played at the end of the tick.
func PlaySFX(w donburi.World, soundID cfg.SoundID) {
	audio := GetOrCreateAudio(w)
	audio.PendingSFX = append(audio.PendingSFX, soundID)
}

// FlushAudio hands every queued sound to play by trigger name, in the order raised.
func FlushAudio(w donburi.World, play func(name string)) {
	entry, ok := components.Audio.First(w)
	if !ok {
		return
	}
	audio := components.Audio.Get(entry)
	for _, soundID := range audio.PendingSFX {
		if name := cfg.Sound.Name(soundID); name != "" {
			play(name)
		}
	}
	audio.PendingSFX = audio.PendingSFX[:0]
}
