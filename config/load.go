package config

import (
	"bytes"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// File is the subset of the configuration that can be overridden from TOML.
// Keys that are absent keep their defaults.
type File struct {
	World  WorldConfig
	Player PlayerConfig
	Enemy  EnemyConfig
	Loop   LoopConfig
	Audio  AudioConfig
}

// Load overlays the TOML file at path onto the global configuration. Unknown keys are an error.
func Load(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return Apply(data)
}

// Apply overlays TOML data onto the global configuration.
func Apply(data []byte) error {
	f := File{
		World:  World,
		Player: Player,
		Enemy:  Enemy,
		Loop:   Loop,
		Audio:  Audio,
	}

	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&f); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	World = f.World
	Player = f.Player
	Enemy = f.Enemy
	Loop = f.Loop
	Audio = f.Audio
	return nil
}
