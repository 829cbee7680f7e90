// Package levels holds the static level content: which enemies appear in which scene and
// how each of them moves and fires.
package levels

import (
	"errors"
	"fmt"

	"github.com/automoto/bullethell/behavior"
)

var (
	ErrNoScenes  = errors.New("level has no scenes")
	ErrBadHealth = errors.New("enemy health must be positive")
	ErrBadRadius = errors.New("enemy radius must be positive")
)

// EnemyTemplate describes an enemy before it is spawned. Spawning never mutates it.
type EnemyTemplate struct {
	Radius float64
	Health float64
	Phases []behavior.Phase
	Sprite string  // Sprite reference handed to the renderer
	Width  float64 // Display width of the sprite
}

func (e EnemyTemplate) Validate() error {
	if !(e.Health > 0) {
		return ErrBadHealth
	}
	if !(e.Radius > 0) {
		return ErrBadRadius
	}
	return behavior.ValidatePhases(e.Phases)
}

// Scene is a batch of enemies spawned together once the arena is clear.
type Scene struct {
	Enemies []EnemyTemplate
}

// Level is an ordered list of scenes plus its presentation assets.
type Level struct {
	Name       string
	Background string
	Music      string
	Scenes     []Scene
}

// Validate reports the first authoring error in the level.
func (l Level) Validate() error {
	if len(l.Scenes) == 0 {
		return fmt.Errorf("level %q: %w", l.Name, ErrNoScenes)
	}
	for si, s := range l.Scenes {
		for ei, e := range s.Enemies {
			if err := e.Validate(); err != nil {
				return fmt.Errorf("level %q scene %d enemy %d: %w", l.Name, si, ei, err)
			}
		}
	}
	return nil
}

// All returns every level in play order.
func All() []Level {
	return []Level{L1(), L2()}
}
