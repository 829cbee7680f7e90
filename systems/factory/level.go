package factory

import (
	"github.com/automoto/bullethell/archetypes"
	"github.com/automoto/bullethell/components"
	"github.com/automoto/bullethell/levels"
	"github.com/yohamta/donburi"
)

// CreateLevel creates the level singleton with its cursor at the first scene.
func CreateLevel(w donburi.World, level levels.Level) *donburi.Entry {
	entry := archetypes.Level.Spawn(w)
	components.Level.SetValue(entry, components.LevelData{Level: level})
	return entry
}
