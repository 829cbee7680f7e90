package components

import (
	"github.com/automoto/bullethell/levels"
	"github.com/yohamta/donburi"
)

type LevelData struct {
	Level  levels.Level
	Cursor int // Next scene to spawn; len(Scenes) once every scene has been spawned
}

// Exhausted reports whether every scene has been spawned.
func (l *LevelData) Exhausted() bool {
	return l.Cursor >= len(l.Level.Scenes)
}

var Level = donburi.NewComponentType[LevelData]()
