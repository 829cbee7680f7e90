package core

import (
	"io"
	"log"
	"os"
	"testing"

	"github.com/automoto/bullethell/behavior"
	"github.com/automoto/bullethell/components"
	"github.com/automoto/bullethell/levels"
	"github.com/automoto/bullethell/shared/gamemath"
	"github.com/automoto/bullethell/systems/factory"
)

// step is small enough that a fresh enemy shot leaves its owner without reaching anything.
const step = 0.01

func TestMain(m *testing.M) {
	log.SetOutput(io.Discard)
	os.Exit(m.Run())
}

// sentry never moves and fires one shot straight up, out of the way, on its first tick.
func sentry(x, y, health float64) levels.EnemyTemplate {
	return levels.EnemyTemplate{
		Radius: 20,
		Health: health,
		Sprite: levels.SpriteGhost,
		Width:  100,
		Phases: []behavior.Phase{
			behavior.NewPhase(behavior.Forever,
				behavior.Stationary{Point: gamemath.Vec(x, y)},
				behavior.NewFixedPattern(1000, []behavior.Shot{{Velocity: gamemath.Vec(0, -5000)}})),
		},
	}
}

func oneScene(name string, enemies ...levels.EnemyTemplate) levels.Level {
	return levels.Level{Name: name, Scenes: []levels.Scene{{Enemies: enemies}}}
}

func newTestWorld(t *testing.T, level levels.Level, sink SoundSink) *World {
	t.Helper()
	w, err := NewWorld(level, sink)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return w
}

func spawnBullet(w *World, kind components.BulletKind, x, y float64) {
	factory.CreateBullet(w.ecs, kind, gamemath.Vec(x, y), gamemath.Vector{})
}

func countKind(s Snapshot, kind components.BulletKind) int {
	n := 0
	for _, b := range s.Bullets {
		if b.Kind == kind {
			n++
		}
	}
	return n
}

func almostEqual(a, b float64) bool {
	const eps = 1e-9
	d := a - b
	return d < eps && d > -eps
}
