package components

import (
	"math"

	"github.com/automoto/bullethell/behavior"
	cfg "github.com/automoto/bullethell/config"
	"github.com/automoto/bullethell/shared/gamemath"
	"github.com/yohamta/donburi"
)

type EnemyData struct {
	Machine *behavior.Machine
	Hitbox  gamemath.Circle // Center always follows Machine.Location()
	Health  float64
	Sprite  string
	Width   float64
}

// Advance steps the phase machine, moves the hitbox and collects any bullets fired.
func (e *EnemyData) Advance(dt float64, out []behavior.Shot) []behavior.Shot {
	e.Machine.Step(dt)
	e.Hitbox.Center = e.Machine.Location()
	return e.Machine.Emit(e.Hitbox, dt, out)
}

// Hit applies damage and shrinks the hitbox to telegraph it. The radius stops at
// cfg.Enemy.MinRadius so a wounded enemy can still be hit.
func (e *EnemyData) Hit(damage float64) {
	e.Health -= damage
	e.Hitbox.Radius = math.Max(e.Hitbox.Radius-damage*cfg.Enemy.ShrinkRatio, cfg.Enemy.MinRadius)
}

func (e *EnemyData) IsAlive() bool {
	return e.Health > 0
}

var Enemy = donburi.NewComponentType[EnemyData]()
