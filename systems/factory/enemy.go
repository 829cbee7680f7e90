package factory

import (
	"github.com/automoto/bullethell/archetypes"
	"github.com/automoto/bullethell/behavior"
	"github.com/automoto/bullethell/components"
	"github.com/automoto/bullethell/levels"
	"github.com/automoto/bullethell/shared/gamemath"
	"github.com/automoto/bullethell/tags"
	"github.com/yohamta/donburi"
)

// CreateEnemy spawns an independent enemy from a validated template, placed at the start of
// its first phase.
func CreateEnemy(w donburi.World, tmpl levels.EnemyTemplate) *donburi.Entry {
	enemy := archetypes.Enemy.Spawn(w)

	machine := behavior.NewMachine(tmpl.Phases)
	hitbox := gamemath.Circle{Center: machine.Location(), Radius: tmpl.Radius}
	components.Enemy.SetValue(enemy, components.EnemyData{
		Machine: machine,
		Hitbox:  hitbox,
		Health:  tmpl.Health,
		Sprite:  tmpl.Sprite,
		Width:   tmpl.Width,
	})
	addObject(w, enemy, hitbox, tags.ResolvEnemy)
	return enemy
}
