package systems

import (
	"github.com/automoto/bullethell/behavior"
	"github.com/automoto/bullethell/components"
	"github.com/automoto/bullethell/systems/factory"
	"github.com/yohamta/donburi"
)

// UpdateEnemies steps every enemy's phase machine and spawns the bullets it fired.
func UpdateEnemies(w donburi.World) {
	dt := GetOrCreateRound(w).Delta

	var shots []behavior.Shot
	components.Enemy.Each(w, func(e *donburi.Entry) {
		shots = components.Enemy.Get(e).Advance(dt, shots)
	})

	// Spawned after the query so the archetype is not mutated mid-iteration
	for _, s := range shots {
		factory.CreateBullet(w, components.KindEnemy, s.Position, s.Velocity)
	}
}
