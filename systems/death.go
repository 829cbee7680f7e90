package systems

import (
	"github.com/automoto/bullethell/components"
	"github.com/automoto/bullethell/systems/factory"
	"github.com/yohamta/donburi"
)

// UpdateDeaths removes flagged bullets and dead enemies.
func UpdateDeaths(w donburi.World) {
	var doomed []*donburi.Entry
	components.Bullet.Each(w, func(e *donburi.Entry) {
		if components.Bullet.Get(e).Deleted {
			doomed = append(doomed, e)
		}
	})
	components.Enemy.Each(w, func(e *donburi.Entry) {
		if !components.Enemy.Get(e).IsAlive() {
			doomed = append(doomed, e)
		}
	})

	for _, e := range doomed {
		factory.Destroy(w, e)
	}
}
