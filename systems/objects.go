package systems

import (
	"github.com/automoto/bullethell/components"
	"github.com/automoto/bullethell/shared/gamemath"
	"github.com/automoto/bullethell/systems/factory"
	"github.com/yohamta/donburi"
)

// UpdateObjects moves every broadphase box over its circle so the collision steps query
// current positions.
func UpdateObjects(w donburi.World) {
	components.Player.Each(w, func(e *donburi.Entry) {
		syncObject(e, components.Player.Get(e).Hitbox)
	})
	components.Enemy.Each(w, func(e *donburi.Entry) {
		syncObject(e, components.Enemy.Get(e).Hitbox)
	})
	components.Bullet.Each(w, func(e *donburi.Entry) {
		syncObject(e, components.Bullet.Get(e).Hitbox)
	})
}

func syncObject(e *donburi.Entry, hitbox gamemath.Circle) {
	obj := components.Object.Get(e)
	if obj == nil || obj.Object == nil {
		return
	}
	factory.PlaceObject(obj.Object, hitbox)
}
