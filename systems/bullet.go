package systems

import (
	"github.com/automoto/bullethell/components"
	cfg "github.com/automoto/bullethell/config"
	"github.com/yohamta/donburi"
)

// UpdateBullets integrates every bullet and flags the ones that left the arena.
func UpdateBullets(w donburi.World) {
	dt := GetOrCreateRound(w).Delta
	arena := cfg.World.Arena()

	components.Bullet.Each(w, func(e *donburi.Entry) {
		bullet := components.Bullet.Get(e)
		bullet.Hitbox = bullet.Hitbox.Translate(bullet.Velocity.Scale(dt))
		if !bullet.Hitbox.InBounds(arena) {
			bullet.Deleted = true
		}
	})
}
