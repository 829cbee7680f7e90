package systems

import (
	"github.com/automoto/bullethell/components"
	cfg "github.com/automoto/bullethell/config"
	"github.com/automoto/bullethell/shared/gamemath"
	"github.com/yohamta/donburi"
)

// ClampPlayer pulls the player hitbox fully inside the arena.
func ClampPlayer(w donburi.World) {
	components.Player.Each(w, func(e *donburi.Entry) {
		player := components.Player.Get(e)
		player.Hitbox = cfg.World.Arena().ClampCircle(player.Hitbox)
	})
}

// MovePlayer translates the player. Bounds are enforced on the next tick.
func MovePlayer(w donburi.World, delta gamemath.Vector) {
	if entry, ok := components.Player.First(w); ok {
		player := components.Player.Get(entry)
		player.Hitbox = player.Hitbox.Translate(delta)
	}
}
