package factory

import (
	"github.com/automoto/bullethell/archetypes"
	"github.com/automoto/bullethell/components"
	cfg "github.com/automoto/bullethell/config"
	"github.com/automoto/bullethell/tags"
	"github.com/yohamta/donburi"
)

func CreatePlayer(w donburi.World) *donburi.Entry {
	player := archetypes.Player.Spawn(w)
	hitbox := cfg.World.PlayerStart()
	components.Player.SetValue(player, components.PlayerData{Hitbox: hitbox})
	addObject(w, player, hitbox, tags.ResolvPlayer)
	return player
}
