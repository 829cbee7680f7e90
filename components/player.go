package components

import (
	"github.com/automoto/bullethell/shared/gamemath"
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	Hitbox gamemath.Circle
}

var Player = donburi.NewComponentType[PlayerData]()
