package core

import (
	cfg "github.com/automoto/bullethell/config"
	"github.com/automoto/bullethell/shared/gamemath"
)

// Actions records which actions are held during one frame.
type Actions [cfg.ActionCount]bool

// JustPressed reports whether a went down this frame.
func (a Actions) JustPressed(prev Actions, id cfg.ActionID) bool {
	return a[id] && !prev[id]
}

// InputFrom turns held actions into frame input. Opposite directions cancel; fire repeats
// while held and the bullet toggle fires once per press.
func InputFrom(current, previous Actions) Input {
	var move gamemath.Vector
	if current[cfg.ActionMoveLeft] {
		move.X--
	}
	if current[cfg.ActionMoveRight] {
		move.X++
	}
	if current[cfg.ActionMoveUp] {
		move.Y--
	}
	if current[cfg.ActionMoveDown] {
		move.Y++
	}
	return Input{
		Move:       move,
		Fire:       current[cfg.ActionFire],
		ToggleKind: current.JustPressed(previous, cfg.ActionToggleBullet),
	}
}
