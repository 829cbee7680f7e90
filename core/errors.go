package core

import (
	"errors"

	"github.com/automoto/bullethell/behavior"
)

var (
	// ErrFanTooSmall is returned when the configured player fan has fewer than two bullets.
	ErrFanTooSmall = behavior.ErrFanTooSmall
	// ErrNotPlayerBullet is returned when Shoot is asked to fire an enemy bullet.
	ErrNotPlayerBullet = errors.New("core: only player bullet kinds can be fired")
	// ErrNoLevels is returned when a Session is created without levels.
	ErrNoLevels = errors.New("core: session needs at least one level")
)
