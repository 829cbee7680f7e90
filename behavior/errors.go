package behavior

import "errors"

var (
	ErrNoPhases     = errors.New("enemy has no phases")
	ErrBadJump      = errors.New("phase jumps to a missing phase")
	ErrBadDuration  = errors.New("duration must be positive")
	ErrBadCooldown  = errors.New("cooldown must be positive")
	ErrFanTooSmall  = errors.New("fan needs at least 2 bullets")
	ErrEmptyPattern = errors.New("pattern spawns no bullets")
	ErrNilPart      = errors.New("missing trajectory or emitter")
)
