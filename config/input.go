package config

// ActionID represents a logical game action. Frontends map their own keys onto these.
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveLeft
	ActionMoveRight
	ActionMoveUp
	ActionMoveDown
	ActionFire
	ActionToggleBullet
	ActionConfirm
	ActionQuit
	ActionCount // Must be last - used for array sizing
)
