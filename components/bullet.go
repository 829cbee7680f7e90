package components

import (
	"github.com/automoto/bullethell/shared/gamemath"
	"github.com/yohamta/donburi"
)

// BulletKind identifies who fired a bullet and how it interacts.
type BulletKind int

const (
	KindPrecision BulletKind = iota // Player bullet that damages enemies and ignores other bullets
	KindHeavy                       // Player bullet that cancels enemy bullets
	KindEnemy
)

func (k BulletKind) String() string {
	switch k {
	case KindPrecision:
		return "precision"
	case KindHeavy:
		return "heavy"
	case KindEnemy:
		return "enemy"
	}
	return "unknown"
}

// IsPlayer reports whether the player can fire this kind.
func (k BulletKind) IsPlayer() bool {
	return k == KindPrecision || k == KindHeavy
}

// Clashes reports whether two overlapping bullets of these kinds destroy each other.
func Clashes(a, b BulletKind) bool {
	return a != b && a != KindPrecision && b != KindPrecision
}

type BulletData struct {
	Kind     BulletKind
	Hitbox   gamemath.Circle
	Velocity gamemath.Vector
	Deleted  bool   // Removed at the end of the tick
	Seq      uint64 // Creation order, used to resolve hits in firing order
}

var Bullet = donburi.NewComponentType[BulletData]()
