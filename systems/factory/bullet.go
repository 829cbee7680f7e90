package factory

import (
	"github.com/automoto/bullethell/archetypes"
	"github.com/automoto/bullethell/components"
	cfg "github.com/automoto/bullethell/config"
	"github.com/automoto/bullethell/shared/gamemath"
	"github.com/automoto/bullethell/tags"
	"github.com/yohamta/donburi"
)

// BulletRadius is the hitbox radius for bullets of kind k.
func BulletRadius(k components.BulletKind) float64 {
	switch k {
	case components.KindPrecision:
		return cfg.World.PrecisionRadius
	case components.KindHeavy:
		return cfg.World.HeavyRadius
	}
	return cfg.World.EnemyBulletRadius
}

// BulletTag is the resolv tag for bullets of kind k.
func BulletTag(k components.BulletKind) string {
	switch k {
	case components.KindPrecision:
		return tags.ResolvPrecision
	case components.KindHeavy:
		return tags.ResolvHeavy
	}
	return tags.ResolvEnemyBullet
}

// CreateBullet spawns a bullet of kind k centred on pos.
func CreateBullet(w donburi.World, k components.BulletKind, pos, velocity gamemath.Vector) *donburi.Entry {
	bullet := archetypes.Bullet.Spawn(w)

	data := components.BulletData{
		Kind:     k,
		Hitbox:   gamemath.Circle{Center: pos, Radius: BulletRadius(k)},
		Velocity: velocity,
	}
	if roundEntry, ok := components.Round.First(w); ok {
		round := components.Round.Get(roundEntry)
		data.Seq = round.NextSeq
		round.NextSeq++
	}
	components.Bullet.SetValue(bullet, data)
	addObject(w, bullet, data.Hitbox, BulletTag(k))
	return bullet
}
