package systems

import (
	"sort"

	"github.com/automoto/bullethell/components"
	cfg "github.com/automoto/bullethell/config"
	"github.com/automoto/bullethell/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// UpdatePlayerHits ends the round when any enemy bullet touches the player.
func UpdatePlayerHits(w donburi.World) {
	playerEntry, ok := components.Player.First(w)
	if !ok {
		return
	}
	player := components.Player.Get(playerEntry)

	for _, e := range candidates(playerEntry, tags.ResolvEnemyBullet) {
		if player.Hitbox.Collides(components.Bullet.Get(e).Hitbox) {
			finishRound(w, components.Lose)
			return
		}
	}
}

// UpdateBulletClashes flags both bullets of every overlapping pair that clashes. Precision
// bullets pass through everything and same-kind bullets never interact, so only heavy bullets
// need to look for enemy bullets.
func UpdateBulletClashes(w donburi.World) {
	components.Bullet.Each(w, func(e *donburi.Entry) {
		bullet := components.Bullet.Get(e)
		if bullet.Kind != components.KindHeavy {
			return
		}
		for _, other := range candidates(e, tags.ResolvEnemyBullet) {
			target := components.Bullet.Get(other)
			if !components.Clashes(bullet.Kind, target.Kind) || !bullet.Hitbox.Collides(target.Hitbox) {
				continue
			}
			bullet.Deleted = true
			target.Deleted = true
			PlaySFX(w, cfg.SoundClash)
		}
	})
}

// UpdateEnemyHits resolves player bullets touching enemies in firing order. Precision bullets
// damage and vanish; heavy bullets vanish without damage. A bullet already flagged this tick
// still counts.
func UpdateEnemyHits(w donburi.World) {
	components.Enemy.Each(w, func(e *donburi.Entry) {
		enemy := components.Enemy.Get(e)
		for _, b := range candidates(e, tags.ResolvPrecision, tags.ResolvHeavy) {
			bullet := components.Bullet.Get(b)
			if !enemy.Hitbox.Collides(bullet.Hitbox) {
				continue
			}
			switch bullet.Kind {
			case components.KindPrecision:
				enemy.Hit(cfg.World.PrecisionDamage)
				bullet.Deleted = true
				PlaySFX(w, cfg.SoundHit)
			case components.KindHeavy:
				bullet.Deleted = true
			}
		}
	})
}

// candidates returns the bullet entries whose boxes share a cell with e's box, in creation order.
func candidates(e *donburi.Entry, resolvTags ...string) []*donburi.Entry {
	obj := components.Object.Get(e)
	if obj == nil || obj.Object == nil {
		return nil
	}
	check := obj.Check(0, 0, resolvTags...)
	if check == nil {
		return nil
	}
	return bulletEntries(check.Objects)
}

func bulletEntries(objects []*resolv.Object) []*donburi.Entry {
	seen := make(map[*donburi.Entry]bool, len(objects))
	entries := make([]*donburi.Entry, 0, len(objects))
	for _, o := range objects {
		entry, ok := o.Data.(*donburi.Entry)
		if !ok || seen[entry] || !entry.Valid() || !entry.HasComponent(components.Bullet) {
			continue
		}
		seen[entry] = true
		entries = append(entries, entry)
	}
	sort.Slice(entries, func(i, j int) bool {
		return components.Bullet.Get(entries[i]).Seq < components.Bullet.Get(entries[j]).Seq
	})
	return entries
}
