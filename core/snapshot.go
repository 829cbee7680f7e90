package core

import (
	"sort"

	"github.com/automoto/bullethell/components"
	cfg "github.com/automoto/bullethell/config"
	"github.com/automoto/bullethell/shared/gamemath"
	"github.com/yohamta/donburi"
)

// EnemyView is the drawable state of one live enemy.
type EnemyView struct {
	Hitbox gamemath.Circle
	Sprite string
	Width  float64
	Health float64
}

// BulletView is the drawable state of one live bullet.
type BulletView struct {
	Hitbox gamemath.Circle
	Kind   BulletKind
}

// LevelView describes the level being played.
type LevelView struct {
	Name       string
	Background string
	Music      string
	Scene      int // Scenes spawned so far
	Scenes     int
}

// Snapshot is a copy of everything a renderer needs. Mutating it does not affect the World.
type Snapshot struct {
	Session string
	Arena   gamemath.Rect
	Elapsed float64
	FanSize int
	Player  gamemath.Circle
	Level   LevelView
	Enemies []EnemyView
	Bullets []BulletView // Oldest first
}

// Snapshot copies the current state for drawing.
func (w *World) Snapshot() Snapshot {
	s := Snapshot{
		Session: w.id.String(),
		Arena:   cfg.World.Arena(),
		FanSize: w.fanSize,
		Player:  w.Player(),
	}
	if entry, ok := components.Round.First(w.ecs); ok {
		s.Elapsed = components.Round.Get(entry).Elapsed
	}
	if entry, ok := components.Level.First(w.ecs); ok {
		level := components.Level.Get(entry)
		s.Level = LevelView{
			Name:       level.Level.Name,
			Background: level.Level.Background,
			Music:      level.Level.Music,
			Scene:      level.Cursor,
			Scenes:     len(level.Level.Scenes),
		}
	}

	components.Enemy.Each(w.ecs, func(e *donburi.Entry) {
		enemy := components.Enemy.Get(e)
		s.Enemies = append(s.Enemies, EnemyView{
			Hitbox: enemy.Hitbox,
			Sprite: enemy.Sprite,
			Width:  enemy.Width,
			Health: enemy.Health,
		})
	})

	var seqs []uint64
	components.Bullet.Each(w.ecs, func(e *donburi.Entry) {
		bullet := components.Bullet.Get(e)
		s.Bullets = append(s.Bullets, BulletView{Hitbox: bullet.Hitbox, Kind: bullet.Kind})
		seqs = append(seqs, bullet.Seq)
	})
	sort.Sort(bySeq{views: s.Bullets, seqs: seqs})

	return s
}

type bySeq struct {
	views []BulletView
	seqs  []uint64
}

func (b bySeq) Len() int           { return len(b.views) }
func (b bySeq) Less(i, j int) bool { return b.seqs[i] < b.seqs[j] }
func (b bySeq) Swap(i, j int) {
	b.views[i], b.views[j] = b.views[j], b.views[i]
	b.seqs[i], b.seqs[j] = b.seqs[j], b.seqs[i]
}
