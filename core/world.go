package core

import (
	"fmt"
	"log"

	"github.com/automoto/bullethell/components"
	cfg "github.com/automoto/bullethell/config"
	"github.com/automoto/bullethell/levels"
	"github.com/automoto/bullethell/shared/gamemath"
	"github.com/automoto/bullethell/systems"
	"github.com/automoto/bullethell/systems/factory"
	"github.com/segmentio/ksuid"
	"github.com/yohamta/donburi"
)

// Outcome is the result of one tick.
type Outcome = components.Outcome

const (
	Continue = components.Continue
	Win      = components.Win
	Lose     = components.Lose
)

// BulletKind selects a player bullet.
type BulletKind = components.BulletKind

const (
	Precision = components.KindPrecision
	Heavy     = components.KindHeavy
)

// tickSteps run in this order every tick. Steps that decide the round stop the tick early.
var tickSteps = []func(donburi.World){
	systems.UpdateLevel,
	systems.ClampPlayer,
	systems.UpdateObjects,
	systems.UpdatePlayerHits,
	systems.UpdateBulletClashes,
	systems.UpdateEnemyHits,
	systems.UpdateEnemies,
	systems.UpdateBullets,
	systems.UpdateDeaths,
}

// World owns one running simulation: the player, the live enemies and bullets, and the level
// being played. It is not safe for concurrent use.
type World struct {
	ecs     donburi.World
	sink    SoundSink
	id      ksuid.KSUID
	fanSize int
	cleared bool // Win already counted for the current level
}

// NewWorld validates level and builds a world ready for its first tick. A nil sink discards
// sounds.
func NewWorld(level levels.Level, sink SoundSink) (*World, error) {
	if cfg.World.StartingFanSize < 2 {
		return nil, fmt.Errorf("fan of %d: %w", cfg.World.StartingFanSize, ErrFanTooSmall)
	}
	if err := level.Validate(); err != nil {
		return nil, err
	}
	if sink == nil {
		sink = NopSink{}
	}

	w := &World{
		ecs:     donburi.NewWorld(),
		sink:    sink,
		id:      ksuid.New(),
		fanSize: cfg.World.StartingFanSize,
	}
	factory.CreateSpace(w.ecs)
	systems.GetOrCreateRound(w.ecs)
	systems.GetOrCreateAudio(w.ecs)
	factory.CreatePlayer(w.ecs)
	factory.CreateLevel(w.ecs, level)

	log.Printf("world %s: loaded level %s (%d scenes)", w.id, level.Name, len(level.Scenes))
	return w, nil
}

// Tick advances the simulation by dt seconds.
func (w *World) Tick(dt float64) Outcome {
	systems.BeginRound(w.ecs, dt)

	outcome := Continue
	for _, step := range tickSteps {
		step(w.ecs)
		if outcome = systems.Outcome(w.ecs); outcome != Continue {
			break
		}
	}

	if outcome == Win && !w.cleared {
		w.cleared = true
		w.fanSize++
		log.Printf("world %s: level cleared, fan size now %d", w.id, w.fanSize)
	}

	w.flushAudio()
	return outcome
}

// MovePlayer translates the player by delta. The arena clamp applies on the next tick.
func (w *World) MovePlayer(delta gamemath.Vector) {
	systems.MovePlayer(w.ecs, delta)
}

// Shoot fires one fan of player bullets travelling at velocity. The fan is centred on the
// player and spaced by the bullet radius plus one.
func (w *World) Shoot(velocity gamemath.Vector, kind BulletKind) error {
	if !kind.IsPlayer() {
		return fmt.Errorf("shoot %s: %w", kind, ErrNotPlayerBullet)
	}

	origin := w.Player().Center
	spacing := factory.BulletRadius(kind) + 1
	start := origin.X - spacing*float64(w.fanSize-1)/2
	for i := 0; i < w.fanSize; i++ {
		pos := gamemath.Vec(start+spacing*float64(i), origin.Y)
		factory.CreateBullet(w.ecs, kind, pos, velocity)
	}

	systems.PlaySFX(w.ecs, cfg.SoundShoot)
	w.flushAudio()
	return nil
}

// Reset clears every enemy and bullet, puts the player back at the start and begins level from
// its first scene. The fan size is kept.
func (w *World) Reset(level levels.Level) error {
	if err := level.Validate(); err != nil {
		return err
	}

	systems.ClearBullets(w.ecs)
	systems.ClearEnemies(w.ecs)

	if entry, ok := components.Player.First(w.ecs); ok {
		components.Player.Get(entry).Hitbox = cfg.World.PlayerStart()
	}
	if entry, ok := components.Level.First(w.ecs); ok {
		components.Level.SetValue(entry, components.LevelData{Level: level})
	}
	round := systems.GetOrCreateRound(w.ecs)
	round.Outcome = Continue
	systems.GetOrCreateAudio(w.ecs).PendingSFX = nil
	w.cleared = false

	log.Printf("world %s: reset to level %s", w.id, level.Name)
	return nil
}

// Player returns the player hitbox.
func (w *World) Player() gamemath.Circle {
	entry, ok := components.Player.First(w.ecs)
	if !ok {
		return gamemath.Circle{}
	}
	return components.Player.Get(entry).Hitbox
}

// FanSize is the number of bullets fired per shot.
func (w *World) FanSize() int { return w.fanSize }

// ID identifies this world in logs and snapshots.
func (w *World) ID() ksuid.KSUID { return w.id }

func (w *World) flushAudio() {
	systems.FlushAudio(w.ecs, w.sink.Play)
}
