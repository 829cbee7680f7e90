package core

import (
	"errors"
	"testing"

	"github.com/automoto/bullethell/components"
	cfg "github.com/automoto/bullethell/config"
	"github.com/automoto/bullethell/core/mocks"
	"github.com/automoto/bullethell/levels"
	"github.com/automoto/bullethell/shared/gamemath"
	"go.uber.org/mock/gomock"
	"pgregory.net/rapid"
)

func TestNewWorldRejectsBadContent(t *testing.T) {
	if _, err := NewWorld(levels.Level{Name: "empty"}, nil); !errors.Is(err, levels.ErrNoScenes) {
		t.Errorf("err = %v, want ErrNoScenes", err)
	}

	bad := oneScene("bad", sentry(0, 0, 3))
	bad.Scenes[0].Enemies[0].Phases = nil
	if _, err := NewWorld(bad, nil); err == nil {
		t.Error("expected an error for an enemy without phases")
	}

	saved := cfg.World.StartingFanSize
	defer func() { cfg.World.StartingFanSize = saved }()
	cfg.World.StartingFanSize = 1
	if _, err := NewWorld(oneScene("l", sentry(0, 0, 3)), nil); !errors.Is(err, ErrFanTooSmall) {
		t.Errorf("err = %v, want ErrFanTooSmall", err)
	}
}

func TestTickKeepsPlayerInArena(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		w, err := NewWorld(oneScene("l", sentry(0, -300, 3)), nil)
		if err != nil {
			rt.Fatalf("unexpected error: %v", err)
		}
		dx := rapid.Float64Range(-5000, 5000).Draw(rt, "dx")
		dy := rapid.Float64Range(-5000, 5000).Draw(rt, "dy")
		dt := rapid.Float64Range(0.001, 0.1).Draw(rt, "dt")

		w.MovePlayer(gamemath.Vec(dx, dy))
		w.Tick(dt)

		p := w.Player()
		arena := cfg.World.Arena()
		if p.Center.X < arena.Min.X+p.Radius || p.Center.X > arena.Max.X-p.Radius ||
			p.Center.Y < arena.Min.Y+p.Radius || p.Center.Y > arena.Max.Y-p.Radius {
			rt.Fatalf("player %v outside arena", p)
		}
		if arena.ClampCircle(p) != p {
			rt.Fatalf("clamp is not idempotent for %v", p)
		}
	})
}

func TestMovePlayerIsClampedOnNextTick(t *testing.T) {
	w := newTestWorld(t, oneScene("l", sentry(0, -300, 3)), nil)
	w.MovePlayer(gamemath.Vec(10000, 0))
	if got := w.Player().Center.X; got != 10000 {
		t.Fatalf("X = %v before tick, want 10000", got)
	}
	w.Tick(step)
	if got, want := w.Player().Center.X, cfg.World.ArenaWidth/2-cfg.World.PlayerRadius; got != want {
		t.Errorf("X = %v after tick, want %v", got, want)
	}
}

func TestEndToEndTwoScenesWin(t *testing.T) {
	level := levels.Level{
		Name: "e2e",
		Scenes: []levels.Scene{
			{Enemies: []levels.EnemyTemplate{sentry(0, -300, 3)}},
			{Enemies: []levels.EnemyTemplate{sentry(-100, -300, 3), sentry(100, -300, 3)}},
		},
	}
	w := newTestWorld(t, level, nil)

	if got := w.Tick(step); got != Continue {
		t.Fatalf("tick 1 = %v, want continue", got)
	}
	if s := w.Snapshot(); len(s.Enemies) != 1 || s.Level.Scene != 1 {
		t.Fatalf("scene 0 not spawned: %d enemies, scene %d", len(s.Enemies), s.Level.Scene)
	}

	spawnBullet(w, components.KindPrecision, 0, -300)
	if got := w.Tick(step); got != Continue {
		t.Fatalf("tick 2 = %v, want continue", got)
	}
	s := w.Snapshot()
	if len(s.Enemies) != 0 {
		t.Fatalf("enemies = %d after a 3 damage hit, want 0", len(s.Enemies))
	}
	if n := countKind(s, components.KindPrecision); n != 0 {
		t.Errorf("precision bullets = %d, want 0 after hitting", n)
	}

	// Left over from scene 0; the scene change must clear it.
	spawnBullet(w, components.KindHeavy, 200, 0)
	if got := w.Tick(step); got != Continue {
		t.Fatalf("tick 3 = %v, want continue", got)
	}
	s = w.Snapshot()
	if len(s.Enemies) != 2 || s.Level.Scene != 2 {
		t.Fatalf("scene 1 not spawned: %d enemies, scene %d", len(s.Enemies), s.Level.Scene)
	}
	if n := countKind(s, components.KindHeavy); n != 0 {
		t.Errorf("heavy bullets = %d after scene change, want 0", n)
	}

	spawnBullet(w, components.KindPrecision, -100, -300)
	spawnBullet(w, components.KindPrecision, 100, -300)
	if got := w.Tick(step); got != Continue {
		t.Fatalf("tick 4 = %v, want continue", got)
	}
	if s := w.Snapshot(); len(s.Enemies) != 0 {
		t.Fatalf("enemies = %d, want 0", len(s.Enemies))
	}

	if got := w.Tick(step); got != Win {
		t.Fatalf("tick 5 = %v, want win", got)
	}
	if w.FanSize() != cfg.World.StartingFanSize+1 {
		t.Errorf("FanSize = %d, want %d", w.FanSize(), cfg.World.StartingFanSize+1)
	}
	if got := w.Tick(step); got != Win {
		t.Errorf("tick 6 = %v, want win to persist", got)
	}
	if w.FanSize() != cfg.World.StartingFanSize+1 {
		t.Errorf("FanSize = %d, want one increase per level clear", w.FanSize())
	}
}

func TestPrecisionHitDamagesAndShrinks(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	sink := mocks.NewMockSoundSink(ctrl)
	sink.EXPECT().Play("shoot_3").Times(1)

	w := newTestWorld(t, oneScene("l", sentry(0, -300, 4)), sink)
	w.Tick(step)
	spawnBullet(w, components.KindPrecision, 0, -300)
	w.Tick(step)

	s := w.Snapshot()
	if len(s.Enemies) != 1 {
		t.Fatalf("enemies = %d, want 1", len(s.Enemies))
	}
	e := s.Enemies[0]
	if !almostEqual(e.Health, 1) {
		t.Errorf("Health = %v, want 1", e.Health)
	}
	if want := 20 - 3*cfg.Enemy.ShrinkRatio; !almostEqual(e.Hitbox.Radius, want) {
		t.Errorf("Radius = %v, want %v", e.Hitbox.Radius, want)
	}
	if e.Sprite != levels.SpriteGhost || e.Width != 100 {
		t.Errorf("presentation = %q/%v, want ghost/100", e.Sprite, e.Width)
	}
}

func TestHeavyHitDoesNoDamage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	sink := mocks.NewMockSoundSink(ctrl) // no sound expected

	w := newTestWorld(t, oneScene("l", sentry(0, -300, 3)), sink)
	w.Tick(step)
	spawnBullet(w, components.KindHeavy, 0, -300)
	w.Tick(step)

	s := w.Snapshot()
	if len(s.Enemies) != 1 || !almostEqual(s.Enemies[0].Health, 3) {
		t.Fatalf("enemy changed by a heavy bullet: %+v", s.Enemies)
	}
	if n := countKind(s, components.KindHeavy); n != 0 {
		t.Errorf("heavy bullets = %d, want 0 after touching the enemy", n)
	}
}

func TestBulletClashes(t *testing.T) {
	tests := []struct {
		name     string
		a, b     components.BulletKind
		removed  bool
		clashSFX bool
	}{
		{"heavy vs enemy", components.KindHeavy, components.KindEnemy, true, true},
		{"precision vs enemy", components.KindPrecision, components.KindEnemy, false, false},
		{"precision vs heavy", components.KindPrecision, components.KindHeavy, false, false},
		{"enemy vs enemy", components.KindEnemy, components.KindEnemy, false, false},
		{"heavy vs heavy", components.KindHeavy, components.KindHeavy, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			sink := mocks.NewMockSoundSink(ctrl)
			if tt.clashSFX {
				sink.EXPECT().Play("shoot_2").Times(1)
			}

			w := newTestWorld(t, oneScene("l", sentry(0, -300, 3)), sink)
			w.Tick(step)
			before := len(w.Snapshot().Bullets)

			spawnBullet(w, tt.a, 150, 0)
			spawnBullet(w, tt.b, 152, 0)
			w.Tick(step)

			got := len(w.Snapshot().Bullets) - before
			want := 2
			if tt.removed {
				want = 0
			}
			if got != want {
				t.Errorf("bullets left = %d, want %d", got, want)
			}
		})
	}
}

func TestEnemyBulletOnPlayerLoses(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	sink := mocks.NewMockSoundSink(ctrl) // the clash step never runs

	w := newTestWorld(t, oneScene("l", sentry(0, -300, 3)), sink)
	w.Tick(step)

	p := w.Player().Center
	spawnBullet(w, components.KindEnemy, p.X, p.Y)
	spawnBullet(w, components.KindHeavy, p.X, p.Y)
	before := len(w.Snapshot().Bullets)

	if got := w.Tick(step); got != Lose {
		t.Fatalf("Tick = %v, want lose", got)
	}
	if after := len(w.Snapshot().Bullets); after != before {
		t.Errorf("bullets = %d, want %d: nothing after the player check may run", after, before)
	}
}

func TestBulletsLeavingArenaAreRemoved(t *testing.T) {
	w := newTestWorld(t, oneScene("l", sentry(0, -300, 3)), nil)
	w.Tick(step)
	for i := 0; i < 20; i++ {
		w.Tick(step)
	}
	if n := countKind(w.Snapshot(), components.KindEnemy); n != 0 {
		t.Errorf("enemy bullets = %d, want 0 once the shot left the arena", n)
	}
}

func TestShootFan(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	sink := mocks.NewMockSoundSink(ctrl)
	sink.EXPECT().Play("shoot").Times(1)

	w := newTestWorld(t, oneScene("l", sentry(0, -300, 3)), sink)
	if err := w.Shoot(gamemath.Vec(0, -500), Precision); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	s := w.Snapshot()
	if len(s.Bullets) != cfg.World.StartingFanSize {
		t.Fatalf("bullets = %d, want %d", len(s.Bullets), cfg.World.StartingFanSize)
	}
	p := w.Player().Center
	spacing := cfg.World.PrecisionRadius + 1
	for i, b := range s.Bullets {
		wantX := p.X - spacing/2 + spacing*float64(i)
		if !almostEqual(b.Hitbox.Center.X, wantX) || b.Hitbox.Center.Y != p.Y {
			t.Errorf("bullet %d at %v, want (%v, %v)", i, b.Hitbox.Center, wantX, p.Y)
		}
		if b.Kind != Precision {
			t.Errorf("bullet %d kind = %v, want precision", i, b.Kind)
		}
	}

	if err := w.Shoot(gamemath.Vec(0, -500), components.KindEnemy); !errors.Is(err, ErrNotPlayerBullet) {
		t.Errorf("err = %v, want ErrNotPlayerBullet", err)
	}
}

func TestResetKeepsFanAndClearsArena(t *testing.T) {
	w := newTestWorld(t, oneScene("l", sentry(0, -300, 3)), nil)
	w.Tick(step)
	spawnBullet(w, components.KindPrecision, 0, -300)
	w.Tick(step)
	if got := w.Tick(step); got != Win {
		t.Fatalf("Tick = %v, want win", got)
	}

	w.MovePlayer(gamemath.Vec(50, 50))
	next := oneScene("next", sentry(0, -200, 3))
	if err := w.Reset(next); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	s := w.Snapshot()
	if len(s.Enemies) != 0 || len(s.Bullets) != 0 {
		t.Errorf("arena not cleared: %d enemies, %d bullets", len(s.Enemies), len(s.Bullets))
	}
	if s.Player != cfg.World.PlayerStart() {
		t.Errorf("Player = %v, want %v", s.Player, cfg.World.PlayerStart())
	}
	if s.Level.Name != "next" || s.Level.Scene != 0 {
		t.Errorf("Level = %+v, want next at scene 0", s.Level)
	}
	if s.FanSize != cfg.World.StartingFanSize+1 {
		t.Errorf("FanSize = %d, want %d", s.FanSize, cfg.World.StartingFanSize+1)
	}

	if got := w.Tick(step); got != Continue {
		t.Errorf("Tick after reset = %v, want continue", got)
	}
	if err := w.Reset(levels.Level{}); !errors.Is(err, levels.ErrNoScenes) {
		t.Errorf("err = %v, want ErrNoScenes", err)
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	w := newTestWorld(t, oneScene("l", sentry(0, -300, 3)), nil)
	w.Tick(step)
	s := w.Snapshot()
	s.Enemies[0].Health = 0
	s.Player.Radius = 0

	again := w.Snapshot()
	if again.Enemies[0].Health != 3 || again.Player.Radius != cfg.World.PlayerRadius {
		t.Error("snapshot shares state with the world")
	}
	if again.Session != w.ID().String() {
		t.Errorf("Session = %q, want %q", again.Session, w.ID())
	}
}

func TestShippedLevelsLoad(t *testing.T) {
	for _, l := range levels.All() {
		w := newTestWorld(t, l, nil)
		for i := 0; i < 600; i++ {
			if got := w.Tick(1.0 / 60); got == Win {
				t.Errorf("level %s won without firing", l.Name)
			}
		}
	}
}
