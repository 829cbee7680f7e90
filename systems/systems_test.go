package systems

import (
	"io"
	"log"
	"os"
	"testing"

	"github.com/automoto/bullethell/behavior"
	"github.com/automoto/bullethell/components"
	cfg "github.com/automoto/bullethell/config"
	"github.com/automoto/bullethell/levels"
	"github.com/automoto/bullethell/shared/gamemath"
	"github.com/automoto/bullethell/systems/factory"
	"github.com/yohamta/donburi"
	"pgregory.net/rapid"
)

func TestMain(m *testing.M) {
	log.SetOutput(io.Discard)
	os.Exit(m.Run())
}

func newWorld() donburi.World {
	w := donburi.NewWorld()
	factory.CreateSpace(w)
	GetOrCreateRound(w)
	GetOrCreateAudio(w)
	return w
}

func still(x, y, radius, health float64) levels.EnemyTemplate {
	return levels.EnemyTemplate{
		Radius: radius,
		Health: health,
		Phases: []behavior.Phase{
			behavior.NewPhase(behavior.Forever,
				behavior.Stationary{Point: gamemath.Vec(x, y)},
				behavior.NewRadialBurst(1000, 1, 0)),
		},
	}
}

func bullets(w donburi.World) []*components.BulletData {
	var out []*components.BulletData
	components.Bullet.Each(w, func(e *donburi.Entry) {
		out = append(out, components.Bullet.Get(e))
	})
	return out
}

func TestUpdateLevelSpawnsThenWins(t *testing.T) {
	w := newWorld()
	factory.CreateLevel(w, levels.Level{
		Name: "t",
		Scenes: []levels.Scene{
			{Enemies: []levels.EnemyTemplate{still(0, 0, 10, 1), still(50, 0, 10, 1)}},
		},
	})
	factory.CreateBullet(w, components.KindEnemy, gamemath.Vec(0, 100), gamemath.Vector{})

	BeginRound(w, 0.1)
	UpdateLevel(w)
	if n := enemyQuery.Count(w); n != 2 {
		t.Fatalf("enemies = %d, want 2", n)
	}
	if n := len(bullets(w)); n != 0 {
		t.Errorf("bullets = %d, want 0 after a scene spawn", n)
	}
	if Outcome(w) != components.Continue {
		t.Errorf("Outcome = %v, want continue", Outcome(w))
	}

	// Enemies still alive: no-op
	UpdateLevel(w)
	if n := enemyQuery.Count(w); n != 2 {
		t.Fatalf("enemies = %d, want 2", n)
	}

	ClearEnemies(w)
	UpdateLevel(w)
	if Outcome(w) != components.Win {
		t.Errorf("Outcome = %v, want win", Outcome(w))
	}
}

func TestClampPlayer(t *testing.T) {
	w := newWorld()
	factory.CreatePlayer(w)
	MovePlayer(w, gamemath.Vec(-5000, 5000))
	ClampPlayer(w)

	entry, _ := components.Player.First(w)
	got := components.Player.Get(entry).Hitbox.Center
	want := gamemath.Vec(-cfg.World.ArenaWidth/2+cfg.World.PlayerRadius, cfg.World.ArenaHeight/2-cfg.World.PlayerRadius)
	if got != want {
		t.Errorf("player at %v, want %v", got, want)
	}
}

func TestUpdateBulletsFlagsLeavers(t *testing.T) {
	w := newWorld()
	factory.CreateBullet(w, components.KindEnemy, gamemath.Vec(0, 0), gamemath.Vec(0, 100))
	factory.CreateBullet(w, components.KindEnemy, gamemath.Vec(0, 496), gamemath.Vec(0, 100))

	BeginRound(w, 0.1)
	UpdateBullets(w)
	bs := bullets(w)
	deleted := 0
	for _, b := range bs {
		if b.Deleted {
			deleted++
		}
	}
	if deleted != 1 {
		t.Fatalf("deleted = %d, want 1", deleted)
	}

	UpdateDeaths(w)
	if n := len(bullets(w)); n != 1 {
		t.Errorf("bullets = %d after compaction, want 1", n)
	}
}

func TestUpdateBulletsBoundary(t *testing.T) {
	edge := cfg.World.Arena().Max.Y + factory.BulletRadius(components.KindEnemy)
	tests := []struct {
		name  string
		endY  float64
		flags bool
	}{
		{"inside", edge - 1, false},
		{"on the edge", edge, true},
		{"past the edge", edge + 1, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newWorld()
			factory.CreateBullet(w, components.KindEnemy, gamemath.Vec(0, tt.endY-10), gamemath.Vec(0, 10))

			BeginRound(w, 1)
			UpdateBullets(w)
			bs := bullets(w)
			if len(bs) != 1 {
				t.Fatalf("bullets = %d, want 1", len(bs))
			}
			if bs[0].Deleted != tt.flags {
				t.Errorf("Deleted = %v at y=%v, want %v", bs[0].Deleted, bs[0].Hitbox.Center.Y, tt.flags)
			}
		})
	}
}

func TestUpdateEnemiesSpawnsShots(t *testing.T) {
	w := newWorld()
	tmpl := still(0, 0, 10, 1)
	tmpl.Phases[0].Emitter = behavior.NewRadialBurst(1, 4, 100)
	factory.CreateEnemy(w, tmpl)

	BeginRound(w, 0.01)
	UpdateEnemies(w)
	bs := bullets(w)
	if len(bs) != 4 {
		t.Fatalf("bullets = %d, want 4", len(bs))
	}
	for _, b := range bs {
		if b.Kind != components.KindEnemy {
			t.Errorf("kind = %v, want enemy", b.Kind)
		}
		if d := b.Hitbox.Center.Len(); d < 9.999 || d > 10.001 {
			t.Errorf("spawned %v from the centre, want on the rim", d)
		}
	}
}

func TestFlushAudioKeepsOrder(t *testing.T) {
	w := newWorld()
	PlaySFX(w, cfg.SoundClash)
	PlaySFX(w, cfg.SoundNone)
	PlaySFX(w, cfg.SoundHit)

	var got []string
	FlushAudio(w, func(name string) { got = append(got, name) })
	if len(got) != 2 || got[0] != "shoot_2" || got[1] != "shoot_3" {
		t.Errorf("played %v, want [shoot_2 shoot_3]", got)
	}

	got = nil
	FlushAudio(w, func(name string) { got = append(got, name) })
	if len(got) != 0 {
		t.Errorf("played %v on the second flush, want nothing", got)
	}
}

type bulletSpec struct {
	kind components.BulletKind
	pos  gamemath.Vector
}

func drawBullets(t *rapid.T, n int) []bulletSpec {
	kinds := []components.BulletKind{components.KindPrecision, components.KindHeavy, components.KindEnemy}
	specs := make([]bulletSpec, n)
	for i := range specs {
		specs[i] = bulletSpec{
			kind: rapid.SampledFrom(kinds).Draw(t, "kind"),
			pos: gamemath.Vec(
				rapid.Float64Range(-330, 330).Draw(t, "x"),
				rapid.Float64Range(-530, 530).Draw(t, "y"),
			),
		}
	}
	return specs
}

// The broadphase must flag exactly what the pairwise rule over every bullet flags.
func TestBulletClashesMatchPairwiseRule(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		specs := drawBullets(rt, rapid.IntRange(0, 40).Draw(rt, "n"))
		w := newWorld()
		for _, s := range specs {
			factory.CreateBullet(w, s.kind, s.pos, gamemath.Vector{})
		}
		UpdateObjects(w)
		UpdateBulletClashes(w)

		want := make([]bool, len(specs))
		for i := range specs {
			for j := i + 1; j < len(specs); j++ {
				a := gamemath.Circle{Center: specs[i].pos, Radius: factory.BulletRadius(specs[i].kind)}
				b := gamemath.Circle{Center: specs[j].pos, Radius: factory.BulletRadius(specs[j].kind)}
				if components.Clashes(specs[i].kind, specs[j].kind) && a.Collides(b) {
					want[i], want[j] = true, true
				}
			}
		}

		got := make([]bool, len(specs))
		for _, b := range bullets(w) {
			got[b.Seq] = b.Deleted
		}
		for i := range want {
			if got[i] != want[i] {
				rt.Fatalf("bullet %d (%v at %v): deleted = %v, want %v", i, specs[i].kind, specs[i].pos, got[i], want[i])
			}
		}
	})
}

// Enemy hits resolve in firing order against the shrinking hitbox, matching a plain scan.
func TestEnemyHitsMatchPairwiseRule(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		specs := drawBullets(rt, rapid.IntRange(0, 30).Draw(rt, "n"))
		center := gamemath.Vec(rapid.Float64Range(-250, 250).Draw(rt, "ex"), rapid.Float64Range(-450, 450).Draw(rt, "ey"))
		radius := rapid.Float64Range(5, 60).Draw(rt, "radius")
		health := rapid.Float64Range(1, 20).Draw(rt, "health")

		w := newWorld()
		enemyEntry := factory.CreateEnemy(w, still(center.X, center.Y, radius, health))
		for _, s := range specs {
			factory.CreateBullet(w, s.kind, s.pos, gamemath.Vector{})
		}
		UpdateObjects(w)
		UpdateEnemyHits(w)

		hitbox := gamemath.Circle{Center: center, Radius: radius}
		wantHealth := health
		want := make([]bool, len(specs))
		for i, s := range specs {
			b := gamemath.Circle{Center: s.pos, Radius: factory.BulletRadius(s.kind)}
			if !hitbox.Collides(b) {
				continue
			}
			switch s.kind {
			case components.KindPrecision:
				wantHealth -= cfg.World.PrecisionDamage
				hitbox.Radius -= cfg.World.PrecisionDamage * cfg.Enemy.ShrinkRatio
				want[i] = true
			case components.KindHeavy:
				want[i] = true
			}
		}

		enemy := components.Enemy.Get(enemyEntry)
		if enemy.Health != wantHealth || enemy.Hitbox.Radius != hitbox.Radius {
			rt.Fatalf("enemy health %v radius %v, want %v %v", enemy.Health, enemy.Hitbox.Radius, wantHealth, hitbox.Radius)
		}
		for _, b := range bullets(w) {
			if b.Deleted != want[b.Seq] {
				rt.Fatalf("bullet %d deleted = %v, want %v", b.Seq, b.Deleted, want[b.Seq])
			}
		}
	})
}
