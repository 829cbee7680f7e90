package levels

import (
	"math"

	"github.com/automoto/bullethell/behavior"
	"github.com/automoto/bullethell/shared/gamemath"
)

// L1 is the opening level: a lone sniper, a trio of weavers, two orbiters and the witch.
func L1() Level {
	return Level{
		Name:       "l1",
		Background: "floor",
		Music:      "resurrection",
		Scenes:     []Scene{l1s0(), l1s1(), l1s2(), l1s3()},
	}
}

func l1s0() Scene {
	cone := func() behavior.Emitter {
		return behavior.NewConeBurst(0.3, 2, gamemath.Vec(0, 200), 0.5)
	}
	return Scene{Enemies: []EnemyTemplate{{
		Radius: 20,
		Health: 30,
		Sprite: SpriteGhost,
		Width:  100,
		Phases: []behavior.Phase{
			behavior.NewPhase(3,
				behavior.Linear{From: gamemath.Vec(0, -800), To: gamemath.Vec(0, -400), Duration: 3},
				cone()),
			behavior.NewPhase(behavior.Forever,
				behavior.Stationary{Point: gamemath.Vec(0, -400)},
				cone()),
		},
	}}}
}

func l1s1() Scene {
	paths := [][3]gamemath.Vector{
		{gamemath.Vec(0, -600), gamemath.Vec(-200, -50), gamemath.Vec(50, -450)},
		{gamemath.Vec(0, 600), gamemath.Vec(-150, -350), gamemath.Vec(200, -50)},
		{gamemath.Vec(400, -200), gamemath.Vec(100, -300), gamemath.Vec(-250, -400)},
	}

	var enemies []EnemyTemplate
	for i, p := range paths {
		cone := func() behavior.Emitter {
			return behavior.NewConeBurst(0.3, 2+i, gamemath.Vec(0, 200), 1.5)
		}
		enemies = append(enemies, EnemyTemplate{
			Radius: 20,
			Health: 5,
			Sprite: SpriteGhost,
			Width:  100,
			Phases: []behavior.Phase{
				behavior.NewPhase(6, behavior.Linear{From: p[0], To: p[1], Duration: 6}, cone()),
				behavior.NewPhase(6, behavior.Linear{From: p[1], To: p[2], Duration: 6}, cone()),
				behavior.JumpPhase(6, behavior.Linear{From: p[2], To: p[1], Duration: 6}, cone(), 1),
			},
		})
	}
	return Scene{Enemies: enemies}
}

func l1s2() Scene {
	return Scene{Enemies: []EnemyTemplate{
		Orbiter(math.Pi, 2, gamemath.Vec(-20, -350)),
		Orbiter(0, 2, gamemath.Vec(20, -350)),
	}}
}

func l1s3() Scene {
	wallAndRing := func() behavior.Emitter {
		return behavior.NewCombinator(
			behavior.Wall(0.5, 200, 300, 15),
			behavior.NewRadialBurst(0.3, 7, 200),
		)
	}
	heart := func() behavior.Emitter {
		return behavior.Heart(0.5, 150, 30)
	}
	return Scene{Enemies: []EnemyTemplate{{
		Radius: 20,
		Health: 30,
		Sprite: SpriteWitch,
		Width:  200,
		Phases: []behavior.Phase{
			behavior.NewPhase(2,
				behavior.Linear{From: gamemath.Vec(0, -700), To: gamemath.Vec(50, -250), Duration: 2},
				behavior.Wall(1.5, 200, 500, 30)),
			behavior.NewPhase(math.Pi,
				behavior.Circular{Center: gamemath.Vec(-100, -250), Offset: math.Pi / 2, Speed: 1, Radius: 150},
				wallAndRing()),
			behavior.NewPhase(math.Pi*2,
				behavior.Circular{Center: gamemath.Vec(0, -250), Offset: 3 * math.Pi / 2, Speed: 0.5, Radius: 250},
				heart()),
			behavior.NewPhase(math.Pi,
				behavior.Circular{Center: gamemath.Vec(100, -250), Offset: math.Pi / 2, Speed: 1, Radius: 150},
				wallAndRing()),
			behavior.NewPhase(2,
				behavior.Linear{From: gamemath.Vec(-50, -250), To: gamemath.Vec(-200, -400), Duration: 2},
				heart()),
			behavior.NewPhase(5,
				behavior.Linear{From: gamemath.Vec(-200, -400), To: gamemath.Vec(200, -400), Duration: 5},
				heart()),
			behavior.JumpPhase(2,
				behavior.Linear{From: gamemath.Vec(200, -400), To: gamemath.Vec(50, -250), Duration: 2},
				heart(), 1),
		},
	}}}
}
