package levels

import (
	"math"

	"github.com/automoto/bullethell/behavior"
	"github.com/automoto/bullethell/shared/gamemath"
)

const (
	SpriteGhost = "ghost"
	SpriteWitch = "witch"
)

var orbitCenter = gamemath.Vec(0, -250)

// Orbiter circles the upper arena spraying pairs of bullets, rests at stayAt firing rings,
// then circles back the other way.
func Orbiter(offset, speed float64, stayAt gamemath.Vector) EnemyTemplate {
	orbit := func(dir float64) behavior.Circular {
		return behavior.Circular{Center: orbitCenter, Offset: offset + math.Pi/2, Speed: dir * speed, Radius: 200}
	}
	return EnemyTemplate{
		Radius: 30,
		Health: 30,
		Sprite: SpriteGhost,
		Width:  100,
		Phases: []behavior.Phase{
			behavior.NewPhase(math.Pi*3, orbit(1), behavior.NewRadialBurst(0.1, 2, 200)),
			behavior.NewPhase(3, behavior.Stationary{Point: stayAt}, behavior.NewRadialBurst(0.3, 6, 200)),
			behavior.NewPhase(math.Pi*3, orbit(-1), behavior.NewRadialBurst(0.1, 2, 200)),
			behavior.NewPhase(3, behavior.Stationary{Point: stayAt}, behavior.NewRadialBurst(0.3, 6, 300)),
		},
	}
}

// Twin flies in from start dropping a heart, alternates orbits with heart volleys, and walks
// points with cone fire. After the first pass it loops from the first orbit.
func Twin(start gamemath.Vector, offset, speed float64, points []gamemath.Vector) EnemyTemplate {
	orbit := func(dir float64) behavior.Circular {
		return behavior.Circular{Center: gamemath.Vec(0, -200), Offset: offset + math.Pi/2, Speed: dir * speed, Radius: 200}
	}
	phases := []behavior.Phase{
		behavior.NewPhase(5,
			behavior.Linear{From: start, To: points[0], Duration: 5},
			behavior.ForwardHeart(1, 5, gamemath.Vec(0, 200), 30)),
		behavior.NewPhase(math.Pi*2, orbit(1), behavior.Heart(1.5, 100, 40)),
		behavior.NewPhase(1, behavior.Stationary{Point: points[0]}, behavior.NewRadialBurst(0.2, 6, 200)),
	}
	for i := 0; i+1 < len(points); i++ {
		phases = append(phases, behavior.NewPhase(1,
			behavior.Linear{From: points[i], To: points[i+1], Duration: 1},
			behavior.NewConeBurst(0.2, 6, gamemath.Vec(0, 200), 1)))
	}
	phases = append(phases,
		behavior.NewPhase(1, behavior.Stationary{Point: points[0]}, behavior.NewRadialBurst(0.2, 6, 200)),
		behavior.NewPhase(math.Pi*2, orbit(-1), behavior.Heart(1.5, 100, 40)),
		behavior.JumpPhase(3, behavior.Stationary{Point: points[len(points)-1]}, behavior.NewRadialBurst(0.2, 6, 300), 1),
	)
	return EnemyTemplate{
		Radius: 30,
		Health: 30,
		Sprite: SpriteGhost,
		Width:  100,
		Phases: phases,
	}
}
