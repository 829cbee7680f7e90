package levels

import (
	"math"

	"github.com/automoto/bullethell/shared/gamemath"
)

// L2 is a single scene with two mirrored twins.
func L2() Level {
	return Level{
		Name:       "l2",
		Background: "floor",
		Music:      "resurrection",
		Scenes: []Scene{{Enemies: []EnemyTemplate{
			Twin(gamemath.Vec(0, -550), math.Pi, 2, []gamemath.Vector{
				gamemath.Vec(-200, -200), gamemath.Vec(-20, -350), gamemath.Vec(-200, -200),
			}),
			Twin(gamemath.Vec(0, -550), 0, 2, []gamemath.Vector{
				gamemath.Vec(200, -200), gamemath.Vec(20, -350), gamemath.Vec(200, -200),
			}),
		}}},
	}
}
