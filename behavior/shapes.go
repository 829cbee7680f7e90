package behavior

import (
	"math"

	"github.com/automoto/bullethell/shared/gamemath"
)

// Wall is a horizontal row of count bullets spread across width, all falling at speed.
func Wall(period, speed, width float64, count int) *FixedPattern {
	if count < 2 {
		return &FixedPattern{cooldown: cooldown{period: period}, err: ErrFanTooSmall}
	}
	shots := make([]Shot, count)
	step := width / float64(count-1)
	for i := range shots {
		shots[i] = Shot{
			Position: gamemath.Vec(-width/2+float64(i)*step, 0),
			Velocity: gamemath.Vec(0, speed),
		}
	}
	return NewFixedPattern(period, shots)
}

// Heart spawns count bullets at the origin that spread out along a heart outline. The
// widest point of the heart moves at speed.
func Heart(period, speed float64, count int) *FixedPattern {
	shots := make([]Shot, count)
	for i := range shots {
		p := heartPoint(2 * math.Pi * float64(i) / float64(count))
		shots[i] = Shot{Velocity: p.Scale(speed / 16)}
	}
	return NewFixedPattern(period, shots)
}

// ForwardHeart spawns a heart outline scale times the unit curve (about 32·scale wide)
// whose bullets all travel with forward.
func ForwardHeart(period, scale float64, forward gamemath.Vector, count int) *FixedPattern {
	shots := make([]Shot, count)
	for i := range shots {
		p := heartPoint(2 * math.Pi * float64(i) / float64(count))
		shots[i] = Shot{Position: p.Scale(scale), Velocity: forward}
	}
	return NewFixedPattern(period, shots)
}

// heartPoint samples the classic heart curve, flipped so the point faces +Y (down-screen).
func heartPoint(s float64) gamemath.Vector {
	sin := math.Sin(s)
	x := 16 * sin * sin * sin
	y := 13*math.Cos(s) - 5*math.Cos(2*s) - 2*math.Cos(3*s) - math.Cos(4*s)
	return gamemath.Vec(x, -y)
}
