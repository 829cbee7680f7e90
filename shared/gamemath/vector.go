package gamemath

import "math"

// Vector is a 2D point or displacement. Screen convention: +Y points down.
type Vector struct {
	X, Y float64
}

// Vec is shorthand for Vector{X: x, Y: y}.
func Vec(x, y float64) Vector {
	return Vector{X: x, Y: y}
}

func (v Vector) Add(o Vector) Vector {
	return Vector{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vector) Sub(o Vector) Vector {
	return Vector{X: v.X - o.X, Y: v.Y - o.Y}
}

func (v Vector) Scale(k float64) Vector {
	return Vector{X: v.X * k, Y: v.Y * k}
}

// Len returns the Euclidean length.
func (v Vector) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Norm returns the unit vector in the direction of v. The zero vector is returned unchanged.
func (v Vector) Norm() Vector {
	l := v.Len()
	if l == 0 {
		return v
	}
	return v.Scale(1 / l)
}

// Angle returns the direction of v in radians, normalised to [0, 2π).
func (v Vector) Angle() float64 {
	a := math.Atan2(v.Y, v.X)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a
}

// Dist returns the distance between two points.
func (v Vector) Dist(o Vector) float64 {
	return v.Sub(o).Len()
}

// FromAngle returns the unit vector (cos a, sin a).
func FromAngle(a float64) Vector {
	return Vector{X: math.Cos(a), Y: math.Sin(a)}
}
