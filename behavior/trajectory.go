package behavior

import (
	"fmt"
	"math"

	"github.com/automoto/bullethell/shared/gamemath"
)

// Trajectory maps phase-local elapsed time to a position. Implementations are pure and must
// accept any t >= 0, including values past the owning phase's duration.
//
// The set of implementations is closed: Circular, Stationary, Linear and Composite.
type Trajectory interface {
	Location(t float64) gamemath.Vector
	Validate() error
	trajectory()
}

// Circular orbits Center at Radius, starting at angle Offset and turning Speed radians per second.
type Circular struct {
	Center gamemath.Vector
	Offset float64
	Speed  float64
	Radius float64
}

func (c Circular) Location(t float64) gamemath.Vector {
	a := c.Speed*t + c.Offset
	return c.Center.Add(gamemath.Vec(math.Sin(a), math.Cos(a)).Scale(c.Radius))
}

func (c Circular) Validate() error { return nil }
func (Circular) trajectory()       {}

// Stationary holds a single point.
type Stationary struct {
	Point gamemath.Vector
}

func (s Stationary) Location(float64) gamemath.Vector { return s.Point }
func (s Stationary) Validate() error                  { return nil }
func (Stationary) trajectory()                        {}

// Linear moves from From to To in Duration seconds and keeps going past To afterwards.
type Linear struct {
	From     gamemath.Vector
	To       gamemath.Vector
	Duration float64
}

func (l Linear) Location(t float64) gamemath.Vector {
	return l.From.Add(l.To.Sub(l.From).Scale(t / l.Duration))
}

func (l Linear) Validate() error {
	if !(l.Duration > 0) {
		return fmt.Errorf("linear trajectory: %w", ErrBadDuration)
	}
	return nil
}

func (Linear) trajectory() {}

// Composite is the vector sum of two trajectories.
type Composite struct {
	A, B Trajectory
}

func (c Composite) Location(t float64) gamemath.Vector {
	return c.A.Location(t).Add(c.B.Location(t))
}

func (c Composite) Validate() error {
	if c.A == nil || c.B == nil {
		return fmt.Errorf("composite trajectory: %w", ErrNilPart)
	}
	if err := c.A.Validate(); err != nil {
		return err
	}
	return c.B.Validate()
}

func (Composite) trajectory() {}
