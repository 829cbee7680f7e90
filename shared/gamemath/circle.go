package gamemath

// Circle is the hitbox primitive used by every entity in the arena.
type Circle struct {
	Center Vector
	Radius float64
}

func NewCircle(x, y, r float64) Circle {
	return Circle{Center: Vector{X: x, Y: y}, Radius: r}
}

// Collides reports whether the circles overlap. Touching circles do not collide.
func (c Circle) Collides(o Circle) bool {
	return c.Center.Dist(o.Center) < c.Radius+o.Radius
}

// InBounds reports whether the circle is at least partly inside r, i.e. its center lies
// strictly inside r inflated by the radius.
func (c Circle) InBounds(r Rect) bool {
	x, y := c.Center.X, c.Center.Y
	return x > r.Min.X-c.Radius && x < r.Max.X+c.Radius &&
		y > r.Min.Y-c.Radius && y < r.Max.Y+c.Radius
}

// Translate returns the circle moved by d.
func (c Circle) Translate(d Vector) Circle {
	c.Center = c.Center.Add(d)
	return c
}
