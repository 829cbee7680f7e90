package gamemath

// Rect is an axis-aligned rectangle given by its corners.
type Rect struct {
	Min, Max Vector
}

// Centered returns a rectangle of the given size centred on the origin.
func Centered(size Vector) Rect {
	half := size.Scale(0.5)
	return Rect{Min: half.Scale(-1), Max: half}
}

func (r Rect) Width() float64  { return r.Max.X - r.Min.X }
func (r Rect) Height() float64 { return r.Max.Y - r.Min.Y }

// ClampCircle moves c the minimum distance needed to keep it fully inside r.
func (r Rect) ClampCircle(c Circle) Circle {
	c.Center.X = Clamp(c.Center.X, r.Min.X+c.Radius, r.Max.X-c.Radius)
	c.Center.Y = Clamp(c.Center.Y, r.Min.Y+c.Radius, r.Max.Y-c.Radius)
	return c
}
