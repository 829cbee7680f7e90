package behavior

import (
	"fmt"
	"math"

	"github.com/automoto/bullethell/shared/gamemath"
)

// Shot is a bullet request: where it appears and how fast it travels.
type Shot struct {
	Position gamemath.Vector
	Velocity gamemath.Vector
}

// Emitter produces shots on a cooldown. The cooldown timer is the only mutable state, so a
// template emitter is never ticked directly: Fresh returns an independent copy with a reset timer.
//
// Implementations: RadialBurst, ConeBurst, FixedPattern and Combinator.
type Emitter interface {
	// Tick spends dt from the cooldown and appends at most one burst to out.
	// t is the phase-local elapsed time.
	Tick(origin gamemath.Circle, t, dt float64, out []Shot) []Shot
	Fresh() Emitter
	Validate() error
	emitter()
}

type cooldown struct {
	period float64
	timer  float64
}

// ready fires at most once per call and carries the overshoot into the next period.
func (c *cooldown) ready(dt float64) bool {
	c.timer -= dt
	if c.timer > 0 {
		return false
	}
	c.timer += c.period
	return true
}

func (c cooldown) validate() error {
	if !(c.period > 0) {
		return ErrBadCooldown
	}
	return nil
}

func spawn(origin gamemath.Circle, dir gamemath.Vector, speed float64) Shot {
	return Shot{
		Position: origin.Center.Add(dir.Scale(origin.Radius)),
		Velocity: dir.Scale(speed),
	}
}

// RadialBurst fires Count bullets evenly around the origin. The ring is rotated by the phase
// time, so successive bursts turn.
type RadialBurst struct {
	cooldown
	Count int
	Speed float64
}

func NewRadialBurst(period float64, count int, speed float64) *RadialBurst {
	return &RadialBurst{cooldown: cooldown{period: period}, Count: count, Speed: speed}
}

func (r *RadialBurst) Tick(origin gamemath.Circle, t, dt float64, out []Shot) []Shot {
	if !r.ready(dt) {
		return out
	}
	step := 2 * math.Pi / float64(r.Count)
	for i := 0; i < r.Count; i++ {
		a := t + float64(i)*step
		out = append(out, spawn(origin, gamemath.Vec(math.Sin(a), math.Cos(a)), r.Speed))
	}
	return out
}

func (r *RadialBurst) Fresh() Emitter {
	c := *r
	c.timer = 0
	return &c
}

func (r *RadialBurst) Validate() error {
	if err := r.validate(); err != nil {
		return fmt.Errorf("radial burst: %w", err)
	}
	if r.Count < 1 {
		return fmt.Errorf("radial burst: %w", ErrEmptyPattern)
	}
	return nil
}

func (*RadialBurst) emitter() {}

// ConeBurst fires Count bullets spread evenly over Spread radians around Forward. The bullet
// speed is the length of Forward.
type ConeBurst struct {
	cooldown
	Count   int
	Forward gamemath.Vector
	Spread  float64
}

func NewConeBurst(period float64, count int, forward gamemath.Vector, spread float64) *ConeBurst {
	return &ConeBurst{cooldown: cooldown{period: period}, Count: count, Forward: forward, Spread: spread}
}

func (c *ConeBurst) Tick(origin gamemath.Circle, _, dt float64, out []Shot) []Shot {
	if !c.ready(dt) {
		return out
	}
	speed := c.Forward.Len()
	start := c.Forward.Angle() - c.Spread/2
	step := c.Spread / float64(c.Count-1)
	for i := 0; i < c.Count; i++ {
		out = append(out, spawn(origin, gamemath.FromAngle(start+float64(i)*step), speed))
	}
	return out
}

func (c *ConeBurst) Fresh() Emitter {
	cp := *c
	cp.timer = 0
	return &cp
}

func (c *ConeBurst) Validate() error {
	if err := c.validate(); err != nil {
		return fmt.Errorf("cone burst: %w", err)
	}
	if c.Count < 2 {
		return fmt.Errorf("cone burst with %d bullets: %w", c.Count, ErrFanTooSmall)
	}
	return nil
}

func (*ConeBurst) emitter() {}

// FixedPattern replays the same precomputed shots every period. Shot positions are offsets
// from the origin center.
type FixedPattern struct {
	cooldown
	Shots []Shot
	err   error
}

func NewFixedPattern(period float64, shots []Shot) *FixedPattern {
	return &FixedPattern{cooldown: cooldown{period: period}, Shots: shots}
}

func (p *FixedPattern) Tick(origin gamemath.Circle, _, dt float64, out []Shot) []Shot {
	if !p.ready(dt) {
		return out
	}
	for _, s := range p.Shots {
		out = append(out, Shot{Position: origin.Center.Add(s.Position), Velocity: s.Velocity})
	}
	return out
}

// Fresh shares the shot list; it is never written after construction.
func (p *FixedPattern) Fresh() Emitter {
	cp := *p
	cp.timer = 0
	return &cp
}

func (p *FixedPattern) Validate() error {
	if p.err != nil {
		return fmt.Errorf("fixed pattern: %w", p.err)
	}
	if err := p.validate(); err != nil {
		return fmt.Errorf("fixed pattern: %w", err)
	}
	if len(p.Shots) == 0 {
		return fmt.Errorf("fixed pattern: %w", ErrEmptyPattern)
	}
	return nil
}

func (*FixedPattern) emitter() {}

// Combinator ticks both emitters on every call.
type Combinator struct {
	A, B Emitter
}

func NewCombinator(a, b Emitter) *Combinator {
	return &Combinator{A: a, B: b}
}

func (c *Combinator) Tick(origin gamemath.Circle, t, dt float64, out []Shot) []Shot {
	out = c.A.Tick(origin, t, dt, out)
	return c.B.Tick(origin, t, dt, out)
}

func (c *Combinator) Fresh() Emitter {
	return &Combinator{A: c.A.Fresh(), B: c.B.Fresh()}
}

func (c *Combinator) Validate() error {
	if c.A == nil || c.B == nil {
		return fmt.Errorf("combinator: %w", ErrNilPart)
	}
	if err := c.A.Validate(); err != nil {
		return err
	}
	return c.B.Validate()
}

func (*Combinator) emitter() {}
