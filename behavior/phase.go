package behavior

import (
	"fmt"
	"math"

	"github.com/automoto/bullethell/shared/gamemath"
)

// Forever is the duration of a phase that never ends.
var Forever = math.Inf(1)

// NoJump marks a phase that hands over to the next phase in order.
const NoJump = -1

// Phase pairs a movement with a firing pattern for Duration seconds.
type Phase struct {
	Duration   float64
	Trajectory Trajectory
	Emitter    Emitter
	// Next is the phase index to continue with, or NoJump.
	Next int
}

// NewPhase returns a phase that continues with the following phase, wrapping at the end.
func NewPhase(duration float64, trajectory Trajectory, emitter Emitter) Phase {
	return Phase{Duration: duration, Trajectory: trajectory, Emitter: emitter, Next: NoJump}
}

// JumpPhase returns a phase that continues with phase next.
func JumpPhase(duration float64, trajectory Trajectory, emitter Emitter, next int) Phase {
	return Phase{Duration: duration, Trajectory: trajectory, Emitter: emitter, Next: next}
}

// ValidatePhases checks a phase list before it is used as an enemy template.
func ValidatePhases(phases []Phase) error {
	if len(phases) == 0 {
		return ErrNoPhases
	}
	for i, p := range phases {
		if !(p.Duration > 0) {
			return fmt.Errorf("phase %d: %w", i, ErrBadDuration)
		}
		if p.Trajectory == nil || p.Emitter == nil {
			return fmt.Errorf("phase %d: %w", i, ErrNilPart)
		}
		if p.Next != NoJump && (p.Next < 0 || p.Next >= len(phases)) {
			return fmt.Errorf("phase %d -> %d of %d: %w", i, p.Next, len(phases), ErrBadJump)
		}
		if err := p.Trajectory.Validate(); err != nil {
			return fmt.Errorf("phase %d: %w", i, err)
		}
		if err := p.Emitter.Validate(); err != nil {
			return fmt.Errorf("phase %d: %w", i, err)
		}
	}
	return nil
}

// Machine runs one enemy through its phase graph.
type Machine struct {
	phases  []Phase
	index   int
	elapsed float64
}

// NewMachine copies the template phases with fresh emitters. phases must have passed
// ValidatePhases.
func NewMachine(phases []Phase) *Machine {
	own := make([]Phase, len(phases))
	for i, p := range phases {
		p.Emitter = p.Emitter.Fresh()
		own[i] = p
	}
	return &Machine{phases: own}
}

// Step advances the phase clock by dt, taking at most one transition.
func (m *Machine) Step(dt float64) {
	m.elapsed += dt
	cur := m.phases[m.index]
	if m.elapsed > cur.Duration {
		m.elapsed -= cur.Duration
		if cur.Next != NoJump {
			m.index = cur.Next
		} else {
			m.index = (m.index + 1) % len(m.phases)
		}
	}
}

// Location is the current phase's trajectory evaluated at the phase clock.
func (m *Machine) Location() gamemath.Vector {
	return m.phases[m.index].Trajectory.Location(m.elapsed)
}

// Emit ticks the current phase's emitter from origin.
func (m *Machine) Emit(origin gamemath.Circle, dt float64, out []Shot) []Shot {
	return m.phases[m.index].Emitter.Tick(origin, m.elapsed, dt, out)
}

func (m *Machine) Index() int       { return m.index }
func (m *Machine) Elapsed() float64 { return m.elapsed }
func (m *Machine) Phases() int      { return len(m.phases) }
