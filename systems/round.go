package systems

import (
	"github.com/automoto/bullethell/archetypes"
	"github.com/automoto/bullethell/components"
	"github.com/yohamta/donburi"
)

// GetOrCreateRound returns the round singleton, creating it on first use.
func GetOrCreateRound(w donburi.World) *components.RoundData {
	if entry, ok := components.Round.First(w); ok {
		return components.Round.Get(entry)
	}
	entry := archetypes.Round.Spawn(w)
	return components.Round.Get(entry)
}

// BeginRound stamps the tick delta and clears the previous outcome.
func BeginRound(w donburi.World, dt float64) {
	round := GetOrCreateRound(w)
	round.Delta = dt
	round.Elapsed += dt
	round.Outcome = components.Continue
}

// Outcome reports the result recorded so far in the current tick.
func Outcome(w donburi.World) components.Outcome {
	entry, ok := components.Round.First(w)
	if !ok {
		return components.Continue
	}
	return components.Round.Get(entry).Outcome
}

func finishRound(w donburi.World, outcome components.Outcome) {
	GetOrCreateRound(w).Outcome = outcome
}
