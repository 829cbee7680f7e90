package components

import "github.com/yohamta/donburi"

// Outcome is the result of one simulation tick.
type Outcome int

const (
	Continue Outcome = iota
	Win
	Lose
)

func (o Outcome) String() string {
	switch o {
	case Continue:
		return "continue"
	case Win:
		return "win"
	case Lose:
		return "lose"
	}
	return "unknown"
}

// RoundData is the per-tick clock and result shared by the systems (singleton component)
type RoundData struct {
	Delta   float64 // Seconds covered by the current tick
	Elapsed float64
	Outcome Outcome
	NextSeq uint64 // Sequence number for the next bullet
}

var Round = donburi.NewComponentType[RoundData]()
