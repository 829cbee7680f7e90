package components

import (
	cfg "github.com/automoto/bullethell/config"
	"github.com/yohamta/donburi"
)

// AudioData queues sound triggers raised during a tick (singleton component)
type AudioData struct {
	PendingSFX []cfg.SoundID
}

var Audio = donburi.NewComponentType[AudioData]()
