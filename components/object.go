package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData is the broadphase box of a circle entity. Data points back at the entry.
type ObjectData struct {
	*resolv.Object
}

var Object = donburi.NewComponentType[ObjectData]()

// Space is the broadphase grid covering the arena (singleton component)
var Space = donburi.NewComponentType[resolv.Space]()
