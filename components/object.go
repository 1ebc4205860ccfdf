package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

type ObjectData struct {
	*resolv.Object
}

var Object = donburi.NewComponentType[ObjectData]()

// Space is the shared physics world every level's colliders are added to.
var Space = donburi.NewComponentType[resolv.Space]()
