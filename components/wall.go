package components

import (
	"github.com/automoto/wallmerge/shared/colliders"
	"github.com/yohamta/donburi"
)

// WallColliderData links a wall or ramp collider to the level that owns it.
// Unloading the level destroys every collider pointing at it.
type WallColliderData struct {
	Level     donburi.Entity
	Placement colliders.Placement
	SlopeType string // Empty for walls
}

var WallCollider = donburi.NewComponentType[WallColliderData]()
