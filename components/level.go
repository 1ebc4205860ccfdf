package components

import (
	"github.com/automoto/wallmerge/shared/leveldata"
	"github.com/automoto/wallmerge/shared/wallmerge"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type LevelData struct {
	Name      string
	Collision *leveldata.CollisionData
	Anchor    math.Vec2 // World position of grid cell (0, 0)

	// WallsBuilt is set once colliders exist for the current Collision data.
	// Clearing it makes the wall system rebuild them from scratch.
	WallsBuilt bool
	Stats      wallmerge.Stats
}

var Level = donburi.NewComponentType[LevelData]()
