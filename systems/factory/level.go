package factory

import (
	"github.com/automoto/wallmerge/archetypes"
	"github.com/automoto/wallmerge/components"
	"github.com/automoto/wallmerge/shared/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// CreateLevel registers a level anchored where its map says. Its wall
// colliders are built on the next wall system update.
func CreateLevel(ecs *ecs.ECS, data *leveldata.CollisionData) *donburi.Entry {
	return CreateLevelAt(ecs, data, math.Vec2{X: data.AnchorX, Y: data.AnchorY})
}

// CreateLevelAt registers a level at an explicit world anchor, for levels
// streamed in next to one another.
func CreateLevelAt(ecs *ecs.ECS, data *leveldata.CollisionData, anchor math.Vec2) *donburi.Entry {
	level := archetypes.Level.Spawn(ecs)

	components.Level.Set(level, &components.LevelData{
		Name:      data.Walls.LevelID,
		Collision: data,
		Anchor:    anchor,
	})

	return level
}
