package systems

import (
	"github.com/automoto/wallmerge/components"
	"github.com/automoto/wallmerge/shared/colliders"
	"github.com/automoto/wallmerge/shared/leveldata"
	"github.com/automoto/wallmerge/shared/logger"
	"github.com/automoto/wallmerge/shared/wallmerge"
	"github.com/automoto/wallmerge/systems/factory"
	"github.com/sirupsen/logrus"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateWallColliders builds colliders for every level whose wall layer
// has appeared since the last update. Levels already built are skipped, so
// consolidation runs once per level load, not once per frame.
func UpdateWallColliders(ecs *ecs.ECS) {
	// Collect first: spawning colliders while iterating levels would
	// mutate the world mid-query.
	var pending []*donburi.Entry
	components.Level.Each(ecs.World, func(e *donburi.Entry) {
		level := components.Level.Get(e)
		if !level.WallsBuilt && level.Collision != nil {
			pending = append(pending, e)
		}
	})

	for _, e := range pending {
		BuildLevelWalls(ecs, e)
	}
}

// BuildLevelWalls consolidates a level's walls and spawns one collider per
// rectangle plus one per ramp tile, all owned by the level.
func BuildLevelWalls(ecs *ecs.ECS, levelEntry *donburi.Entry) wallmerge.Stats {
	level := components.Level.Get(levelEntry)
	data := level.Collision
	if data == nil {
		return wallmerge.Stats{}
	}
	anchor := level.Anchor

	rects := wallmerge.ConsolidateLayer(data.Walls)
	for _, p := range colliders.Place(rects, data.TileSize, anchor) {
		factory.CreateWallCollider(ecs, levelEntry, p)
	}
	for _, ramp := range data.Ramps {
		p := colliders.PlaceTile(ramp.Coord, data.TileSize, anchor)
		factory.CreateRamp(ecs, levelEntry, p, ramp.SlopeType)
	}

	stats := wallmerge.NewStats(data.Walls.Occupied, rects)
	level = components.Level.Get(levelEntry)
	level.Stats = stats
	level.WallsBuilt = true

	logger.Log.WithFields(logrus.Fields{
		"level": level.Name,
		"tiles": stats.Tiles,
		"rects": stats.Rects,
		"ramps": len(data.Ramps),
	}).Info("wall colliders built")

	return stats
}

// RebuildLevelWalls discards a level's colliders and schedules a full
// rebuild from data on the next update. A nil data keeps the current
// collision data.
func RebuildLevelWalls(ecs *ecs.ECS, levelEntry *donburi.Entry, data *leveldata.CollisionData) {
	removeLevelColliders(ecs, levelEntry.Entity())

	level := components.Level.Get(levelEntry)
	if data != nil {
		level.Collision = data
	}
	level.WallsBuilt = false
	level.Stats = wallmerge.Stats{}
}

// UnloadLevel destroys a level and every collider it owns.
func UnloadLevel(ecs *ecs.ECS, levelEntry *donburi.Entry) {
	entity := levelEntry.Entity()
	n := removeLevelColliders(ecs, entity)
	name := components.Level.Get(levelEntry).Name
	ecs.World.Remove(entity)

	logger.Log.WithFields(logrus.Fields{
		"level":     name,
		"colliders": n,
	}).Debug("level unloaded")
}

// LevelColliders returns the wall and ramp colliders owned by level.
func LevelColliders(ecs *ecs.ECS, level donburi.Entity) []*donburi.Entry {
	var owned []*donburi.Entry
	components.WallCollider.Each(ecs.World, func(e *donburi.Entry) {
		if components.WallCollider.Get(e).Level == level {
			owned = append(owned, e)
		}
	})
	return owned
}

func removeLevelColliders(ecs *ecs.ECS, level donburi.Entity) int {
	owned := LevelColliders(ecs, level)
	spaceEntry, hasSpace := components.Space.First(ecs.World)

	for _, e := range owned {
		if hasSpace {
			components.Space.Get(spaceEntry).Remove(components.Object.Get(e).Object)
		}
		ecs.World.Remove(e.Entity())
	}
	return len(owned)
}
