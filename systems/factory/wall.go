package factory

import (
	"github.com/automoto/wallmerge/archetypes"
	"github.com/automoto/wallmerge/components"
	"github.com/automoto/wallmerge/shared/colliders"
	"github.com/automoto/wallmerge/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateWallCollider spawns one static solid collider owned by level.
func CreateWallCollider(ecs *ecs.ECS, level *donburi.Entry, p colliders.Placement) *donburi.Entry {
	wall := archetypes.Wall.Spawn(ecs)
	x, y, w, h := p.Bounds()

	obj := resolv.NewObject(x, y, w, h, tags.ResolvSolid)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = wall // Link for O(1) lookup

	components.Object.SetValue(wall, components.ObjectData{Object: obj})
	components.WallCollider.SetValue(wall, components.WallColliderData{
		Level:     level.Entity(),
		Placement: p,
	})

	addToSpace(ecs, obj)
	return wall
}

// CreateRamp creates a slope tile for ramp collision
// Uses rectangular bounds for detection, surface height is calculated mathematically
func CreateRamp(ecs *ecs.ECS, level *donburi.Entry, p colliders.Placement, slopeType string) *donburi.Entry {
	ramp := archetypes.Ramp.Spawn(ecs)
	x, y, w, h := p.Bounds()

	obj := resolv.NewObject(x, y, w, h, tags.ResolvRamp, slopeType)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = ramp

	components.Object.SetValue(ramp, components.ObjectData{Object: obj})
	components.WallCollider.SetValue(ramp, components.WallColliderData{
		Level:     level.Entity(),
		Placement: p,
		SlopeType: slopeType,
	})

	addToSpace(ecs, obj)
	return ramp
}

// Add to space if it exists
func addToSpace(ecs *ecs.ECS, obj *resolv.Object) {
	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}
}
