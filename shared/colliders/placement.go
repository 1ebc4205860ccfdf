// Package colliders converts consolidated wall rectangles from grid space
// into world-space collider placements.
package colliders

import (
	"github.com/automoto/wallmerge/shared/leveldata"
	"github.com/automoto/wallmerge/shared/wallmerge"
	"github.com/yohamta/donburi/features/math"
)

type BodyKind int

const (
	Static BodyKind = iota
)

// HighFriction is the friction coefficient given to every wall collider.
const HighFriction = 1.0

// Placement is one collider request for the physics collaborator.
type Placement struct {
	Rect       wallmerge.Rect
	Center     math.Vec2
	HalfExtent math.Vec2
	Body       BodyKind
	Friction   float64
}

// Bounds returns the placement as a corner position plus size, the form
// resolv objects are created from.
func (p Placement) Bounds() (x, y, w, h float64) {
	return p.Center.X - p.HalfExtent.X,
		p.Center.Y - p.HalfExtent.Y,
		p.HalfExtent.X * 2,
		p.HalfExtent.Y * 2
}

// Place returns one placement per rect, in rect order. Grid cell (x, y)
// spans [x, x+1)·tileSize on each axis, offset by anchor.
func Place(rects []wallmerge.Rect, tileSize float64, anchor math.Vec2) []Placement {
	placements := make([]Placement, 0, len(rects))
	for _, r := range rects {
		placements = append(placements, Placement{
			Rect: r,
			Center: math.Vec2{
				X: anchor.X + tileSize*float64(r.Left+r.Right+1)/2,
				Y: anchor.Y + tileSize*float64(r.Bottom+r.Top+1)/2,
			},
			HalfExtent: math.Vec2{
				X: tileSize * float64(r.Right-r.Left+1) / 2,
				Y: tileSize * float64(r.Top-r.Bottom+1) / 2,
			},
			Body:     Static,
			Friction: HighFriction,
		})
	}
	return placements
}

// PlaceTile places a single cell, used for ramps which are never merged.
func PlaceTile(c leveldata.GridCoord, tileSize float64, anchor math.Vec2) Placement {
	return Place([]wallmerge.Rect{{Left: c.X, Right: c.X, Top: c.Y, Bottom: c.Y}}, tileSize, anchor)[0]
}
