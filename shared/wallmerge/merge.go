package wallmerge

import (
	"slices"

	"github.com/automoto/wallmerge/shared/leveldata"
)

// Rect is a rectangle of wall cells in grid coordinates. All bounds are
// inclusive and Bottom <= Top, Bottom being the lower row index.
type Rect struct {
	Left, Right int
	Top, Bottom int
}

func (r Rect) Width() int {
	return r.Right - r.Left + 1
}

func (r Rect) Height() int {
	return r.Top - r.Bottom + 1
}

func (r Rect) Area() int {
	return r.Width() * r.Height()
}

func (r Rect) Contains(c leveldata.GridCoord) bool {
	return c.X >= r.Left && c.X <= r.Right && c.Y >= r.Bottom && c.Y <= r.Top
}

func (r Rect) Overlaps(o Rect) bool {
	return r.Left <= o.Right && o.Left <= r.Right && r.Bottom <= o.Top && o.Bottom <= r.Top
}

// Cells returns every grid cell covered by r, row by row.
func (r Rect) Cells() []leveldata.GridCoord {
	cells := make([]leveldata.GridCoord, 0, r.Area())
	for y := r.Bottom; y <= r.Top; y++ {
		for x := r.Left; x <= r.Right; x++ {
			cells = append(cells, leveldata.GridCoord{X: x, Y: y})
		}
	}
	return cells
}

// MergePlates stacks plates of identical span in consecutive rows into
// rectangles. rows[y] must hold row y's plates ordered by Left, as
// produced by BuildRowPlates.
//
// A rectangle's span is fixed when it starts; it only grows upward and is
// emitted in the first row where its span does not recur. Rectangles come
// out ordered by the row in which they close, then by Left.
func MergePlates(rows [][]Plate) []Rect {
	building := make(map[Plate]*Rect)
	var prev []Plate
	var rects []Rect

	// One extra empty row closes rectangles touching the last row.
	for y := 0; y <= len(rows); y++ {
		var cur []Plate
		if y < len(rows) {
			cur = rows[y]
		}

		for _, p := range prev {
			if slices.Contains(cur, p) {
				continue
			}
			if r, ok := building[p]; ok {
				rects = append(rects, *r)
				delete(building, p)
			}
		}

		for _, p := range cur {
			if r, ok := building[p]; ok {
				r.Top = y
				continue
			}
			building[p] = &Rect{Left: p.Left, Right: p.Right, Top: y, Bottom: y}
		}

		prev = cur
	}

	return rects
}

// Consolidate runs both passes over a width×height grid.
func Consolidate(width, height int, occupied leveldata.OccupiedSet) []Rect {
	return MergePlates(BuildRowPlates(width, height, occupied))
}

// ConsolidateLayer consolidates one level's wall layer.
func ConsolidateLayer(layer leveldata.WallLayer) []Rect {
	return Consolidate(layer.Width, layer.Height, layer.Occupied)
}

// Stats summarises one consolidation.
type Stats struct {
	Tiles int
	Rects int
}

func NewStats(occupied leveldata.OccupiedSet, rects []Rect) Stats {
	return Stats{Tiles: occupied.Len(), Rects: len(rects)}
}

// Reduction returns tiles per rectangle, or 0 when nothing was emitted.
func (s Stats) Reduction() float64 {
	if s.Rects == 0 {
		return 0
	}
	return float64(s.Tiles) / float64(s.Rects)
}
