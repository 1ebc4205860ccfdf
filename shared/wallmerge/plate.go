// Package wallmerge consolidates a level's wall cells into a small set of
// non-overlapping rectangles.
//
// Consolidation runs in two passes. Each row is first split into plates,
// the maximal horizontal runs of wall cells. Plates with the exact same
// column span in consecutive rows are then stacked into one rectangle.
// Plates whose spans merely overlap are never combined, so the result is
// not a minimal cover, but it is deterministic for a given grid.
package wallmerge

import "github.com/automoto/wallmerge/shared/leveldata"

// Plate is a maximal run of wall cells within one row, with inclusive
// column bounds.
type Plate struct {
	Left, Right int
}

func (p Plate) Width() int {
	return p.Right - p.Left + 1
}

// BuildRowPlates returns, for each row y in [0,height), the plates of that
// row ordered by ascending Left. Rows without walls get an empty slice.
func BuildRowPlates(width, height int, occupied leveldata.OccupiedSet) [][]Plate {
	rows := make([][]Plate, max(height, 0))
	for y := range rows {
		row := []Plate{}
		start, open := 0, false

		// Column width is always empty so plates touching the right edge close.
		for x := 0; x <= width; x++ {
			wall := x < width && occupied.Contains(leveldata.GridCoord{X: x, Y: y})
			switch {
			case open && !wall:
				row = append(row, Plate{Left: start, Right: x - 1})
				open = false
			case !open && wall:
				start, open = x, true
			}
		}
		rows[y] = row
	}
	return rows
}
