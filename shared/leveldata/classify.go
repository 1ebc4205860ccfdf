package leveldata

// Classify returns the coordinates in [0,width)×[0,height) for which isWall
// is true. A zero-area grid yields an empty set.
func Classify(width, height int, isWall func(x, y int) bool) OccupiedSet {
	set := make(OccupiedSet)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if isWall(x, y) {
				set.Add(GridCoord{X: x, Y: y})
			}
		}
	}
	return set
}

// ParseGrid classifies an ASCII grid where '#' marks a wall. Row 0 is the
// first line. Width is the longest line; short lines are padded with empty
// cells.
func ParseGrid(lines ...string) WallLayer {
	width := 0
	for _, l := range lines {
		width = max(width, len(l))
	}
	occupied := Classify(width, len(lines), func(x, y int) bool {
		return x < len(lines[y]) && lines[y][x] == '#'
	})
	return WallLayer{Width: width, Height: len(lines), Occupied: occupied}
}
