// Package leveldata provides TMX level parsing for wall collision.
// It has no dependencies on resolv or the ECS packages, pure data only.
package leveldata

// GridCoord is a tile position in a level's grid, in tile units.
type GridCoord struct {
	X, Y int
}

// OccupiedSet is the set of wall cells of one level.
type OccupiedSet map[GridCoord]struct{}

// NewOccupiedSet returns a set holding the given coordinates.
func NewOccupiedSet(coords ...GridCoord) OccupiedSet {
	s := make(OccupiedSet, len(coords))
	for _, c := range coords {
		s.Add(c)
	}
	return s
}

func (s OccupiedSet) Add(c GridCoord) {
	s[c] = struct{}{}
}

// Contains reports whether c is a wall cell. Safe on a nil set.
func (s OccupiedSet) Contains(c GridCoord) bool {
	_, ok := s[c]
	return ok
}

func (s OccupiedSet) Len() int {
	return len(s)
}

// WallLayer is the resolved input of wall consolidation for one level:
// the grid dimensions plus the wall cells inside them.
type WallLayer struct {
	LevelID  string
	Width    int // tiles
	Height   int // tiles
	Occupied OccupiedSet
}

// RampTile is a slope tile. Ramps never take part in wall consolidation.
type RampTile struct {
	Coord     GridCoord
	SlopeType string // "45_up_right", "45_up_left"
}

// CollisionData holds all collision-relevant data parsed from a TMX level file.
type CollisionData struct {
	Walls       WallLayer
	Ramps       []RampTile
	SpawnPoints []SpawnPoint
	TileSize    float64
	AnchorX     float64
	AnchorY     float64
}

// MapWidth returns the level width in pixels.
func (d *CollisionData) MapWidth() int {
	return int(float64(d.Walls.Width) * d.TileSize)
}

// MapHeight returns the level height in pixels.
func (d *CollisionData) MapHeight() int {
	return int(float64(d.Walls.Height) * d.TileSize)
}

// SpawnPoint represents a player spawn location.
type SpawnPoint struct {
	X, Y  float64
	Index int
}
