package config

// CollisionConfig contains wall collider consolidation settings
type CollisionConfig struct {
	// Level source
	LevelsDir       string // Directory holding .tmx files, relative to the assets root
	WallLayerName   string // Tile layer whose tiles are walls
	AnchorGroupName string // Object group whose first object anchors the level in world space
	SlopeProperty   string // Tileset tile property marking a slope tile

	// Geometry
	DefaultTileSize float64 // Used when a map declares no tile width
	SpaceCellSize   int     // resolv.Space cell size in pixels
}

var Collision CollisionConfig

func init() {
	Collision = CollisionConfig{
		LevelsDir:       "levels",
		WallLayerName:   "wg-tiles",
		AnchorGroupName: "LevelAnchor",
		SlopeProperty:   "slope",

		DefaultTileSize: 16,
		SpaceCellSize:   16,
	}
}
