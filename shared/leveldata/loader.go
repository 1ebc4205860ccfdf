package leveldata

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/automoto/wallmerge/config"
	"github.com/automoto/wallmerge/shared/logger"
	"github.com/lafriks/go-tiled"
	"github.com/sirupsen/logrus"
)

// ErrNoLevels is returned by LoadAllLevels when the directory holds no .tmx files.
var ErrNoLevels = errors.New("no .tmx levels found")

// LoadCollisionData parses a TMX file and returns its wall layer, ramps,
// spawn points and anchor. It takes an fs.FS so callers can pass embed.FS
// or os.DirFS. Only I/O and TMX syntax errors are returned; a level with a
// missing or malformed wall layer loads with no walls.
func LoadCollisionData(fsys fs.FS, tmxPath string) (*CollisionData, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	levelID := strings.TrimSuffix(filepath.Base(tmxPath), ".tmx")
	data := &CollisionData{
		Walls: WallLayer{
			LevelID:  levelID,
			Width:    levelMap.Width,
			Height:   levelMap.Height,
			Occupied: make(OccupiedSet),
		},
		TileSize: float64(levelMap.TileWidth),
	}
	if data.TileSize <= 0 {
		data.TileSize = config.Collision.DefaultTileSize
	}

	classifyWallLayer(levelMap, data)

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case config.Collision.AnchorGroupName:
			if len(og.Objects) > 0 {
				data.AnchorX = og.Objects[0].X
				data.AnchorY = og.Objects[0].Y
			}
		case "PlayerSpawn":
			for _, o := range og.Objects {
				data.SpawnPoints = append(data.SpawnPoints, SpawnPoint{
					X:     o.X,
					Y:     o.Y,
					Index: o.Properties.GetInt("spawnIndex"),
				})
			}
		}
	}

	// Sort spawns left-to-right for consistent assignment
	sort.Slice(data.SpawnPoints, func(i, j int) bool {
		return data.SpawnPoints[i].X < data.SpawnPoints[j].X
	})

	return data, nil
}

// classifyWallLayer fills data.Walls.Occupied and data.Ramps from the wall
// tile layer. Slope tiles become ramps instead of walls.
func classifyWallLayer(levelMap *tiled.Map, data *CollisionData) {
	log := logger.Log.WithField("level", data.Walls.LevelID)

	var layer *tiled.Layer
	for _, l := range levelMap.Layers {
		if l.Name == config.Collision.WallLayerName {
			layer = l
			break
		}
	}
	if layer == nil {
		log.Warnf("no %q layer, level has no walls", config.Collision.WallLayerName)
		return
	}

	width, height := levelMap.Width, levelMap.Height
	if width <= 0 || height <= 0 || len(layer.Tiles) != width*height {
		log.WithFields(logrus.Fields{
			"width":  width,
			"height": height,
			"tiles":  len(layer.Tiles),
		}).Warn("wall layer size does not match map size, level has no walls")
		return
	}

	slopes := make(map[GridCoord]string)
	data.Walls.Occupied = Classify(width, height, func(x, y int) bool {
		tile := layer.Tiles[y*width+x]
		if tile.IsNil() {
			return false
		}
		if slope := slopeType(tile); slope != "" {
			slopes[GridCoord{X: x, Y: y}] = slope
			return false
		}
		return true
	})

	for c, slope := range slopes {
		data.Ramps = append(data.Ramps, RampTile{Coord: c, SlopeType: slope})
	}
	sort.Slice(data.Ramps, func(i, j int) bool {
		a, b := data.Ramps[i].Coord, data.Ramps[j].Coord
		if a.Y != b.Y {
			return a.Y < b.Y
		}
		return a.X < b.X
	})
}

func slopeType(tile *tiled.LayerTile) string {
	if tile.Tileset == nil {
		return ""
	}
	tilesetTile, err := tile.Tileset.GetTilesetTile(tile.ID)
	if err != nil {
		return ""
	}
	return tilesetTile.Properties.GetString(config.Collision.SlopeProperty)
}

// LoadAllLevels discovers all .tmx files in levelsDir within fsys, loads collision
// data for each, and returns a map keyed by stem name plus a sorted list of names.
func LoadAllLevels(fsys fs.FS, levelsDir string) (map[string]*CollisionData, []string, error) {
	pattern := levelsDir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("%s: %w", levelsDir, ErrNoLevels)
	}

	levels := make(map[string]*CollisionData, len(matches))
	names := make([]string, 0, len(matches))

	for _, path := range matches {
		data, err := LoadCollisionData(fsys, path)
		if err != nil {
			return nil, nil, fmt.Errorf("load %s: %w", path, err)
		}
		levels[data.Walls.LevelID] = data
		names = append(names, data.Walls.LevelID)
	}

	sort.Strings(names)
	return levels, names, nil
}
