// Package core builds headless collision worlds for levels, one
// resolv.Space per level, from consolidated wall colliders.
package core

import (
	"fmt"
	"io/fs"
	"path"
	"runtime"
	"sort"

	"github.com/automoto/wallmerge/config"
	"github.com/automoto/wallmerge/shared/colliders"
	"github.com/automoto/wallmerge/shared/leveldata"
	"github.com/automoto/wallmerge/shared/logger"
	"github.com/automoto/wallmerge/shared/wallmerge"
	"github.com/automoto/wallmerge/tags"
	"github.com/sirupsen/logrus"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi/features/math"
	"golang.org/x/sync/errgroup"
)

// ServerLevel holds the server's collision space and spawn data for a level.
type ServerLevel struct {
	Name        string
	Space       *resolv.Space
	Walls       []colliders.Placement
	Ramps       []colliders.Placement
	SpawnPoints []leveldata.SpawnPoint
	MapWidth    int
	MapHeight   int
	Stats       wallmerge.Stats
}

// NewServerLevel consolidates a level's walls and builds a resolv.Space
// holding one solid object per rectangle and one ramp object per slope tile.
// Each server level owns its space, so the level sits at the origin.
func NewServerLevel(data *leveldata.CollisionData) *ServerLevel {
	mapWidth, mapHeight := data.MapWidth(), data.MapHeight()
	space := resolv.NewSpace(mapWidth, mapHeight, config.Collision.SpaceCellSize, config.Collision.SpaceCellSize)

	rects := wallmerge.ConsolidateLayer(data.Walls)
	walls := colliders.Place(rects, data.TileSize, math.Vec2{})
	for _, p := range walls {
		x, y, w, h := p.Bounds()
		obj := resolv.NewObject(x, y, w, h, tags.ResolvSolid)
		obj.SetShape(resolv.NewRectangle(0, 0, w, h))
		space.Add(obj)
	}

	ramps := make([]colliders.Placement, 0, len(data.Ramps))
	for _, r := range data.Ramps {
		p := colliders.PlaceTile(r.Coord, data.TileSize, math.Vec2{})
		x, y, w, h := p.Bounds()
		obj := resolv.NewObject(x, y, w, h, tags.ResolvRamp, r.SlopeType)
		obj.SetShape(resolv.NewRectangle(0, 0, w, h))
		space.Add(obj)
		ramps = append(ramps, p)
	}

	stats := wallmerge.NewStats(data.Walls.Occupied, rects)
	logger.Log.WithFields(logrus.Fields{
		"level":  data.Walls.LevelID,
		"tiles":  stats.Tiles,
		"rects":  stats.Rects,
		"ramps":  len(ramps),
		"spawns": len(data.SpawnPoints),
	}).Info("loaded level")

	return &ServerLevel{
		Name:        data.Walls.LevelID,
		Space:       space,
		Walls:       walls,
		Ramps:       ramps,
		SpawnPoints: data.SpawnPoints,
		MapWidth:    mapWidth,
		MapHeight:   mapHeight,
		Stats:       stats,
	}
}

// LoadAllServerLevels loads and consolidates every .tmx level under
// levelsDir in fsys, one goroutine per level. It returns levels keyed by
// stem name plus the sorted name list.
func LoadAllServerLevels(fsys fs.FS, levelsDir string) (map[string]*ServerLevel, []string, error) {
	pattern := path.Join(levelsDir, "*.tmx")
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("%s: %w", levelsDir, leveldata.ErrNoLevels)
	}

	built := make([]*ServerLevel, len(matches))
	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, p := range matches {
		g.Go(func() error {
			data, err := leveldata.LoadCollisionData(fsys, p)
			if err != nil {
				return fmt.Errorf("load %s: %w", p, err)
			}
			built[i] = NewServerLevel(data)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	levels := make(map[string]*ServerLevel, len(built))
	names := make([]string, 0, len(built))
	for _, l := range built {
		levels[l.Name] = l
		names = append(names, l.Name)
	}
	sort.Strings(names)

	return levels, names, nil
}
