package core

import (
	"errors"
	"testing"
	"testing/fstest"

	"github.com/automoto/wallmerge/shared/leveldata"
	"github.com/automoto/wallmerge/tags"
	"github.com/solarlune/resolv"
)

const floorTMX = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="4" height="3" tilewidth="16" tileheight="16" infinite="0" nextlayerid="2" nextobjectid="2">
 <tileset firstgid="1" name="walls" tilewidth="16" tileheight="16" tilecount="2" columns="2">
  <image source="walls.png" width="32" height="16"/>
  <tile id="1">
   <properties>
    <property name="slope" value="45_up_left"/>
   </properties>
  </tile>
 </tileset>
 <layer id="1" name="wg-tiles" width="4" height="3">
  <data encoding="csv">
0,0,0,0,
0,0,0,2,
1,1,1,1
</data>
 </layer>
</map>
`

func TestNewServerLevel(t *testing.T) {
	walls := leveldata.ParseGrid(
		"....",
		"#..#",
		"####",
	)
	walls.LevelID = "pit"
	data := &leveldata.CollisionData{Walls: walls, TileSize: 16}

	level := NewServerLevel(data)

	if level.Name != "pit" || level.MapWidth != 64 || level.MapHeight != 48 {
		t.Errorf("got %q %dx%d, want pit 64x48", level.Name, level.MapWidth, level.MapHeight)
	}
	// Row 1 spans differ from row 2, so three rectangles.
	if len(level.Walls) != 3 {
		t.Errorf("got %d wall placements, want 3", len(level.Walls))
	}
	if got := len(level.Space.Objects()); got != 3 {
		t.Errorf("got %d space objects, want 3", got)
	}
	if level.Stats.Tiles != 6 || level.Stats.Rects != 3 {
		t.Errorf("Stats = %+v, want 6 tiles 3 rects", level.Stats)
	}
}

func TestServerLevelFloorCollision(t *testing.T) {
	walls := leveldata.ParseGrid(
		"....",
		"....",
		"####",
	)
	level := NewServerLevel(&leveldata.CollisionData{Walls: walls, TileSize: 16})

	probe := resolv.NewObject(8, 16, 8, 16)
	level.Space.Add(probe)

	if check := probe.Check(0, 4, tags.ResolvSolid); check == nil {
		t.Error("probe moving down did not hit the merged floor")
	}
	if check := probe.Check(0, -4, tags.ResolvSolid); check != nil {
		t.Error("probe moving up hit something")
	}
}

func TestLoadAllServerLevels(t *testing.T) {
	fsys := fstest.MapFS{
		"levels/floor.tmx":  {Data: []byte(floorTMX)},
		"levels/floor2.tmx": {Data: []byte(floorTMX)},
	}

	levels, names, err := LoadAllServerLevels(fsys, "levels")
	if err != nil {
		t.Fatalf("LoadAllServerLevels: %v", err)
	}
	if len(names) != 2 || names[0] != "floor" || names[1] != "floor2" {
		t.Fatalf("names = %v, want [floor floor2]", names)
	}

	for _, name := range names {
		level := levels[name]
		if len(level.Walls) != 1 || len(level.Ramps) != 1 {
			t.Errorf("%s: got %d walls %d ramps, want 1 and 1", name, len(level.Walls), len(level.Ramps))
		}
		ramps := 0
		for _, obj := range level.Space.Objects() {
			if obj.HasTags(tags.ResolvRamp, tags.Slope45UpLeft) {
				ramps++
			}
		}
		if ramps != 1 {
			t.Errorf("%s: got %d ramp objects, want 1", name, ramps)
		}
	}
}

func TestLoadAllServerLevelsErrors(t *testing.T) {
	_, _, err := LoadAllServerLevels(fstest.MapFS{}, "levels")
	if !errors.Is(err, leveldata.ErrNoLevels) {
		t.Errorf("err = %v, want ErrNoLevels", err)
	}

	broken := fstest.MapFS{"levels/broken.tmx": {Data: []byte("<map")}}
	if _, _, err := LoadAllServerLevels(broken, "levels"); err == nil {
		t.Error("expected error for unparseable level")
	}
}
