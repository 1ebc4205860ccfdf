package main

import (
	"flag"
	"fmt"
	"io/fs"
	"os"
	"text/tabwriter"

	"github.com/automoto/wallmerge/assets"
	"github.com/automoto/wallmerge/config"
	"github.com/automoto/wallmerge/server/core"
	"github.com/automoto/wallmerge/shared/logger"
)

func main() {
	assetsDir := flag.String("assets", "", "Assets directory containing the levels folder (empty = bundled sample levels)")
	layer := flag.String("layer", config.Collision.WallLayerName, "Name of the wall tile layer")
	verbose := flag.Bool("v", false, "Print every collider rectangle")
	flag.Parse()

	logger.Init()
	config.Collision.WallLayerName = *layer

	var fsys fs.FS = assets.LevelFS()
	if *assetsDir != "" {
		fsys = os.DirFS(*assetsDir)
	}

	levels, names, err := core.LoadAllServerLevels(fsys, config.Collision.LevelsDir)
	if err != nil {
		logger.Log.Fatalf("Failed to load levels: %v", err)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "LEVEL\tTILES\tRECTS\tRAMPS\tTILES/RECT")
	for _, name := range names {
		l := levels[name]
		fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%.1f\n", name, l.Stats.Tiles, l.Stats.Rects, len(l.Ramps), l.Stats.Reduction())
		if !*verbose {
			continue
		}
		for _, p := range l.Walls {
			r := p.Rect
			fmt.Fprintf(w, "\tx %d..%d\ty %d..%d\tcenter (%.1f, %.1f)\thalf (%.1f, %.1f)\n",
				r.Left, r.Right, r.Bottom, r.Top, p.Center.X, p.Center.Y, p.HalfExtent.X, p.HalfExtent.Y)
		}
	}
	w.Flush()
}
