// Package assets embeds the bundled sample levels.
package assets

import (
	"embed"
	"io/fs"
)

//go:embed all:levels
var levelFS embed.FS

// LevelFS returns the embedded assets root; levels live under "levels".
func LevelFS() fs.FS {
	return levelFS
}
