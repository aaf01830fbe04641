package assets

import (
	"embed"

	"github.com/automoto/gravwell/leveldata"
)

//go:embed all:levels
var assetFS embed.FS

// Levels loads every embedded TMX level, sorted by name.
func Levels() ([]*leveldata.Level, error) {
	return leveldata.LoadAll(assetFS, "levels")
}
