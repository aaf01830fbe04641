// Package leveldata parses TMX level files into wall specs and level
// metadata. It depends only on the TMX parser and the walls geometry types,
// so tests and tools can load levels without pulling in the engine.
package leveldata

import "github.com/automoto/gravwell/walls"

// Level is everything a loaded TMX map contributes to the game.
type Level struct {
	Name        string
	Walls       []walls.Spec
	WorldWidth  int
	WorldHeight int
	SpawnX      int
	SpawnY      int
	Backgr1     uint16
	Backgr2     uint16
}
