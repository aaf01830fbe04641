package components

import (
	"github.com/yohamta/donburi"

	"github.com/automoto/gravwell/gfx"
	"github.com/automoto/gravwell/leveldata"
	"github.com/automoto/gravwell/walls"
)

// TerrainData owns the prepared wall set for the current level and the
// 1-bit frame the wall renderer draws into each frame.
type TerrainData struct {
	Level *leveldata.Level
	Set   *walls.Set
	Frame *gfx.Bitmap
}

var Terrain = donburi.NewComponentType[TerrainData]()
