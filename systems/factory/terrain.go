package factory

import (
	"fmt"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/gravwell/archetypes"
	"github.com/automoto/gravwell/components"
	cfg "github.com/automoto/gravwell/config"
	"github.com/automoto/gravwell/gfx"
	"github.com/automoto/gravwell/leveldata"
	"github.com/automoto/gravwell/walls"
)

// CreateTerrain runs the once-per-level wall preparation for lvl and spawns
// the terrain entity holding the prepared set and the 1-bit frame.
func CreateTerrain(ecs *ecs.ECS, lvl *leveldata.Level) (*donburi.Entry, error) {
	set, err := walls.Prepare(lvl.Walls, walls.Config{
		MaxWalls:        cfg.World.MaxWalls,
		WorldWidth:      lvl.WorldWidth,
		ScreenWidth:     cfg.Screen.Width,
		ViewHeight:      cfg.Screen.ViewHeight,
		StatusBarHeight: cfg.Screen.StatusBarHeight,
		Backgr1:         lvl.Backgr1,
		Backgr2:         lvl.Backgr2,
	})
	if err != nil {
		return nil, fmt.Errorf("prepare level %s: %w", lvl.Name, err)
	}

	terrain := archetypes.Terrain.Spawn(ecs)
	components.Terrain.Set(terrain, &components.TerrainData{
		Level: lvl,
		Set:   set,
		Frame: gfx.NewBitmap(cfg.Screen.Width, cfg.Screen.ViewHeight+cfg.Screen.StatusBarHeight),
	})
	return terrain, nil
}
