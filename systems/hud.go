package systems

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/gravwell/components"
	"github.com/automoto/gravwell/tags"
)

// DrawHUD prints the level name and ship speed on the status bar.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	terrainEntry, ok := components.Terrain.First(e.World)
	if !ok {
		return
	}
	lvl := components.Terrain.Get(terrainEntry).Level

	ebitenutil.DebugPrintAt(screen, lvl.Name, 8, 4)

	if shipEntry, ok := tags.Ship.First(e.World); ok {
		ship := components.Ship.Get(shipEntry)
		obj := components.Object.Get(shipEntry)
		msg := fmt.Sprintf("x %4d  y %4d  vx %+5.1f  vy %+5.1f",
			int(obj.X), int(obj.Y), ship.SpeedX, ship.SpeedY)
		ebitenutil.DebugPrintAt(screen, msg, 160, 4)
	}
}
