package systems

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/gravwell/components"
	cfg "github.com/automoto/gravwell/config"
	"github.com/automoto/gravwell/tags"
)

var shipColor = color.RGBA{0, 0, 0, 255}

// DrawShip strokes the ship as a three-line dart over the terrain. The
// terrain pass has already painted the background, so the ship is plain
// screen-space vector work.
func DrawShip(e *ecs.ECS, screen *ebiten.Image) {
	shipEntry, ok := tags.Ship.First(e.World)
	if !ok {
		return
	}
	ship := components.Ship.Get(shipEntry)
	obj := components.Object.Get(shipEntry)

	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	terrainEntry, ok := components.Terrain.First(e.World)
	if !ok {
		return
	}
	ww := float64(components.Terrain.Get(terrainEntry).Level.WorldWidth)

	// Screen position, taking the short way around the wrap seam.
	dx := obj.X + obj.W/2 - camera.Position.X
	if dx > ww/2 {
		dx -= ww
	} else if dx < -ww/2 {
		dx += ww
	}
	sx := float64(cfg.Screen.Width)/2 + dx
	sy := float64(cfg.Screen.StatusBarHeight) + float64(cfg.Screen.ViewHeight)/2 +
		obj.Y + obj.H/2 - camera.Position.Y

	sin, cos := math.Sin(ship.Heading), math.Cos(ship.Heading)
	r := cfg.Ship.HullHeight / 2

	// Nose, tail-left, tail-right.
	nx, ny := sx+sin*r, sy-cos*r
	lx, ly := sx+math.Sin(ship.Heading+2.6)*r, sy-math.Cos(ship.Heading+2.6)*r
	rx, ry := sx+math.Sin(ship.Heading-2.6)*r, sy-math.Cos(ship.Heading-2.6)*r

	vector.StrokeLine(screen, float32(nx), float32(ny), float32(lx), float32(ly), 1, shipColor, false)
	vector.StrokeLine(screen, float32(nx), float32(ny), float32(rx), float32(ry), 1, shipColor, false)
	vector.StrokeLine(screen, float32(lx), float32(ly), float32(rx), float32(ry), 1, shipColor, false)
}
