package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/gravwell/components"
	cfg "github.com/automoto/gravwell/config"
)

var (
	terrainImg *ebiten.Image
	terrainPix []byte
	terrainOp  = &ebiten.DrawImageOptions{}
)

// DrawTerrain renders the wall imagery for the current view into the 1-bit
// frame, expands it to RGBA, and blits it to the screen scaled by the
// window scale factor. The frame's top rows are the status bar and stay
// solid ink; the HUD text draws over them afterwards.
func DrawTerrain(e *ecs.ECS, screen *ebiten.Image) {
	terrainEntry, ok := components.Terrain.First(e.World)
	if !ok {
		return
	}
	terrain := components.Terrain.Get(terrainEntry)

	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	fb := terrain.Frame
	fb.ClearDither(terrain.Level.Backgr1, terrain.Level.Backgr2)
	fb.FillRows(0, cfg.Screen.StatusBarHeight, 0xFFFF)

	left := int(camera.Position.X) - cfg.Screen.Width/2
	top := int(camera.Position.Y) - cfg.Screen.ViewHeight/2
	terrain.Set.Render(fb, left, top, left+cfg.Screen.Width, top+cfg.Screen.ViewHeight)

	if terrainImg == nil {
		terrainImg = ebiten.NewImage(fb.Width, fb.Height)
		terrainPix = make([]byte, 4*fb.Width*fb.Height)
	}
	fb.WriteRGBA(terrainPix)
	terrainImg.WritePixels(terrainPix)

	terrainOp.GeoM.Reset()
	screen.DrawImage(terrainImg, terrainOp)
}
