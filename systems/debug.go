package systems

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/gravwell/components"
	cfg "github.com/automoto/gravwell/config"
)

// UpdateDebug toggles the overlay with F1 and persists the choice.
func UpdateDebug(e *ecs.ECS) {
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		cfg.Debug.Overlay = !cfg.Debug.Overlay
		SaveCurrentSettings()
	}
}

// DrawDebug outlines every collision object and boxes the surviving
// junctions so the clustering and patch passes can be eyeballed in play.
func DrawDebug(e *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.Overlay {
		return
	}

	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)
	camX := float64(cfg.Screen.Width)/2 - camera.Position.X
	camY := float64(cfg.Screen.StatusBarHeight) + float64(cfg.Screen.ViewHeight)/2 - camera.Position.Y

	if spaceEntry, ok := components.Space.First(e.World); ok {
		space := components.Space.Get(spaceEntry)
		for _, obj := range space.Objects() {
			x := obj.X + camX
			y := obj.Y + camY
			if x+obj.W < 0 || x > float64(cfg.Screen.Width) || y+obj.H < 0 || y > float64(cfg.C.Height) {
				continue
			}

			c := color.RGBA{100, 100, 100, 255}
			if obj.HasTags("bounce") {
				c = color.RGBA{0, 180, 0, 255}
			} else if obj.HasTags("ship") {
				c = color.RGBA{0, 0, 255, 255}
			}
			vector.StrokeRect(screen, float32(x), float32(y), float32(obj.W), float32(obj.H), 1, c, false)
		}
	}

	terrainEntry, ok := components.Terrain.First(e.World)
	if !ok {
		return
	}
	set := components.Terrain.Get(terrainEntry).Set
	for _, j := range set.Junctions() {
		x := float64(j.X) + camX
		y := float64(j.Y) + camY
		vector.StrokeRect(screen, float32(x-4), float32(y-4), 8, 8, 1, color.RGBA{255, 0, 0, 255}, false)
	}
}
