package systems

import (
	"math"

	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/gravwell/components"
	cfg "github.com/automoto/gravwell/config"
	"github.com/automoto/gravwell/tags"
)

// UpdateCamera runs the intro glide while it lasts, then follows the ship
// with smoothing. Vertically the camera is clamped so the view never shows
// past the level's top or bottom; horizontally the world wraps, so only
// the glide and follow math care about X.
func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	terrainEntry, ok := components.Terrain.First(e.World)
	if !ok {
		return
	}
	lvl := components.Terrain.Get(terrainEntry).Level

	if camera.Gliding {
		tw := components.Tween.Get(cameraEntry)
		t, _, done := tw.Update(1.0 / 60.0)
		f := float64(t)
		camera.Position.X = camera.GlideFrom.X + (camera.GlideTo.X-camera.GlideFrom.X)*f
		camera.Position.Y = camera.GlideFrom.Y + (camera.GlideTo.Y-camera.GlideFrom.Y)*f
		if done {
			camera.Gliding = false
		}
		clampCameraY(camera, lvl.WorldHeight)
		return
	}

	shipEntry, ok := tags.Ship.First(e.World)
	if !ok {
		return
	}
	obj := components.Object.Get(shipEntry)
	targetX := obj.X + obj.W/2
	targetY := obj.Y + obj.H/2

	// Follow across the wrap seam by the short way round.
	ww := float64(lvl.WorldWidth)
	dx := targetX - camera.Position.X
	if dx > ww/2 {
		dx -= ww
	} else if dx < -ww/2 {
		dx += ww
	}

	camera.Position.X += dx * cfg.Camera.FollowSmoothing
	camera.Position.Y += (targetY - camera.Position.Y) * cfg.Camera.FollowSmoothing
	if camera.Position.X < 0 {
		camera.Position.X += ww
	} else if camera.Position.X >= ww {
		camera.Position.X -= ww
	}
	clampCameraY(camera, lvl.WorldHeight)
}

func clampCameraY(camera *components.CameraData, worldHeight int) {
	half := float64(cfg.Screen.ViewHeight) / 2
	minY := half
	maxY := float64(worldHeight) - half
	if maxY < minY {
		maxY = minY
	}
	camera.Position.Y = math.Max(minY, math.Min(maxY, camera.Position.Y))
}
