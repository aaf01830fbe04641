package factory

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"

	"github.com/automoto/gravwell/archetypes"
	"github.com/automoto/gravwell/components"
	cfg "github.com/automoto/gravwell/config"
	"github.com/automoto/gravwell/leveldata"
)

// CreateCamera spawns the camera at the middle of the level and starts the
// intro glide toward the ship spawn. The glide progress runs on a tween
// sequence; the camera system interpolates the two endpoints with it.
func CreateCamera(ecs *ecs.ECS, lvl *leveldata.Level) {
	camera := archetypes.Camera.Spawn(ecs)

	from := math.Vec2{X: float64(lvl.WorldWidth) / 2, Y: float64(lvl.WorldHeight) / 2}
	to := math.Vec2{X: float64(lvl.SpawnX), Y: float64(lvl.SpawnY)}

	data := &components.CameraData{
		Position:  from,
		Gliding:   !cfg.Debug.SkipIntro,
		GlideFrom: from,
		GlideTo:   to,
	}
	if cfg.Debug.SkipIntro {
		data.Position = to
	}
	components.Camera.Set(camera, data)

	tw := gween.NewSequence()
	tw.Add(gween.New(0, 1, float32(cfg.Camera.IntroGlideTime), ease.OutQuad))
	components.Tween.Set(camera, tw)
}
