package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type CameraData struct {
	Position math.Vec2
	Gliding  bool // level-intro glide still running

	// Glide endpoints, world pixels. Valid while Gliding is true.
	GlideFrom math.Vec2
	GlideTo   math.Vec2
}

var Camera = donburi.NewComponentType[CameraData]()
