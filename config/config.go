package config

// ScreenConfig contains the fixed screen geometry. The play view is a
// 1-bit surface with a status strip above it; all wall shading math is
// tuned to these dimensions.
type ScreenConfig struct {
	Width           int // playfield width in pixels, multiple of 16
	ViewHeight      int // visible play area height
	StatusBarHeight int // rows reserved above the play area
	Scale           int // window scale factor
}

// WorldConfig contains level capacity limits used to size the fixed
// preparation buffers.
type WorldConfig struct {
	MaxWalls int
}

// ShipConfig contains ship movement tunables.
type ShipConfig struct {
	Thrust     float64
	MaxSpeed   float64
	Friction   float64
	TurnSpeed  float64
	BounceLoss float64 // speed multiplier applied on wall bounce
	HullWidth  float64
	HullHeight float64
}

// CameraConfig contains camera behavior configuration.
type CameraConfig struct {
	FollowSmoothing float64 // how fast the camera follows the ship (0.0-1.0)
	IntroGlideTime  float64 // seconds for the level-intro glide
}

// DebugConfig contains debug/testing options.
type DebugConfig struct {
	Overlay   bool // draw junction boxes and shading bounds
	SkipIntro bool // skip the camera intro glide
}

// Config holds general game configuration.
type Config struct {
	Width  int
	Height int
}

// Global configuration instances
var C *Config
var Screen ScreenConfig
var World WorldConfig
var Ship ShipConfig
var Camera CameraConfig
var Debug DebugConfig

func init() {
	Screen = ScreenConfig{
		Width:           512,
		ViewHeight:      318,
		StatusBarHeight: 24,
		Scale:           2,
	}

	C = &Config{
		Width:  Screen.Width,
		Height: Screen.ViewHeight + Screen.StatusBarHeight,
	}

	World = WorldConfig{
		MaxWalls: 125,
	}

	Ship = ShipConfig{
		Thrust:     0.3,
		MaxSpeed:   6.0,
		Friction:   0.015,
		TurnSpeed:  0.1,
		BounceLoss: 0.7,
		HullWidth:  12,
		HullHeight: 12,
	}

	Camera = CameraConfig{
		FollowSmoothing: 0.15,
		IntroGlideTime:  2.0,
	}

	Debug = DebugConfig{
		Overlay:   false,
		SkipIntro: false,
	}
}
