package tags

import "github.com/yohamta/donburi"

var (
	Ship    = donburi.NewTag().SetName("Ship")
	Wall    = donburi.NewTag().SetName("Wall")
	Terrain = donburi.NewTag().SetName("Terrain")
)

// Resolv tags for collision
const (
	ResolvSolid  = "solid"
	ResolvBounce = "bounce"
)
