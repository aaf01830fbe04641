package components

import "github.com/yohamta/donburi"

type ShipData struct {
	SpeedX  float64
	SpeedY  float64
	Heading float64 // radians, 0 = up
}

var Ship = donburi.NewComponentType[ShipData]()
