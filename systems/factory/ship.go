package factory

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/gravwell/archetypes"
	"github.com/automoto/gravwell/components"
	cfg "github.com/automoto/gravwell/config"
)

func CreateShip(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	ship := archetypes.Ship.Spawn(ecs)

	w, h := cfg.Ship.HullWidth, cfg.Ship.HullHeight
	obj := resolv.NewObject(x-w/2, y-h/2, w, h, tagShip)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = ship

	components.Object.SetValue(ship, components.ObjectData{Object: obj})
	components.Ship.Set(ship, &components.ShipData{})

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	return ship
}

const tagShip = "ship"
