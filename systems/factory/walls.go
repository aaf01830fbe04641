package factory

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/gravwell/archetypes"
	"github.com/automoto/gravwell/components"
	"github.com/automoto/gravwell/tags"
	"github.com/automoto/gravwell/walls"
)

// CreateWalls spawns one collision entity per prepared wall. Ghost walls
// are imagery only and get no collision object. Each wall contributes its
// bounding box; the hull is small enough that box contact against sloped
// walls reads fine in play.
func CreateWalls(ecs *ecs.ECS, set *walls.Set) {
	for i := range set.Walls() {
		w := &set.Walls()[i]
		if w.Kind == walls.KindGhost {
			continue
		}

		x1, y1, x2, y2 := float64(w.X1), float64(w.Y1), float64(w.X2), float64(w.Y2)
		if x2 < x1 {
			x1, x2 = x2, x1
		}
		if y2 < y1 {
			y1, y2 = y2, y1
		}
		// Degenerate boxes (vertical or horizontal walls) get a minimum
		// 2px thickness so contact checks can land on them.
		if x2-x1 < 2 {
			x2 = x1 + 2
		}
		if y2-y1 < 2 {
			y2 = y1 + 2
		}

		tag := tags.ResolvSolid
		if w.Kind == walls.KindBounce {
			tag = tags.ResolvBounce
		}

		wall := archetypes.Wall.Spawn(ecs)
		obj := resolv.NewObject(x1, y1, x2-x1, y2-y1, tag)
		obj.SetShape(resolv.NewRectangle(0, 0, x2-x1, y2-y1))
		obj.Data = wall

		components.Object.SetValue(wall, components.ObjectData{Object: obj})

		if spaceEntry, ok := components.Space.First(ecs.World); ok {
			components.Space.Get(spaceEntry).Add(obj)
		}
	}
}
