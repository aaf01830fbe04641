package systems

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/gravwell/components"
	cfg "github.com/automoto/gravwell/config"
	"github.com/automoto/gravwell/tags"
)

// UpdateShip reads input, integrates the ship's velocity, and moves it
// through the collision space one axis at a time. Solid contact kills the
// velocity component; bounce contact reflects it with some loss.
func UpdateShip(e *ecs.ECS) {
	shipEntry, ok := tags.Ship.First(e.World)
	if !ok {
		return
	}
	ship := components.Ship.Get(shipEntry)
	obj := components.Object.Get(shipEntry)

	terrainEntry, ok := components.Terrain.First(e.World)
	if !ok {
		return
	}
	terrain := components.Terrain.Get(terrainEntry)

	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyZ) {
		ship.Heading -= cfg.Ship.TurnSpeed
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyX) {
		ship.Heading += cfg.Ship.TurnSpeed
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeySpace) {
		ship.SpeedX += math.Sin(ship.Heading) * cfg.Ship.Thrust
		ship.SpeedY -= math.Cos(ship.Heading) * cfg.Ship.Thrust
	}

	ship.SpeedX *= 1 - cfg.Ship.Friction
	ship.SpeedY *= 1 - cfg.Ship.Friction
	if speed := math.Hypot(ship.SpeedX, ship.SpeedY); speed > cfg.Ship.MaxSpeed {
		scale := cfg.Ship.MaxSpeed / speed
		ship.SpeedX *= scale
		ship.SpeedY *= scale
	}

	dx, dy := ship.SpeedX, ship.SpeedY

	if check := obj.Check(dx, 0, tags.ResolvSolid, tags.ResolvBounce); check != nil {
		if hits := check.Objects; len(hits) > 0 {
			contact := check.ContactWithObject(hits[0])
			dx = contact.X()
			if hits[0].HasTags(tags.ResolvBounce) {
				ship.SpeedX = -ship.SpeedX * cfg.Ship.BounceLoss
			} else {
				ship.SpeedX = 0
			}
		}
	}
	obj.X += dx

	if check := obj.Check(0, dy, tags.ResolvSolid, tags.ResolvBounce); check != nil {
		if hits := check.Objects; len(hits) > 0 {
			contact := check.ContactWithObject(hits[0])
			dy = contact.Y()
			if hits[0].HasTags(tags.ResolvBounce) {
				ship.SpeedY = -ship.SpeedY * cfg.Ship.BounceLoss
			} else {
				ship.SpeedY = 0
			}
		}
	}
	obj.Y += dy

	// The world wraps horizontally; keep the hull inside [0, WorldWidth).
	ww := float64(terrain.Level.WorldWidth)
	if obj.X < 0 {
		obj.X += ww
	} else if obj.X >= ww {
		obj.X -= ww
	}

	obj.Update()
}
