package scenes

import (
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/gravwell/assets"
	"github.com/automoto/gravwell/components"
	cfg "github.com/automoto/gravwell/config"
	"github.com/automoto/gravwell/leveldata"
	"github.com/automoto/gravwell/systems"
	"github.com/automoto/gravwell/systems/factory"
)

// WorldScene runs one level: terrain preparation, the ship, and the
// camera. N cycles to the next embedded level.
type WorldScene struct {
	ecs        *ecs.ECS
	levels     []*leveldata.Level
	levelIndex int
	once       sync.Once
}

func NewWorldScene(levelIndex int) *WorldScene {
	return &WorldScene{levelIndex: levelIndex}
}

func (ws *WorldScene) Update() {
	ws.once.Do(ws.configure)

	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		ws.levelIndex = (ws.levelIndex + 1) % len(ws.levels)
		systems.RememberLevel(ws.levelIndex)
		ws.buildECS()
	}

	ws.ecs.Update()
}

func (ws *WorldScene) Draw(screen *ebiten.Image) {
	// Always clear to prevent flashes from the OS window background.
	screen.Fill(color.Black)

	if ws.ecs == nil {
		return
	}
	ws.ecs.Draw(screen)
}

func (ws *WorldScene) configure() {
	levels, err := assets.Levels()
	if err != nil {
		panic("failed to load levels: " + err.Error())
	}
	ws.levels = levels
	if ws.levelIndex < 0 || ws.levelIndex >= len(ws.levels) {
		ws.levelIndex = 0
	}
	ws.buildECS()
}

func (ws *WorldScene) buildECS() {
	ecs := ecs.NewECS(donburi.NewWorld())

	ecs.AddSystem(systems.UpdateShip)
	ecs.AddSystem(systems.UpdateCamera)
	ecs.AddSystem(systems.UpdateDebug)

	ecs.AddRenderer(cfg.Default, systems.DrawTerrain)
	ecs.AddRenderer(cfg.Default, systems.DrawShip)
	ecs.AddRenderer(cfg.Default, systems.DrawHUD)
	ecs.AddRenderer(cfg.Default, systems.DrawDebug)

	lvl := ws.levels[ws.levelIndex]

	factory.CreateSpace(ecs, lvl.WorldWidth, lvl.WorldHeight, 16, 16)
	terrain, err := factory.CreateTerrain(ecs, lvl)
	if err != nil {
		panic("failed to prepare terrain: " + err.Error())
	}
	factory.CreateWalls(ecs, components.Terrain.Get(terrain).Set)
	factory.CreateShip(ecs, float64(lvl.SpawnX), float64(lvl.SpawnY))
	factory.CreateCamera(ecs, lvl)

	ws.ecs = ecs
}
