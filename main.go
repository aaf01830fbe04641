package main

import (
	"flag"
	"image"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/automoto/gravwell/config"
	"github.com/automoto/gravwell/scenes"
	"github.com/automoto/gravwell/systems"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

func NewGame(levelIndex int) *Game {
	return &Game{
		bounds: image.Rectangle{},
		scene:  scenes.NewWorldScene(levelIndex),
	}
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	level := flag.Int("level", -1, "level index to start on (default: last played)")
	overlay := flag.Bool("overlay", false, "start with the debug overlay on")
	skipIntro := flag.Bool("skip-intro", false, "skip the camera intro glide")
	flag.Parse()

	ebiten.SetWindowSize(config.C.Width*config.Screen.Scale, config.C.Height*config.Screen.Scale)
	ebiten.SetWindowTitle("Gravwell")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	levelIndex := 0
	if saved, err := systems.LoadSettings(); err == nil && saved != nil {
		levelIndex = systems.ApplySavedSettings(saved)
	}
	if *level >= 0 {
		levelIndex = *level
	}
	if *overlay {
		config.Debug.Overlay = true
	}
	if *skipIntro {
		config.Debug.SkipIntro = true
	}

	if err := ebiten.RunGame(NewGame(levelIndex)); err != nil {
		log.Fatal(err)
	}
}
