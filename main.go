package main

import (
	"flag"
	"image"
	"log"

	"github.com/automoto/bullethell/config"
	"github.com/automoto/bullethell/fonts"
	"github.com/automoto/bullethell/scenes"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/segmentio/ksuid"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame() *Game {
	g := &Game{
		bounds: image.Rectangle{},
	}
	g.scene = scenes.NewMenuScene(g)
	return g
}

func (g *Game) Update() error {
	if scenes.QuitRequested() {
		return ebiten.Termination
	}
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
	configPath := flag.String("config", "", "TOML file overriding the default configuration")
	flag.Parse()

	log.SetPrefix("[" + ksuid.New().String() + "] ")

	if *configPath != "" {
		if err := config.Load(*configPath); err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}
	if err := fonts.LoadDefaults(); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	scale := config.C.WindowScale
	ebiten.SetWindowSize(int(float64(config.C.Width)*scale), int(float64(config.C.Height)*scale))
	ebiten.SetWindowTitle("Bullet Hell")

	scenes.PreloadAllSFX()

	if err := ebiten.RunGame(NewGame()); err != nil {
		log.Fatal(err)
	}
}
