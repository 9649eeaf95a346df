package main

import (
	"flag"
	"log"

	"github.com/Garsondee/void-magi/internal/game"
	"github.com/Garsondee/void-magi/internal/sim"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	skipIntro := flag.Bool("skip-intro", false, "start in free play with controls unlocked")
	flag.Parse()

	cfg := sim.DefaultConfig()
	cfg.SkipIntro = *skipIntro

	ebiten.SetWindowTitle("Void Magi")
	ebiten.SetWindowSize(int(cfg.CanvasWidth), int(cfg.CanvasHeight))
	if err := ebiten.RunGame(game.New(cfg)); err != nil {
		log.Fatal(err)
	}
}
