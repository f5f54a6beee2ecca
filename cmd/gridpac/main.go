package main

import (
	"log"
	"os"

	"gridpac/internal/config"
	"gridpac/internal/game"
	"gridpac/internal/locale"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg, err := config.Load(os.Args[0], os.Args[1:], os.Getenv)
	if err != nil {
		log.Fatal(err)
	}
	locale.Init(cfg.LocaleDir, cfg.Lang)
	s, err := cfg.NewState()
	if err != nil {
		log.Fatal(err)
	}

	sw, sh := ebiten.ScreenSizeInFullscreen()
	g := game.New(s, game.NewAudioManager(cfg.Audio), game.FitScale(s.Size(), sw, sh))
	ebiten.SetWindowTitle("gridpac (Go + Ebiten)")
	ebiten.SetWindowResizable(false)
	ebiten.SetWindowSize(g.ScreenWidth(), g.ScreenHeight())
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
