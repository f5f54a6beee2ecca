package main

import (
	"context"
	"io"
	"log"
	"os"
	"os/signal"

	"gridpac/internal/config"
	"gridpac/internal/locale"
	"gridpac/internal/term"

	"github.com/gdamore/tcell/v2"
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

	// The screen belongs to tcell from here on; logs go to a file or nowhere.
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		log.SetOutput(f)
	} else {
		log.SetOutput(io.Discard)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatal(err)
	}
	if err := screen.Init(); err != nil {
		log.Fatal(err)
	}

	sound, err := term.NewSound(cfg.Audio)
	if err != nil {
		// Non-fatal, game can run without sound
		log.Printf("audio initialization failed: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	runErr := term.New(screen, s, sound).Run(ctx)
	stop()
	sound.Close()
	screen.Fini()
	if runErr != nil {
		log.SetOutput(os.Stderr)
		log.Fatal(runErr)
	}
}
