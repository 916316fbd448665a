package main

import (
	"fmt"
	"log"
	"os"

	"github.com/gdamore/tcell/v2"

	"absorb/internal/audio"
	"absorb/internal/config"
	"absorb/internal/sim"
	"absorb/internal/tui"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("absorb: config: %v", err)
	}

	logger, closeLog, err := tui.NewLogger(cfg.LogFile)
	if err != nil {
		log.Fatalf("absorb: %v", err)
	}
	defer closeLog()

	ctx, err := sim.NewContext(sim.Options{
		Tuning:     cfg.Tuning,
		Seed:       cfg.Seed,
		StartLevel: cfg.StartLevel,
		Logger:     logger,
	})
	if err != nil {
		log.Fatalf("absorb: simulation: %v", err)
	}

	var mixer tui.Mixer
	if cfg.Audio {
		snd, err := audio.New(cfg.Volume)
		if err != nil {
			fmt.Fprintf(os.Stderr, "audio init failed (continuing without sound): %v\n", err)
		} else {
			defer snd.Close()
			snd.Attach(ctx.Events)
			mixer = snd
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("absorb: screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("absorb: screen init: %v", err)
	}
	defer screen.Fini()

	tui.New(screen, ctx, mixer, cfg.Seed).Run()
}
