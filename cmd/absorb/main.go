package main

import (
	"log"

	"absorb/internal/config"
	"absorb/internal/game"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("absorb: config: %v", err)
	}
	game.RunDesktop(cfg)
}
