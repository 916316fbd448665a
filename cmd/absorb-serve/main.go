package main

import (
	"log"
	"net/http"
	"os"

	"absorb/internal/config"
	"absorb/internal/remote"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("absorb: config: %v", err)
	}
	logger := log.New(os.Stderr, "absorb: ", log.LstdFlags)

	srv := remote.NewServer(cfg, logger)
	logger.Printf("server listening on %s", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, srv); err != nil {
		logger.Fatalf("server error: %v", err)
	}
}
