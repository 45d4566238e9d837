package main

import (
	"log"

	"hellohttp/app"
	"hellohttp/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Load config error: %v", err)
	}
	if cfg.Debug {
		log.Printf("Config: %+v", cfg)
	}

	a := app.New(cfg)

	log.Printf("Framework server listening on http://%s", cfg.Addr())
	if err := a.Run(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
