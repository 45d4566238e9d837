package main

import (
	"log"

	"hellohttp/config"
	"hellohttp/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Load config error: %v", err)
	}
	if cfg.Debug {
		log.Printf("Config: %+v", cfg)
	}

	s := server.New(cfg)

	log.Printf("Native server listening on http://%s", cfg.Addr())
	if err := s.Run(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
