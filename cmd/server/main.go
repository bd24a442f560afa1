package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/easyrokra/gateway/internal/audit"
	"github.com/easyrokra/gateway/internal/config"
	"github.com/easyrokra/gateway/internal/router"
	"github.com/easyrokra/gateway/internal/ws"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env file if present; real deployments use environment variables.
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using environment variables")
	}

	cfg := config.Load()

	var recorder audit.Recorder = audit.NopRecorder{}
	if cfg.DatabaseURL != "" {
		pg, err := audit.NewPGRecorder(context.Background(), cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("connect payment audit store: %v", err)
		}
		defer pg.Close()
		recorder = pg
		log.Println("Payment audit store connected")
	}

	hub := ws.NewHub()
	go hub.Run()

	r := router.New(cfg, recorder, hub)

	log.Printf("Starting server on :%s", cfg.Port)
	if err := http.ListenAndServe(fmt.Sprintf(":%s", cfg.Port), r); err != nil {
		log.Fatal(err)
	}
}
