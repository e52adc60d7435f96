package main

import (
	"net/http"

	"contentdesk/config"
	"contentdesk/internal/access/gate"
	"contentdesk/internal/content/store"
	"contentdesk/pkg/logger"
	"contentdesk/router"
	"contentdesk/socket"

	"github.com/joho/godotenv"
)

func main() {
	logger.Init()

	// Load .env file
	if err := godotenv.Load(); err != nil {
		logger.Sugar.Info("No .env file found, using environment variables from OS")
	}

	cfg := config.Load()

	// The gate hashes the configured passphrase once; the plaintext is
	// not kept anywhere after this point.
	accessGate := gate.New(cfg.AccessCode)

	contentStore := store.NewContentStore()
	if cfg.SeedDemoData {
		contentStore.Seed()
	}

	hub := socket.NewHub()
	go hub.Run()

	handler := router.Setup(contentStore, accessGate, hub)

	logger.Sugar.Infof("ContentDesk backend listening on :%s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, handler); err != nil {
		logger.Sugar.Fatalf("Server stopped: %v", err)
	}
}
