package main

import (
	"log"
	"os"
	"path/filepath"

	"raidguard/bot"
	"raidguard/config"
	"raidguard/handlers"
	"raidguard/store"
	"raidguard/utils/database/incidents"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	if err := os.MkdirAll(filepath.Dir(cfg.SettingsPath), os.ModePerm); err != nil {
		log.Fatalf("Failed to create data directory: %v", err)
	}

	st, err := store.New(cfg.SettingsPath)
	if err != nil {
		log.Fatalf("Error loading settings: %v", err)
	}

	db, err := incidents.Init(cfg.IncidentDBPath)
	if err != nil {
		log.Fatalf("Error initializing incident database: %v", err)
	}

	b, err := bot.New(cfg, st, db)
	if err != nil {
		log.Fatalf("Error creating bot: %v", err)
	}

	handlers.Register(b)

	b.Run()

	defer b.Close()
}
