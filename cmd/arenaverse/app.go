package main

import (
	"github.com/PFAdminGH/ArenaVerse/internal/config"
	"github.com/PFAdminGH/ArenaVerse/internal/game"
	"github.com/PFAdminGH/ArenaVerse/internal/logging"
	"github.com/PFAdminGH/ArenaVerse/internal/storage"
)

func loadConfigOrExit(path string) *config.LoadedConfig {
	cfg, err := config.LoadConfig(path)
	if err != nil {
		logging.Fatal("Missing or invalid arena configuration", err, logging.Fields{"config_path": path, "hint": "create an arena_config.json with a 'fighter_list' array of fighter objects (name, stats, equipment, hotbar) and an optional server.address"})
	}
	return cfg
}

func createRepositoryOrExit(dbPath string, fighters []game.FighterTemplate) storage.Repository {
	db, err := storage.OpenAndMigrate(dbPath, fighters)
	if err != nil {
		logging.Fatal("Failed to initialize database", err, nil)
	}
	return storage.NewSQLiteRepository(db, fighters)
}
