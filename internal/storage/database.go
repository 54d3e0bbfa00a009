package storage

import (
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/PFAdminGH/ArenaVerse/internal/game"
	"github.com/PFAdminGH/ArenaVerse/internal/logging"
)

func OpenAndMigrate(dataSourceName string, fightersFromConfig []game.FighterTemplate) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dataSourceName), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	// Keep the schema updated via AutoMigrate; combat stats never land in
	// the database, only identity and tallies do.
	if err := db.AutoMigrate(&game.FighterTemplate{}, &game.BattleRecord{}); err != nil {
		return nil, err
	}

	seedDefaultFighters(db, fightersFromConfig)
	return db, nil
}

// seedDefaultFighters inserts the configured roster on first run. An already
// populated table is left alone so accumulated tallies survive restarts;
// renamed or added fighters are inserted individually.
func seedDefaultFighters(db *gorm.DB, fightersFromConfig []game.FighterTemplate) {
	for _, f := range fightersFromConfig {
		var count int64
		db.Model(&game.FighterTemplate{}).Where("lower(name) = lower(?)", f.Name).Count(&count)
		if count > 0 {
			continue
		}
		row := game.FighterTemplate{Name: f.Name}
		if err := db.Create(&row).Error; err != nil {
			logging.Error("failed to seed fighter", err, logging.Fields{"name": f.Name})
		}
	}
}
