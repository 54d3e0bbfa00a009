package storage

import (
	"strings"

	"gorm.io/gorm"

	"github.com/PFAdminGH/ArenaVerse/internal/game"
)

type sqliteRepository struct {
	db *gorm.DB
	// configByName maps lowercase fighter name -> config definition
	// (stats, equipment, hotbar).
	configByName map[string]game.FighterTemplate
}

func NewSQLiteRepository(db *gorm.DB, configFighters []game.FighterTemplate) Repository {
	m := make(map[string]game.FighterTemplate, len(configFighters))
	for _, f := range configFighters {
		m[strings.ToLower(f.Name)] = f
	}
	return &sqliteRepository{db: db, configByName: m}
}

// overlayConfig copies stats, equipment and hotbar from the config definition
// onto a persisted row. The database only stores identity and tallies; the
// config is the source of truth for everything combat-relevant.
func (r *sqliteRepository) overlayConfig(ft *game.FighterTemplate) {
	if r.configByName == nil {
		return
	}
	if conf, ok := r.configByName[strings.ToLower(ft.Name)]; ok {
		ft.BaseStats = conf.BaseStats
		ft.Equipment = conf.Equipment
		ft.Hotbar = conf.Hotbar
	}
}

func (r *sqliteRepository) GetFighters() ([]game.FighterTemplate, error) {
	var fighters []game.FighterTemplate
	if err := r.db.Order("name asc").Find(&fighters).Error; err != nil {
		return nil, err
	}
	for i := range fighters {
		r.overlayConfig(&fighters[i])
	}
	return fighters, nil
}

func (r *sqliteRepository) GetFighterByName(name string) (*game.FighterTemplate, error) {
	var ft game.FighterTemplate
	if err := r.db.Where("lower(name) = ?", strings.ToLower(name)).First(&ft).Error; err != nil {
		return nil, err
	}
	r.overlayConfig(&ft)
	return &ft, nil
}

func (r *sqliteRepository) SaveBattle(rec *game.BattleRecord) error {
	return r.db.Create(rec).Error
}

func (r *sqliteRepository) GetBattleByID(id uint) (*game.BattleRecord, error) {
	var rec game.BattleRecord
	if err := r.db.First(&rec, id).Error; err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *sqliteRepository) GetRecentBattles(limit int) ([]game.BattleRecord, error) {
	if limit <= 0 {
		limit = 20
	}
	var recs []game.BattleRecord
	if err := r.db.Order("created_at desc").Limit(limit).Find(&recs).Error; err != nil {
		return nil, err
	}
	return recs, nil
}

func (r *sqliteRepository) UpdateTalliesOnBattleEnd(rec *game.BattleRecord) error {
	// Helper to add deltas to one fighter's counters.
	bump := func(name string, wins, losses, draws int) error {
		var ft game.FighterTemplate
		if err := r.db.Where("lower(name) = ?", strings.ToLower(name)).First(&ft).Error; err != nil {
			return err
		}
		ft.Wins += wins
		ft.Losses += losses
		ft.Draws += draws
		return r.db.Save(&ft).Error
	}

	if rec.IsDraw() {
		if err := bump(rec.FighterA, 0, 0, 1); err != nil {
			return err
		}
		return bump(rec.FighterB, 0, 0, 1)
	}

	loser := rec.FighterA
	if strings.EqualFold(rec.Winner, rec.FighterA) {
		loser = rec.FighterB
	}
	if err := bump(rec.Winner, 1, 0, 0); err != nil {
		return err
	}
	return bump(loser, 0, 1, 0)
}

// GetTopFighters returns the top N fighters ordered by Wins desc, then
// Draws desc.
func (r *sqliteRepository) GetTopFighters(limit int) ([]game.FighterTemplate, error) {
	if limit <= 0 {
		limit = 10
	}
	var fighters []game.FighterTemplate
	if err := r.db.Model(&game.FighterTemplate{}).
		Order("wins DESC").
		Order("draws DESC").
		Limit(limit).
		Find(&fighters).Error; err != nil {
		return nil, err
	}
	for i := range fighters {
		r.overlayConfig(&fighters[i])
	}
	return fighters, nil
}
