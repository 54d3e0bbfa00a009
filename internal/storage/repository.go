package storage

import (
	"github.com/PFAdminGH/ArenaVerse/internal/game"
)

type Repository interface {
	GetFighters() ([]game.FighterTemplate, error)
	// GetFighterByName returns a fighter by its name (case-insensitive).
	GetFighterByName(name string) (*game.FighterTemplate, error)

	SaveBattle(rec *game.BattleRecord) error
	GetBattleByID(id uint) (*game.BattleRecord, error)
	// GetRecentBattles returns the newest battles first.
	GetRecentBattles(limit int) ([]game.BattleRecord, error)

	// UpdateTalliesOnBattleEnd adds the outcome of a finished battle to both
	// fighters' win/loss/draw counters.
	UpdateTalliesOnBattleEnd(rec *game.BattleRecord) error
	// Leaderboard
	GetTopFighters(limit int) ([]game.FighterTemplate, error)
}
