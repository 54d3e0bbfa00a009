package service

import (
	"encoding/json"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/PFAdminGH/ArenaVerse/internal/game"
	"github.com/PFAdminGH/ArenaVerse/internal/sim"
)

var (
	ErrFighterNotFound = errors.New("fighter not found")
	ErrSameFighter     = errors.New("a fighter cannot battle itself")
)

// BattleRepo is the minimal repository interface required by RunAndRecord.
// Using a small interface simplifies testing.
type BattleRepo interface {
	GetFighterByName(name string) (*game.FighterTemplate, error)
	SaveBattle(rec *game.BattleRecord) error
	UpdateTalliesOnBattleEnd(rec *game.BattleRecord) error
}

// RunAndRecord resolves a seeded battle between two roster fighters,
// persists the record and updates both fighters' tallies. The stored seed is
// enough to replay the battle byte for byte.
func RunAndRecord(repo BattleRepo, nameA, nameB string, seed int64) (*game.BattleRecord, sim.Result, error) {
	if strings.EqualFold(nameA, nameB) {
		return nil, sim.Result{}, ErrSameFighter
	}

	ftA, err := fetchFighter(repo, nameA)
	if err != nil {
		return nil, sim.Result{}, err
	}
	ftB, err := fetchFighter(repo, nameB)
	if err != nil {
		return nil, sim.Result{}, err
	}

	res, err := sim.RunBattle(*ftA, *ftB, seed)
	if err != nil {
		return nil, sim.Result{}, err
	}

	logJSON, err := json.Marshal(res.Log)
	if err != nil {
		return nil, sim.Result{}, err
	}

	rec := &game.BattleRecord{
		FighterA: ftA.Name,
		FighterB: ftB.Name,
		Seed:     seed,
		Winner:   res.Winner,
		Rounds:   res.Rounds,
		LogJSON:  string(logJSON),
	}
	if err := repo.SaveBattle(rec); err != nil {
		return nil, sim.Result{}, err
	}
	if err := repo.UpdateTalliesOnBattleEnd(rec); err != nil {
		return nil, sim.Result{}, err
	}
	return rec, res, nil
}

func fetchFighter(repo interface {
	GetFighterByName(name string) (*game.FighterTemplate, error)
}, name string) (*game.FighterTemplate, error) {
	ft, err := repo.GetFighterByName(name)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFighterNotFound
		}
		return nil, err
	}
	if ft == nil {
		return nil, ErrFighterNotFound
	}
	return ft, nil
}
