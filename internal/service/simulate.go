package service

import (
	"context"
	"errors"

	"github.com/PFAdminGH/ArenaVerse/internal/constants"
	"github.com/PFAdminGH/ArenaVerse/internal/game"
	"github.com/PFAdminGH/ArenaVerse/internal/sim"
)

var ErrTrialsOutOfRange = errors.New("trials out of range")

// FighterRepo is the minimal repository interface required by Simulate.
type FighterRepo interface {
	GetFighterByName(name string) (*game.FighterTemplate, error)
}

// Simulate runs a reproducible batch of trials between two roster fighters.
// Nothing is persisted: simulations are balance probes, not ranked battles.
func Simulate(ctx context.Context, repo FighterRepo, nameA, nameB string, trials int, seedBase int64) (sim.Summary, error) {
	if trials < 1 || trials > constants.MaxSimulationTrials {
		return sim.Summary{}, ErrTrialsOutOfRange
	}
	if nameA == "" || nameB == "" {
		return sim.Summary{}, ErrFighterNotFound
	}

	ftA, err := fetchFighter(repo, nameA)
	if err != nil {
		return sim.Summary{}, err
	}
	ftB, err := fetchFighter(repo, nameB)
	if err != nil {
		return sim.Summary{}, err
	}

	return sim.RunTrials(ctx, *ftA, *ftB, trials, seedBase)
}
