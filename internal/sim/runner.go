// Package sim runs battles outside the request path: single seeded duels and
// repeated Monte Carlo trials for balance checks.
package sim

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/PFAdminGH/ArenaVerse/internal/combat"
	"github.com/PFAdminGH/ArenaVerse/internal/game"
	"github.com/PFAdminGH/ArenaVerse/internal/roster"
)

// Result is the outcome of one battle. Winner is empty on a draw.
type Result struct {
	Winner string            `json:"winner"`
	Rounds int               `json:"rounds"`
	Log    *combat.BattleLog `json:"log"`
	Final  map[string]int    `json:"final_hp"`
}

// RunBattle builds fresh combatants from both templates and resolves a
// single encounter with the given seed. The same templates and seed always
// produce the same result.
func RunBattle(a, b game.FighterTemplate, seed int64) (Result, error) {
	ca, cb, err := roster.BuildPair(a, b)
	if err != nil {
		return Result{}, err
	}
	enc, err := combat.NewEncounter([]*combat.Combatant{ca, cb}, seed)
	if err != nil {
		return Result{}, err
	}
	log := enc.Run()

	res := Result{
		Rounds: enc.Rounds(),
		Log:    log,
		Final: map[string]int{
			ca.Name(): ca.HP(),
			cb.Name(): cb.HP(),
		},
	}
	if w := enc.Winner(); w != nil {
		res.Winner = w.Name()
	}
	return res, nil
}

// Summary aggregates a batch of trials between the same two templates.
type Summary struct {
	Trials    int     `json:"trials"`
	SeedBase  int64   `json:"seed_base"`
	FighterA  string  `json:"fighter_a"`
	FighterB  string  `json:"fighter_b"`
	WinsA     int     `json:"wins_a"`
	WinsB     int     `json:"wins_b"`
	Draws     int     `json:"draws"`
	AvgRounds float64 `json:"avg_rounds"`
	MinRounds int     `json:"min_rounds"`
	MaxRounds int     `json:"max_rounds"`
}

// RunTrials resolves `trials` independent battles between the two templates.
// Trial i uses seed seedBase+i and its own fresh combatants, so the whole
// batch is reproducible from (templates, trials, seedBase) and trials can run
// concurrently without sharing state.
func RunTrials(ctx context.Context, a, b game.FighterTemplate, trials int, seedBase int64) (Summary, error) {
	results := make([]Result, trials)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for i := 0; i < trials; i++ {
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := RunBattle(a, b, seedBase+int64(i))
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Summary{}, err
	}

	sum := Summary{
		Trials:   trials,
		SeedBase: seedBase,
		FighterA: a.Name,
		FighterB: b.Name,
	}
	totalRounds := 0
	for i, res := range results {
		switch res.Winner {
		case a.Name:
			sum.WinsA++
		case b.Name:
			sum.WinsB++
		default:
			sum.Draws++
		}
		totalRounds += res.Rounds
		if i == 0 || res.Rounds < sum.MinRounds {
			sum.MinRounds = res.Rounds
		}
		if res.Rounds > sum.MaxRounds {
			sum.MaxRounds = res.Rounds
		}
	}
	if trials > 0 {
		sum.AvgRounds = float64(totalRounds) / float64(trials)
	}
	return sum, nil
}
