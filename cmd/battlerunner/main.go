package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/PFAdminGH/ArenaVerse/internal/combat"
	"github.com/PFAdminGH/ArenaVerse/internal/config"
	"github.com/PFAdminGH/ArenaVerse/internal/constants"
	"github.com/PFAdminGH/ArenaVerse/internal/game"
	"github.com/PFAdminGH/ArenaVerse/internal/logging"
	"github.com/PFAdminGH/ArenaVerse/internal/roster"
	"github.com/PFAdminGH/ArenaVerse/internal/sim"
)

// battlerunner resolves matchups straight from the config file, without a
// server or database: one seeded duel by default, or a Monte Carlo batch
// with -trials.
func main() {
	var (
		configPath = flag.String("config", "", "path to the arena config (defaults to $ARENA_CONFIG or arena_config.json)")
		nameA      = flag.String("a", "", "first fighter name (defaults to the first roster entry)")
		nameB      = flag.String("b", "", "second fighter name (defaults to the second roster entry)")
		seed       = flag.Int64("seed", 0, "battle seed (0 picks one from the clock)")
		trials     = flag.Int("trials", 0, "run N trials with seeds seed..seed+N-1 instead of a single battle")
		quiet      = flag.Bool("quiet", false, "suppress the per-round battle log")
	)
	flag.Parse()

	path := *configPath
	if path == "" {
		path = os.Getenv(constants.EnvArenaConfig)
	}
	if path == "" {
		path = constants.DefaultConfigPath
	}
	cfg, err := config.LoadConfig(path)
	if err != nil {
		logging.Fatal("Missing or invalid arena configuration", err, logging.Fields{"config_path": path})
	}

	ftA, err := pickFighter(cfg.Fighters, *nameA, 0)
	if err != nil {
		logging.Fatal("cannot resolve first fighter", err, nil)
	}
	ftB, err := pickFighter(cfg.Fighters, *nameB, 1)
	if err != nil {
		logging.Fatal("cannot resolve second fighter", err, nil)
	}

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	printSheet(*ftA)
	printSheet(*ftB)

	if *trials > 0 {
		runTrials(*ftA, *ftB, *trials, *seed)
		return
	}
	runSingle(*ftA, *ftB, *seed, *quiet)
}

func pickFighter(fighters []game.FighterTemplate, name string, fallbackIdx int) (*game.FighterTemplate, error) {
	if name == "" {
		if fallbackIdx >= len(fighters) {
			return nil, fmt.Errorf("roster has no entry at position %d", fallbackIdx+1)
		}
		return &fighters[fallbackIdx], nil
	}
	for i := range fighters {
		if strings.EqualFold(fighters[i].Name, name) {
			return &fighters[i], nil
		}
	}
	return nil, fmt.Errorf("fighter %q not found in config", name)
}

// printSheet shows the battle-ready snapshot, aggregated stats included, so
// a matchup can be eyeballed before the dice roll.
func printSheet(ft game.FighterTemplate) {
	c, err := roster.Build(ft)
	if err != nil {
		logging.Fatal("invalid fighter template", err, logging.Fields{constants.LogFieldName: ft.Name})
	}
	fmt.Printf("=== %s ===\n", c.String())
	totals := c.TotalStats()
	for _, key := range []string{
		combat.StatStrength, combat.StatConstitution, combat.StatDexterity,
		combat.StatIntelligence, combat.StatAgility, combat.StatAccuracy,
		combat.StatEvasion, combat.StatCritRate,
	} {
		if v := totals.Get(key); v != 0 {
			fmt.Printf("  %-4s %d\n", key, v)
		}
	}
	for _, e := range ft.Equipment {
		fmt.Printf("  gear: %s\n", e.Name)
	}
	fmt.Printf("  hotbar: %s\n", strings.Join(ft.Hotbar, ", "))
}

func runSingle(a, b game.FighterTemplate, seed int64, quiet bool) {
	res, err := sim.RunBattle(a, b, seed)
	if err != nil {
		logging.Fatal("battle failed", err, nil)
	}
	if !quiet {
		fmt.Println()
		fmt.Print(res.Log.String())
	}
	fmt.Printf("\nseed %d, %d rounds\n", seed, res.Rounds)
	if res.Winner == "" {
		fmt.Println("result: draw")
	} else {
		fmt.Printf("winner: %s\n", res.Winner)
	}
	for name, hp := range res.Final {
		fmt.Printf("  %s: %d HP left\n", name, hp)
	}
}

func runTrials(a, b game.FighterTemplate, trials int, seedBase int64) {
	sum, err := sim.RunTrials(context.Background(), a, b, trials, seedBase)
	if err != nil {
		logging.Fatal("simulation failed", err, nil)
	}
	fmt.Printf("\n%d trials (seeds %d..%d)\n", sum.Trials, seedBase, seedBase+int64(trials)-1)
	fmt.Printf("  %-12s %4d wins (%.1f%%)\n", sum.FighterA, sum.WinsA, pct(sum.WinsA, sum.Trials))
	fmt.Printf("  %-12s %4d wins (%.1f%%)\n", sum.FighterB, sum.WinsB, pct(sum.WinsB, sum.Trials))
	fmt.Printf("  %-12s %4d (%.1f%%)\n", "draws", sum.Draws, pct(sum.Draws, sum.Trials))
	fmt.Printf("  rounds: avg %.1f, min %d, max %d\n", sum.AvgRounds, sum.MinRounds, sum.MaxRounds)
}

func pct(n, total int) float64 {
	if total == 0 {
		return 0
	}
	return 100 * float64(n) / float64(total)
}
