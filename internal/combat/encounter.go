package combat

import (
	"errors"
	"fmt"
	"sort"
)

// RoundCap is the maximum round count. It exists solely to force termination
// (as a draw) when a stalemate is possible, for example damage fully absorbed
// by the mitigation floor interacting with healing. It is not a designed
// game-length target.
const RoundCap = 99

var ErrNotEnoughCombatants = errors.New("encounter requires at least two combatants")

// Encounter owns the battle loop: initiative ordering, per-round turn
// sequencing, effect ticking, skill selection and execution, cooldown
// advancement and termination detection. Formulas, skill details and effect
// behaviour live in their own files.
type Encounter struct {
	combatants []*Combatant
	rng        *RNG
	initiative []*Combatant
	log        BattleLog
	rounds     int
}

// NewEncounter validates the roster and fixes the initiative order for the
// whole battle: combatants sort descending by DEX with ties broken by one
// random float drawn per combatant from the shared stream.
//
// The tie-break floats are drawn unconditionally, one per combatant in
// caller order, before any in-battle roll. Setup therefore consumes exactly
// len(combatants) draws; changing the roster size shifts every subsequent
// roll, but identical rosters with the same seed replay identically.
func NewEncounter(combatants []*Combatant, seed int64) (*Encounter, error) {
	if len(combatants) < 2 {
		return nil, ErrNotEnoughCombatants
	}
	for _, c := range combatants {
		if c.MaxHP() < 1 {
			return nil, fmt.Errorf("combatant %s: max HP must be positive", c.Name())
		}
		if len(c.hotbar) == 0 {
			return nil, fmt.Errorf("combatant %s: %w", c.Name(), ErrEmptyHotbar)
		}
	}

	e := &Encounter{
		combatants: combatants,
		rng:        NewRNG(seed),
	}

	type ranked struct {
		c        *Combatant
		dex      int
		tiebreak float64
	}
	order := make([]ranked, len(combatants))
	for i, c := range combatants {
		order[i] = ranked{c: c, dex: c.TotalStats().Get(StatDexterity), tiebreak: e.rng.Float64()}
	}
	sort.SliceStable(order, func(i, j int) bool {
		if order[i].dex != order[j].dex {
			return order[i].dex > order[j].dex
		}
		return order[i].tiebreak > order[j].tiebreak
	})
	e.initiative = make([]*Combatant, len(order))
	for i, r := range order {
		e.initiative[i] = r.c
	}
	return e, nil
}

// Run executes the battle to completion and returns the accumulated log.
// Once started, a battle always reaches a terminal state (winner or draw)
// without erroring.
func (e *Encounter) Run() *BattleLog {
	for e.countAlive() > 1 && e.rounds < RoundCap {
		e.rounds++
		actions := Round{}

		for _, actor := range e.initiative {
			if !actor.IsAlive() {
				continue
			}
			actor.TickEffects()
			if !actor.IsAlive() {
				continue // a DoT tick killed them mid-turn
			}

			target := e.pickTarget(actor)
			if target == nil {
				continue
			}

			skill := selectFirstReady(actor.Hotbar())
			actions = append(actions, skill.Execute(actor, target, e.rng))

			// Every skill in the actor's bar recharges, not just the one used.
			for _, s := range actor.Hotbar() {
				s.TickCooldown()
			}

			if e.countAlive() <= 1 {
				break
			}
		}

		e.log.AddRound(actions)
	}
	return &e.log
}

// Winner returns the sole survivor, or nil on a draw (zero or more than one
// combatant alive at the round cap).
func (e *Encounter) Winner() *Combatant {
	var alive *Combatant
	for _, c := range e.combatants {
		if c.IsAlive() {
			if alive != nil {
				return nil
			}
			alive = c
		}
	}
	return alive
}

// Rounds returns how many rounds were played.
func (e *Encounter) Rounds() int { return e.rounds }

// Log returns the accumulated battle log.
func (e *Encounter) Log() *BattleLog { return &e.log }

// Combatants returns the roster in its final, mutated state.
func (e *Encounter) Combatants() []*Combatant { return e.combatants }

// Initiative returns the fixed turn order computed at battle start.
func (e *Encounter) Initiative() []*Combatant { return e.initiative }

// pickTarget returns the first other alive combatant in original roster
// order (not initiative order).
func (e *Encounter) pickTarget(actor *Combatant) *Combatant {
	for _, c := range e.combatants {
		if c != actor && c.IsAlive() {
			return c
		}
	}
	return nil
}

func (e *Encounter) countAlive() int {
	n := 0
	for _, c := range e.combatants {
		if c.IsAlive() {
			n++
		}
	}
	return n
}
