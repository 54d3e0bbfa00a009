package combat

import (
	"errors"
	"fmt"
)

// Combatant is a single entity inside a battle: it owns its stats, gear,
// active effects, hit points and skill hotbar, but knows nothing about turn
// order. Orchestration lives in Encounter.
//
// A combatant is created once per battle (fresh copies per trial when running
// repeated simulations), mutated by damage/heal/effect operations while the
// battle runs, and discarded afterwards.
type Combatant struct {
	name      string
	baseStats Stats
	equipment []Item
	hotbar    []*Skill
	effects   []*StatusEffect
	hp        int
}

var (
	ErrNoName      = errors.New("combatant requires a name")
	ErrEmptyHotbar = errors.New("combatant requires a non-empty hotbar")
)

// NewCombatant validates and builds a battle-ready combatant at full HP.
// An empty hotbar or a stat line that derives a non-positive maximum HP is a
// configuration error, rejected here rather than discovered mid-battle.
func NewCombatant(name string, base Stats, equipment []Item, hotbar []*Skill) (*Combatant, error) {
	if name == "" {
		return nil, ErrNoName
	}
	if len(hotbar) == 0 {
		return nil, fmt.Errorf("%s: %w", name, ErrEmptyHotbar)
	}
	c := &Combatant{
		name:      name,
		baseStats: base.Clone(),
		equipment: append([]Item(nil), equipment...),
		hotbar:    hotbar,
	}
	if c.MaxHP() < 1 {
		return nil, fmt.Errorf("%s: derived max HP must be positive", name)
	}
	c.hp = c.MaxHP()
	return c, nil
}

func (c *Combatant) Name() string     { return c.name }
func (c *Combatant) HP() int          { return c.hp }
func (c *Combatant) IsAlive() bool    { return c.hp > 0 }
func (c *Combatant) Hotbar() []*Skill { return c.hotbar }

// MaxHP reads the HP key from the aggregated stats, defaulting to 1 when
// absent. Dynamic because buffs or gear can raise HP mid-fight.
func (c *Combatant) MaxHP() int {
	if v, ok := c.TotalStats()[StatHP]; ok {
		return v
	}
	return 1
}

// Effects returns the currently attached status effects.
func (c *Combatant) Effects() []*StatusEffect { return c.effects }

// TotalStats returns a fresh aggregated stat map:
//
//  1. start from base stats,
//  2. add each equipped item's flat bonus,
//  3. add each active effect's flat modifiers,
//  4. apply each active effect's multiplicative modifiers as a running
//     product (value *= 1+fraction, compounding across effects; never
//     re-applied against the base, which would double count).
//
// Values are truncated to integers only at the end. The map is recomputed on
// every call because gear and effects can change between queries within the
// same turn.
func (c *Combatant) TotalStats() Stats {
	totals := make(map[string]float64, len(c.baseStats)+4)
	for k, v := range c.baseStats {
		totals[k] = float64(v)
	}
	for k, v := range sumItemStats(c.equipment) {
		totals[k] += float64(v)
	}
	for _, eff := range c.effects {
		for k, v := range eff.FlatMods {
			totals[k] += float64(v)
		}
	}
	for _, eff := range c.effects {
		for k, m := range eff.MultMods {
			totals[k] = totals[k] * (1 + m)
		}
	}
	out := make(Stats, len(totals))
	for k, v := range totals {
		out[k] = int(v)
	}
	return out
}

// TakeDamage applies mitigation for the damage type, subtracts HP and
// returns the post-mitigation damage actually dealt. A successful hit always
// lands at least 1 regardless of mitigation; HP never drops below zero.
func (c *Combatant) TakeDamage(raw int, dtype DamageType) int {
	reduction := Mitigation(c.TotalStats(), dtype)
	dealt := int(float64(raw) - reduction)
	if dealt < 1 {
		dealt = 1
	}
	c.hp -= dealt
	if c.hp < 0 {
		c.hp = 0
	}
	return dealt
}

// Heal restores HP, clamped to MaxHP, and returns the amount actually
// healed. Healing a dead combatant does nothing.
func (c *Combatant) Heal(amount int) int {
	if amount <= 0 || !c.IsAlive() {
		return 0
	}
	before := c.hp
	c.hp += amount
	if max := c.MaxHP(); c.hp > max {
		c.hp = max
	}
	return c.hp - before
}

// ApplyEffect resolves the stacking policy against any existing effect with
// the same tag and attaches the instance when the policy allows it. A brand
// new tag is always appended, and its snapshot hook fires immediately.
func (c *Combatant) ApplyEffect(e *StatusEffect) {
	var same *StatusEffect
	for _, cur := range c.effects {
		if cur.Tag == e.Tag {
			same = cur
			break
		}
	}
	if same == nil {
		c.effects = append(c.effects, e)
		e.onApply(c)
		return
	}

	switch e.Rule {
	case StackRefresh:
		same.Duration = e.Duration
		if e.Magnitude > same.Magnitude {
			same.Magnitude = e.Magnitude
		}
	case StackAdd:
		c.effects = append(c.effects, e)
		e.onApply(c)
	case StackMerge:
		same.Stacks++
		if same.Stacks > same.MaxStacks {
			same.Stacks = same.MaxStacks
		}
		same.Duration = e.Duration
	case StackReject:
		// ignored entirely
	}
}

// TickEffects runs once at the start of this combatant's turn, before target
// selection: each effect ticks, then its duration drops by one, and it is
// detached exactly when the duration reaches zero. Iteration walks a stable
// snapshot so mutation during a tick is safe.
func (c *Combatant) TickEffects() {
	snapshot := append([]*StatusEffect(nil), c.effects...)
	for _, eff := range snapshot {
		eff.onTick(c)
		eff.Duration--
	}
	kept := c.effects[:0]
	for _, eff := range c.effects {
		if eff.Duration > 0 {
			kept = append(kept, eff)
		}
	}
	c.effects = kept
}

func (c *Combatant) String() string {
	return fmt.Sprintf("%s (HP %d/%d)", c.name, c.hp, c.MaxHP())
}
