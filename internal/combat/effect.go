package combat

// Status effects are the buffs, debuffs and damage-over-time instances that
// stick to a combatant between turns. An effect is pure data: a closed kind
// enum, flat/multiplicative stat deltas filled in when the effect attaches,
// and an enumerated tick behaviour evaluated by the holder once per turn.
// There is no open-ended dispatch; extending the system means adding a kind
// and handling it in the two switches below.

// StackRule decides what happens when an effect with an already-present tag
// is applied again.
type StackRule int

const (
	// StackRefresh keeps the existing instance, resets its duration to the
	// new one and raises magnitude to the max of old and new.
	StackRefresh StackRule = iota
	// StackAdd appends an independent instance (common for DoTs).
	StackAdd
	// StackMerge increments the existing instance's stack counter up to its
	// cap and resets the duration; no new instance is added.
	StackMerge
	// StackReject silently ignores the new application.
	StackReject
)

// TickBehavior is what an effect does at the start of its holder's turn.
type TickBehavior int

const (
	TickNone TickBehavior = iota
	// TickTrueDamage deals Magnitude true damage to the holder each turn.
	TickTrueDamage
)

// EffectKind identifies the effect family for snapshot computation.
type EffectKind int

const (
	EffectGeneric EffectKind = iota
	EffectPoison
	EffectShield
	EffectRage
)

// StatusEffect is one timed modifier attached to a combatant.
type StatusEffect struct {
	Kind EffectKind
	// Tag identifies the effect family for stacking, e.g. "dot.poison".
	Tag      string
	Duration int
	// Source is who applied the effect. Back-reference only: the effect
	// never owns or mutates its source.
	Source *Combatant

	Rule      StackRule
	Stacks    int
	MaxStacks int

	// Magnitude is the generic strength number (tick damage for DoTs).
	Magnitude int
	// FlatMods are additive stat deltas contributed while active.
	FlatMods Stats
	// MultMods are fractional multiplicative deltas (+0.5 = +50%).
	MultMods map[string]float64

	Tick TickBehavior
}

const poisonIntPct = 0.15

// NewPoison is a damage-over-time effect scaling with the caster's INT.
// Re-application refreshes the timer rather than stacking copies.
func NewPoison(source *Combatant, duration int) *StatusEffect {
	return &StatusEffect{
		Kind:      EffectPoison,
		Tag:       "dot.poison",
		Duration:  duration,
		Source:    source,
		Rule:      StackRefresh,
		Stacks:    1,
		MaxStacks: 1,
		Tick:      TickTrueDamage,
	}
}

// NewShield is a flat armor boost that merges on re-apply.
func NewShield(source *Combatant, duration int) *StatusEffect {
	return &StatusEffect{
		Kind:      EffectShield,
		Tag:       "buff.shield",
		Duration:  duration,
		Source:    source,
		Rule:      StackMerge,
		Stacks:    1,
		MaxStacks: 1,
	}
}

// NewRage is +50% STR, -10% ACC. Refreshes rather than stacks.
func NewRage(source *Combatant, duration int) *StatusEffect {
	return &StatusEffect{
		Kind:      EffectRage,
		Tag:       "buff.rage",
		Duration:  duration,
		Source:    source,
		Rule:      StackRefresh,
		Stacks:    1,
		MaxStacks: 1,
	}
}

// onApply fires exactly once, when the effect is first attached. This is
// where an effect snapshots its magnitude and modifiers from the source's
// current aggregated stats; later changes to the source never retroactively
// alter an already-applied effect.
func (e *StatusEffect) onApply(target *Combatant) {
	switch e.Kind {
	case EffectPoison:
		casterInt := e.Source.TotalStats().Get(StatIntelligence)
		e.Magnitude = int(float64(casterInt) * poisonIntPct)
		if e.Magnitude < 1 {
			e.Magnitude = 1
		}
	case EffectShield:
		bonus := int(float64(e.Source.TotalStats().Get(StatIntelligence)) * 0.4)
		e.FlatMods = Stats{StatArmor: bonus}
	case EffectRage:
		e.MultMods = map[string]float64{
			StatStrength: 0.5,
			StatAccuracy: -0.1,
		}
	}
}

// onTick fires at the start of the holder's turn, before the encounter
// decrements the duration.
func (e *StatusEffect) onTick(target *Combatant) {
	switch e.Tick {
	case TickTrueDamage:
		target.TakeDamage(e.Magnitude, DamageTrue)
	}
}
