package combat

import "fmt"

// Skills are a closed set of variants dispatched by kind. Each instance
// lives in one combatant's hotbar and owns its cooldown counter, so the
// encounter can simply tick every skill at the end of the owner's turn.

// SkillKind identifies the executable behaviour of a skill.
type SkillKind string

const (
	SkillBasicAttack SkillKind = "basic_attack"
	SkillPowerStrike SkillKind = "power_strike"
	SkillVenomStrike SkillKind = "venom_strike"
	SkillMend        SkillKind = "mend"
)

// Skill is an executable action bound to a cooldown counter (0 = ready).
// Constructed once, reused across the owner's lifetime, mutated only by
// tick/reset.
type Skill struct {
	Kind        SkillKind
	Name        string
	CooldownMax int
	currentCD   int
}

// NewBasicAttack is the fallback physical hit every unit can perform.
func NewBasicAttack() *Skill {
	return &Skill{Kind: SkillBasicAttack, Name: "Basic Attack"}
}

// NewPowerStrike deals double raw damage and enrages the attacker.
func NewPowerStrike() *Skill {
	return &Skill{Kind: SkillPowerStrike, Name: "Power Strike", CooldownMax: 2}
}

// NewVenomStrike deals normal damage and poisons the target.
func NewVenomStrike() *Skill {
	return &Skill{Kind: SkillVenomStrike, Name: "Venom Strike", CooldownMax: 3}
}

// NewMend restores some of the caster's HP based on INT.
func NewMend() *Skill {
	return &Skill{Kind: SkillMend, Name: "Mend", CooldownMax: 3}
}

// NewSkill builds a fresh skill instance for a roster key.
func NewSkill(kind SkillKind) (*Skill, error) {
	switch kind {
	case SkillBasicAttack:
		return NewBasicAttack(), nil
	case SkillPowerStrike:
		return NewPowerStrike(), nil
	case SkillVenomStrike:
		return NewVenomStrike(), nil
	case SkillMend:
		return NewMend(), nil
	}
	return nil, fmt.Errorf("unknown skill kind %q", kind)
}

// IsReady reports whether the skill can be executed this turn.
func (s *Skill) IsReady() bool { return s.currentCD == 0 }

// Cooldown returns the remaining cooldown in turns.
func (s *Skill) Cooldown() int { return s.currentCD }

// TickCooldown advances recharge by one turn. Never goes negative.
func (s *Skill) TickCooldown() {
	if s.currentCD > 0 {
		s.currentCD--
	}
}

func (s *Skill) resetCooldown() { s.currentCD = s.CooldownMax }

// secondaryEffects maps a skill kind to the rider effect it attaches after
// damage resolution. A kind without an entry simply has no rider; the core
// damage still lands, so a minimal build missing an effect degrades
// gracefully instead of aborting the round.
var secondaryEffects = map[SkillKind]func(actor, target *Combatant){
	SkillPowerStrike: func(actor, _ *Combatant) { actor.ApplyEffect(NewRage(actor, 1)) },
	SkillVenomStrike: func(actor, target *Combatant) { target.ApplyEffect(NewPoison(actor, 2)) },
}

// Execute runs the skill against the target using the encounter-shared RNG
// and returns the structured outcome. Every path, including a miss, ends by
// resetting this skill's cooldown: a miss still spends the action.
//
// The draw order is fixed and part of the determinism contract: hit roll
// first, then crit roll. Damage always routes through the formula pipeline;
// any rider effect attaches after damage resolution, against the now-current
// state.
func (s *Skill) Execute(actor, target *Combatant, rng *RNG) ActionOutcome {
	defer s.resetCooldown()

	out := ActionOutcome{Actor: actor.Name(), Target: target.Name(), Skill: s.Name}

	if s.Kind == SkillMend {
		// Self-heal: no opposed rolls, no draws from the stream.
		out.Target = actor.Name()
		out.Hit = true
		amount := 5 + actor.TotalStats().Get(StatIntelligence)/2
		out.Healed = actor.Heal(amount)
		return out
	}

	attStats := actor.TotalStats()
	defStats := target.TotalStats()

	if !rng.Bool(ChanceToHit(attStats, defStats) / 100) {
		return out
	}
	out.Hit = true

	dmg := RawDamage(attStats, DamagePhysical)
	if s.Kind == SkillPowerStrike {
		dmg *= 2
	}
	if rng.Bool(ChanceToCrit(attStats, defStats) / 100) {
		out.Crit = true
		dmg *= CritMultiplier
	}
	out.Damage = target.TakeDamage(int(dmg), DamagePhysical)

	if attach, ok := secondaryEffects[s.Kind]; ok {
		attach(actor, target)
	}
	return out
}

// selectFirstReady iterates the hotbar in stored order and returns the first
// ready skill. When everything is recharging the caller falls back to a
// parameterless basic attack.
func selectFirstReady(hotbar []*Skill) *Skill {
	for _, s := range hotbar {
		if s.IsReady() {
			return s
		}
	}
	return NewBasicAttack()
}
