package combat

import "math"

// Pure combat maths: stat maps in, numbers out. Nothing in this file touches
// game objects or randomness, so every function is safe to call any number
// of times with the same inputs.

// DamageType selects the mitigation rule applied by the defender.
type DamageType string

const (
	DamagePhysical DamageType = "physical"
	DamageMagical  DamageType = "magical"
	// DamageTrue bypasses all mitigation. It exists for damage-over-time
	// effects that should not be reducible by gear.
	DamageTrue DamageType = "true"
)

// CritMultiplier is applied to raw damage after the base calculation and
// before mitigation subtraction.
const CritMultiplier = 1.5

const (
	chanceFloor   = 5.0
	chanceCeiling = 95.0
	chanceSlope   = 0.15
)

// SigmoidOpposed maps an attacker-vs-defender stat difference onto a bounded
// logistic curve. The result is a percentage clamped to [5, 95]: never a
// certain hit, never a certain miss.
func SigmoidOpposed(att, def float64) float64 {
	return chanceFloor + (chanceCeiling-chanceFloor)/(1+math.Exp(-chanceSlope*(att-def)))
}

// ChanceToHit returns the percent chance for the attacker to land a hit:
// accuracy plus agility opposed by the defender's evasion.
func ChanceToHit(att, def Stats) float64 {
	return SigmoidOpposed(
		float64(att.Get(StatAccuracy)+att.Get(StatAgility)),
		float64(def.Get(StatEvasion)),
	)
}

// ChanceToCrit returns the percent chance for a landed hit to crit:
// critical rating opposed by the defender's evasion.
func ChanceToCrit(att, def Stats) float64 {
	return SigmoidOpposed(
		float64(att.Get(StatCritRate)),
		float64(def.Get(StatEvasion)),
	)
}

// RawDamage is the pre-mitigation damage for one hit: weapon damage plus
// half the relevant offensive stat (STR for physical, INT for magical).
func RawDamage(att Stats, dtype DamageType) float64 {
	stat := att.Get(StatStrength)
	if dtype == DamageMagical {
		stat = att.Get(StatIntelligence)
	}
	return float64(att.Get(StatWeaponDamage)) + 0.5*float64(stat)
}

// Mitigation is the flat damage reduction the defender's stats provide:
// 25% of armor against physical, 30% of resist against magical, nothing
// against true damage.
func Mitigation(def Stats, dtype DamageType) float64 {
	switch dtype {
	case DamagePhysical:
		return float64(def.Get(StatArmor)) * 0.25
	case DamageMagical:
		return float64(def.Get(StatResist)) * 0.30
	}
	return 0
}

// SecondaryHP derives maximum hit points from constitution for rosters that
// do not set the HP key directly.
func SecondaryHP(con int) int {
	return con * 10
}
