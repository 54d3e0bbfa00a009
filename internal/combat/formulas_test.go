package combat

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSigmoidOpposedBounds(t *testing.T) {
	require.InDelta(t, 50.0, SigmoidOpposed(10, 10), 0.0001)
	require.LessOrEqual(t, SigmoidOpposed(10000, 0), 95.0)
	require.GreaterOrEqual(t, SigmoidOpposed(0, 10000), 5.0)
}

func TestChanceToHitNeverCertain(t *testing.T) {
	godlike := Stats{StatAccuracy: 500, StatAgility: 500}
	helpless := Stats{}
	require.LessOrEqual(t, ChanceToHit(godlike, helpless), 95.0)

	blind := Stats{}
	untouchable := Stats{StatEvasion: 500}
	require.GreaterOrEqual(t, ChanceToHit(blind, untouchable), 5.0)
}

func TestRawDamage(t *testing.T) {
	att := Stats{StatWeaponDamage: 5, StatStrength: 14, StatIntelligence: 6}
	require.InDelta(t, 12.0, RawDamage(att, DamagePhysical), 0.0001)
	require.InDelta(t, 8.0, RawDamage(att, DamageMagical), 0.0001)

	// Missing keys default to zero rather than failing.
	require.InDelta(t, 0.0, RawDamage(Stats{}, DamagePhysical), 0.0001)
}

func TestMitigation(t *testing.T) {
	def := Stats{StatArmor: 8, StatResist: 10}
	require.InDelta(t, 2.0, Mitigation(def, DamagePhysical), 0.0001)
	require.InDelta(t, 3.0, Mitigation(def, DamageMagical), 0.0001)
}

func TestTrueDamageBypassesAllMitigation(t *testing.T) {
	for _, def := range []Stats{
		{},
		{StatArmor: 9999, StatResist: 9999},
		{StatArmor: -5},
	} {
		require.Zero(t, Mitigation(def, DamageTrue))
	}
}

func TestSecondaryHP(t *testing.T) {
	require.Equal(t, 120, SecondaryHP(12))
	require.Equal(t, 0, SecondaryHP(0))
}
