package combat

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStackRejectKeepsOriginal(t *testing.T) {
	c := mustCombatant(t, "Target", Stats{StatHP: 50}, nil)

	first := &StatusEffect{Tag: "ward", Duration: 3, Magnitude: 2, Rule: StackReject}
	again := &StatusEffect{Tag: "ward", Duration: 9, Magnitude: 7, Rule: StackReject}
	c.ApplyEffect(first)
	c.ApplyEffect(again)

	require.Len(t, c.Effects(), 1)
	require.Equal(t, 3, c.Effects()[0].Duration)
	require.Equal(t, 2, c.Effects()[0].Magnitude)
}

func TestStackRefreshTakesLaterDurationAndMaxMagnitude(t *testing.T) {
	c := mustCombatant(t, "Target", Stats{StatHP: 50}, nil)

	c.ApplyEffect(&StatusEffect{Tag: "burn", Duration: 2, Magnitude: 4, Rule: StackRefresh})
	c.ApplyEffect(&StatusEffect{Tag: "burn", Duration: 5, Magnitude: 1, Rule: StackRefresh})

	require.Len(t, c.Effects(), 1)
	require.Equal(t, 5, c.Effects()[0].Duration)
	require.Equal(t, 4, c.Effects()[0].Magnitude, "magnitude keeps the max of old and new")
}

func TestStackAddAppendsIndependentInstances(t *testing.T) {
	c := mustCombatant(t, "Target", Stats{StatHP: 50}, nil)

	c.ApplyEffect(&StatusEffect{Tag: "bleed", Duration: 2, Rule: StackAdd})
	c.ApplyEffect(&StatusEffect{Tag: "bleed", Duration: 2, Rule: StackAdd})

	require.Len(t, c.Effects(), 2)
}

func TestStackMergeRespectsCap(t *testing.T) {
	c := mustCombatant(t, "Target", Stats{StatHP: 50}, nil)

	for i := 0; i < 5; i++ {
		c.ApplyEffect(&StatusEffect{Tag: "charge", Duration: 2, Rule: StackMerge, Stacks: 1, MaxStacks: 3})
	}

	require.Len(t, c.Effects(), 1)
	require.Equal(t, 3, c.Effects()[0].Stacks)
}

func TestPoisonSnapshotsCasterIntOnApply(t *testing.T) {
	caster := mustCombatant(t, "Witch", Stats{StatIntelligence: 20, StatHP: 30}, nil)
	victim := mustCombatant(t, "Victim", Stats{StatHP: 30}, nil)

	victim.ApplyEffect(NewPoison(caster, 2))
	require.Len(t, victim.Effects(), 1)
	// 20 * 0.15 = 3
	require.Equal(t, 3, victim.Effects()[0].Magnitude)
}

func TestPoisonMagnitudeFloorsAtOne(t *testing.T) {
	caster := mustCombatant(t, "Dabbler", Stats{StatHP: 10}, nil)
	victim := mustCombatant(t, "Victim", Stats{StatHP: 10}, nil)

	victim.ApplyEffect(NewPoison(caster, 2))
	require.Equal(t, 1, victim.Effects()[0].Magnitude)
}

func TestShieldAddsFlatArmor(t *testing.T) {
	caster := mustCombatant(t, "Sage", Stats{StatIntelligence: 20, StatHP: 30}, nil)
	ally := mustCombatant(t, "Ally", Stats{StatArmor: 2, StatHP: 30}, nil)

	ally.ApplyEffect(NewShield(caster, 2))
	// 2 base + 20*0.4 = 10
	require.Equal(t, 10, ally.TotalStats().Get(StatArmor))
}

func TestRageModifiers(t *testing.T) {
	c := mustCombatant(t, "Berserker", Stats{StatStrength: 10, StatAccuracy: 10, StatHP: 30}, nil)

	c.ApplyEffect(NewRage(c, 1))
	require.Equal(t, 15, c.TotalStats().Get(StatStrength))
	require.Equal(t, 9, c.TotalStats().Get(StatAccuracy))
}

func TestTickEffectsLifecycle(t *testing.T) {
	caster := mustCombatant(t, "Witch", Stats{StatIntelligence: 20, StatHP: 30}, nil)
	victim := mustCombatant(t, "Victim", Stats{StatHP: 30, StatArmor: 1000}, nil)

	victim.ApplyEffect(NewPoison(caster, 2))

	// Tick damage is true damage: the huge armor does nothing.
	victim.TickEffects()
	require.Equal(t, 27, victim.HP())
	require.Len(t, victim.Effects(), 1)
	require.Equal(t, 1, victim.Effects()[0].Duration)

	// Duration strictly decreases; removal happens exactly at zero.
	victim.TickEffects()
	require.Equal(t, 24, victim.HP())
	require.Empty(t, victim.Effects())

	// Expired effects no longer tick.
	victim.TickEffects()
	require.Equal(t, 24, victim.HP())
}

func TestExpiredModifiersVanishFromAggregation(t *testing.T) {
	caster := mustCombatant(t, "Sage", Stats{StatIntelligence: 20, StatHP: 30}, nil)
	ally := mustCombatant(t, "Ally", Stats{StatHP: 30}, nil)

	ally.ApplyEffect(NewShield(caster, 1))
	require.Equal(t, 8, ally.TotalStats().Get(StatArmor))

	ally.TickEffects()
	require.Equal(t, 0, ally.TotalStats().Get(StatArmor))
}
