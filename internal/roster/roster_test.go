package roster

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/PFAdminGH/ArenaVerse/internal/combat"
	"github.com/PFAdminGH/ArenaVerse/internal/game"
)

func template() game.FighterTemplate {
	return game.FighterTemplate{
		Name:      "Aldric",
		BaseStats: combat.Stats{combat.StatStrength: 14, combat.StatConstitution: 12},
		Equipment: []game.EquipmentSpec{
			{Name: "Longsword", Bonus: combat.Stats{combat.StatWeaponDamage: 5}},
		},
		Hotbar: []string{"power_strike", "basic_attack"},
	}
}

func TestBuildDerivesHPFromConstitution(t *testing.T) {
	c, err := Build(template())
	require.NoError(t, err)

	// CON 12 -> 120 HP when the stat line carries no explicit pool.
	require.Equal(t, 120, c.MaxHP())
	require.Equal(t, 120, c.HP())
	require.Equal(t, 5, c.TotalStats().Get(combat.StatWeaponDamage))
}

func TestBuildKeepsExplicitHP(t *testing.T) {
	ft := template()
	ft.BaseStats[combat.StatHP] = 33
	c, err := Build(ft)
	require.NoError(t, err)
	require.Equal(t, 33, c.MaxHP())
}

func TestBuildHotbarOrderAndFreshness(t *testing.T) {
	c1, err := Build(template())
	require.NoError(t, err)
	c2, err := Build(template())
	require.NoError(t, err)

	require.Equal(t, combat.SkillPowerStrike, c1.Hotbar()[0].Kind)
	require.Equal(t, combat.SkillBasicAttack, c1.Hotbar()[1].Kind)

	// Skill instances are never shared between builds.
	require.NotSame(t, c1.Hotbar()[0], c2.Hotbar()[0])
}

func TestBuildRejectsUnknownSkillKey(t *testing.T) {
	ft := template()
	ft.Hotbar = []string{"summon_dragon"}
	_, err := Build(ft)
	require.Error(t, err)
}

func TestBuildDoesNotMutateTemplate(t *testing.T) {
	ft := template()
	_, err := Build(ft)
	require.NoError(t, err)
	_, hasHP := ft.BaseStats[combat.StatHP]
	require.False(t, hasHP, "derived HP must stay out of the template")
}

func TestBuildPair(t *testing.T) {
	a := template()
	b := template()
	b.Name = "Borin"

	ca, cb, err := BuildPair(a, b)
	require.NoError(t, err)
	require.Equal(t, "Aldric", ca.Name())
	require.Equal(t, "Borin", cb.Name())
}
