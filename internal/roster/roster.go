// Package roster turns persisted fighter templates into battle-ready
// combatants. Templates are immutable blueprints; every battle (and every
// simulation trial) gets freshly built combatants so runs never share state.
package roster

import (
	"fmt"

	"github.com/PFAdminGH/ArenaVerse/internal/combat"
	"github.com/PFAdminGH/ArenaVerse/internal/game"
)

// Build constructs a fresh combatant from a template. When the template's
// stat line has no explicit HP entry, the pool is derived from constitution.
// Hotbar skills are new instances with cooldowns at zero.
func Build(ft game.FighterTemplate) (*combat.Combatant, error) {
	stats := ft.BaseStats.Clone()
	if stats == nil {
		stats = combat.Stats{}
	}
	if _, ok := stats[combat.StatHP]; !ok {
		stats[combat.StatHP] = combat.SecondaryHP(stats.Get(combat.StatConstitution))
	}

	equipment := make([]combat.Item, 0, len(ft.Equipment))
	for _, e := range ft.Equipment {
		equipment = append(equipment, combat.Item{Name: e.Name, Bonus: e.Bonus.Clone()})
	}

	hotbar := make([]*combat.Skill, 0, len(ft.Hotbar))
	for _, key := range ft.Hotbar {
		s, err := combat.NewSkill(combat.SkillKind(key))
		if err != nil {
			return nil, fmt.Errorf("fighter %s: %w", ft.Name, err)
		}
		hotbar = append(hotbar, s)
	}

	c, err := combat.NewCombatant(ft.Name, stats, equipment, hotbar)
	if err != nil {
		return nil, fmt.Errorf("fighter %s: %w", ft.Name, err)
	}
	return c, nil
}

// BuildPair builds fresh combatants for both templates. Used per battle and
// per simulation trial so each run starts from full HP and clean cooldowns.
func BuildPair(a, b game.FighterTemplate) (*combat.Combatant, *combat.Combatant, error) {
	ca, err := Build(a)
	if err != nil {
		return nil, nil, err
	}
	cb, err := Build(b)
	if err != nil {
		return nil, nil, err
	}
	return ca, cb, nil
}
