package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/PFAdminGH/ArenaVerse/internal/combat"
	"github.com/PFAdminGH/ArenaVerse/internal/constants"
	"github.com/PFAdminGH/ArenaVerse/internal/game"
)

type equipmentEntry struct {
	Name  string       `json:"name"`
	Bonus combat.Stats `json:"bonus"`
}

type fighterEntry struct {
	Name      string           `json:"name"`
	Stats     combat.Stats     `json:"stats"`
	Equipment []equipmentEntry `json:"equipment"`
	Hotbar    []string         `json:"hotbar"`
}

type rawConfig struct {
	FighterList []fighterEntry `json:"fighter_list"`
	Server      *struct {
		Address string `json:"address"`
	} `json:"server"`
}

// LoadedConfig contains the fighters to seed and the server address to bind to.
type LoadedConfig struct {
	Fighters      []game.FighterTemplate
	ServerAddress string
}

// LoadConfig reads the configuration file at path and returns the fighter
// roster and server address. It requires the key `fighter_list` (snake_case).
func LoadConfig(path string) (*LoadedConfig, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	var rc rawConfig
	if err := json.Unmarshal(b, &rc); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	entries := rc.FighterList
	if len(entries) == 0 {
		return nil, fmt.Errorf("config file %s: fighter_list is empty (provide 'fighter_list' array)", path)
	}

	out := make([]game.FighterTemplate, 0, len(entries))
	for _, f := range entries {
		if strings.TrimSpace(f.Name) == "" {
			return nil, fmt.Errorf("config file %s: fighter entry missing 'name'", path)
		}
		equipment := make([]game.EquipmentSpec, 0, len(f.Equipment))
		for _, e := range f.Equipment {
			if strings.TrimSpace(e.Name) == "" {
				return nil, fmt.Errorf("config file %s: fighter '%s' has an equipment entry missing 'name'", path, f.Name)
			}
			equipment = append(equipment, game.EquipmentSpec{Name: e.Name, Bonus: e.Bonus.Clone()})
		}
		out = append(out, game.FighterTemplate{
			Name:      f.Name,
			BaseStats: f.Stats.Clone(),
			Equipment: equipment,
			Hotbar:    append([]string(nil), f.Hotbar...),
		})
	}

	// Cross-entry validation: unique fighter names (case-insensitive), a
	// non-empty hotbar of known skill keys, and enough stats to derive a
	// positive hit point pool.
	nameSet := make(map[string]struct{}, len(out))
	for _, ft := range out {
		ln := strings.ToLower(strings.TrimSpace(ft.Name))
		if _, exists := nameSet[ln]; exists {
			return nil, fmt.Errorf("config file %s: duplicate fighter name '%s'", path, ft.Name)
		}
		nameSet[ln] = struct{}{}

		if len(ft.Hotbar) == 0 {
			return nil, fmt.Errorf("config file %s: fighter '%s' has an empty hotbar", path, ft.Name)
		}
		for _, key := range ft.Hotbar {
			if _, err := combat.NewSkill(combat.SkillKind(key)); err != nil {
				return nil, fmt.Errorf("config file %s: fighter '%s': %w", path, ft.Name, err)
			}
		}

		if ft.BaseStats.Get(combat.StatHP) <= 0 && ft.BaseStats.Get(combat.StatConstitution) <= 0 {
			return nil, fmt.Errorf("config file %s: fighter '%s' needs a positive '%s' or '%s' stat", path, ft.Name, combat.StatHP, combat.StatConstitution)
		}
	}

	addr := constants.DefaultAddress
	if rc.Server != nil && rc.Server.Address != "" {
		addr = rc.Server.Address
	}

	return &LoadedConfig{
		Fighters:      out,
		ServerAddress: addr,
	}, nil
}
