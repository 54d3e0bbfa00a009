package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "arena_config.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

const validConfig = `{
  "fighter_list": [
    {
      "name": "Aldric",
      "stats": {"STR": 14, "CON": 12, "DEX": 9, "ACC": 8, "CRT": 3},
      "equipment": [{"name": "Longsword", "bonus": {"weapon_damage": 5}}],
      "hotbar": ["power_strike", "basic_attack"]
    },
    {
      "name": "Borin",
      "stats": {"STR": 12, "CON": 12, "DEX": 7, "ACC": 8, "CRT": 4},
      "equipment": [{"name": "Hand Axe", "bonus": {"weapon_damage": 4}}],
      "hotbar": ["venom_strike", "basic_attack"]
    }
  ],
  "server": {"address": ":9090"}
}`

func TestLoadConfig(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, validConfig))
	require.NoError(t, err)

	require.Len(t, cfg.Fighters, 2)
	require.Equal(t, ":9090", cfg.ServerAddress)

	aldric := cfg.Fighters[0]
	require.Equal(t, "Aldric", aldric.Name)
	require.Equal(t, 14, aldric.BaseStats.Get("STR"))
	require.Len(t, aldric.Equipment, 1)
	require.Equal(t, 5, aldric.Equipment[0].Bonus.Get("weapon_damage"))
	require.Equal(t, []string{"power_strike", "basic_attack"}, aldric.Hotbar)
}

func TestLoadConfigDefaultsAddress(t *testing.T) {
	body := `{"fighter_list": [
		{"name": "Solo", "stats": {"CON": 10}, "hotbar": ["basic_attack"]}
	]}`
	cfg, err := LoadConfig(writeConfig(t, body))
	require.NoError(t, err)
	require.Equal(t, ":8080", cfg.ServerAddress)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.json"))
	require.Error(t, err)
}

func TestLoadConfigRejectsBadEntries(t *testing.T) {
	cases := map[string]string{
		"empty list":     `{"fighter_list": []}`,
		"missing name":   `{"fighter_list": [{"stats": {"CON": 10}, "hotbar": ["basic_attack"]}]}`,
		"duplicate name": `{"fighter_list": [{"name": "A", "stats": {"CON": 10}, "hotbar": ["basic_attack"]}, {"name": "a", "stats": {"CON": 10}, "hotbar": ["basic_attack"]}]}`,
		"empty hotbar":   `{"fighter_list": [{"name": "A", "stats": {"CON": 10}, "hotbar": []}]}`,
		"unknown skill":  `{"fighter_list": [{"name": "A", "stats": {"CON": 10}, "hotbar": ["summon_dragon"]}]}`,
		"no hp source":   `{"fighter_list": [{"name": "A", "stats": {"STR": 10}, "hotbar": ["basic_attack"]}]}`,
		"unnamed item":   `{"fighter_list": [{"name": "A", "stats": {"CON": 10}, "equipment": [{"bonus": {"armor": 1}}], "hotbar": ["basic_attack"]}]}`,
	}
	for label, body := range cases {
		t.Run(label, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, body))
			require.Error(t, err)
		})
	}
}
