package game

import (
	"gorm.io/gorm"

	"github.com/PFAdminGH/ArenaVerse/internal/combat"
)

// EquipmentSpec is one equipped item in a fighter template: a display name
// plus the flat stat bonuses it contributes.
type EquipmentSpec struct {
	Name  string       `json:"name"`
	Bonus combat.Stats `json:"bonus"`
}

// FighterTemplate is a roster entry. Stats, equipment and hotbar come from
// the server config (arena_config.json) and are the source of truth; they
// are marked `gorm:"-"` so GORM never persists redundant copies. Only
// identity and aggregate tallies live in the database.
type FighterTemplate struct {
	gorm.Model
	Name string `json:"name" gorm:"uniqueIndex"`

	BaseStats combat.Stats    `json:"stats" gorm:"-"`
	Equipment []EquipmentSpec `json:"equipment" gorm:"-"`
	// Hotbar is the ordered list of skill keys; priority is list order.
	Hotbar []string `json:"hotbar" gorm:"-"`

	Wins   int `json:"wins"`
	Losses int `json:"losses"`
	Draws  int `json:"draws"`
}

// TableName keeps the persisted table as `fighter_templates`.
func (FighterTemplate) TableName() string { return "fighter_templates" }

// BattleRecord stores one finished encounter: the matchup, the seed that
// reproduces it, the result and the serialized battle log.
type BattleRecord struct {
	gorm.Model
	FighterA string `json:"fighter_a"`
	FighterB string `json:"fighter_b"`
	Seed     int64  `json:"seed"`
	// Winner is empty on a draw.
	Winner string `json:"winner"`
	Rounds int    `json:"rounds"`
	// LogJSON is the combat.BattleLog marshalled to JSON, stored as text so
	// a record alone is enough to re-verify the battle.
	LogJSON string `json:"-" gorm:"type:text"`
}

func (BattleRecord) TableName() string { return "battle_records" }

// IsDraw reports whether the battle ended with no sole survivor.
func (r *BattleRecord) IsDraw() bool { return r.Winner == "" }
