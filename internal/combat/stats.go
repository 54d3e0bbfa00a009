package combat

// Canonical stat keys. Every system that reads or writes a stat pulls from
// this set so we never end up with "STR" vs "Strength" mismatches. Attribute
// keys use the short uppercase codes; gear-derived keys stay lowercase to
// match roster data.
const (
	StatStrength     = "STR"
	StatConstitution = "CON"
	StatDexterity    = "DEX"
	StatIntelligence = "INT"
	StatAgility      = "AGI"
	StatAccuracy     = "ACC"
	StatEvasion      = "EVA"
	StatCritRate     = "CRT"
	StatHP           = "HP"

	StatWeaponDamage = "weapon_damage"
	StatArmor        = "armor"
	StatResist       = "resist"
)

// Stats is a mapping from stat key to integer value. Keys that are absent
// read as zero; effects and items may introduce new keys without any change
// to the aggregation code.
type Stats map[string]int

// Get returns the value for key, defaulting to zero when absent.
func (s Stats) Get(key string) int {
	return s[key]
}

// Clone returns an independent copy so callers can mutate freely.
func (s Stats) Clone() Stats {
	out := make(Stats, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}
