package gamedata

import "strings"

// Stat names a combatant statistic. The canonical spelling is the long,
// hyphenated form used by the embedded data files.
type Stat string

const (
	StatHP        Stat = "hp"
	StatAttack    Stat = "attack"
	StatDefense   Stat = "defense"
	StatSpAttack  Stat = "special-attack"
	StatSpDefense Stat = "special-defense"
	StatSpeed     Stat = "speed"

	// Stage-only stats: they can be boosted but have no base value.
	StatAccuracy Stat = "accuracy"
	StatEvasion  Stat = "evasion"
)

// BaseStats lists the stats every species defines, in display order.
var BaseStats = []Stat{StatHP, StatAttack, StatDefense, StatSpAttack, StatSpDefense, StatSpeed}

var statAliases = map[string]Stat{
	"hp":              StatHP,
	"atk":             StatAttack,
	"attack":          StatAttack,
	"def":             StatDefense,
	"defense":         StatDefense,
	"spa":             StatSpAttack,
	"sp_atk":          StatSpAttack,
	"special-attack":  StatSpAttack,
	"spd":             StatSpDefense,
	"sp_def":          StatSpDefense,
	"special-defense": StatSpDefense,
	"spe":             StatSpeed,
	"speed":           StatSpeed,
	"accuracy":        StatAccuracy,
	"evasion":         StatEvasion,
}

// ParseStat maps any of the stat spellings seen in source data onto the
// canonical Stat. The boolean is false for unrecognised names.
func ParseStat(name string) (Stat, bool) {
	stat, ok := statAliases[strings.ToLower(strings.TrimSpace(name))]
	return stat, ok
}

// StatusCondition is the single persistent status a combatant may carry.
type StatusCondition string

const (
	StatusNone      StatusCondition = ""
	StatusSleep     StatusCondition = "sleep"
	StatusFreeze    StatusCondition = "freeze"
	StatusParalysis StatusCondition = "paralysis"
	StatusPoison    StatusCondition = "poison"
	StatusBurn      StatusCondition = "burn"
)

// statusCaptureModifiers are the capture bonuses granted by each status.
var statusCaptureModifiers = map[StatusCondition]float64{
	StatusSleep:     2.0,
	StatusFreeze:    2.0,
	StatusParalysis: 1.5,
	StatusPoison:    1.5,
	StatusBurn:      1.5,
}

// StatusCaptureModifier returns the capture multiplier for a status.
// No status, or an unknown one, is worth 1.0.
func StatusCaptureModifier(status StatusCondition) float64 {
	if mod, ok := statusCaptureModifiers[StatusCondition(strings.ToLower(string(status)))]; ok {
		return mod
	}
	return 1.0
}

// UnmarshalText canonicalises stat aliases while decoding, so data files may
// use either "atk" or "attack". Unknown names are kept lower-cased.
func (s *Stat) UnmarshalText(text []byte) error {
	if stat, ok := ParseStat(string(text)); ok {
		*s = stat
		return nil
	}
	*s = Stat(strings.ToLower(string(text)))
	return nil
}
