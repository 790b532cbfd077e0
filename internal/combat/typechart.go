package combat

import (
	"strings"

	"github.com/samdwyer/creaturebattle/internal/gamedata"
)

// Effectiveness returns the combined multiplier of attackType against every
// defender type. Factors compose multiplicatively; unknown types, and a nil
// chart, are neutral.
func Effectiveness(chart *gamedata.TypeChart, attackType string, defenderTypes []string) float64 {
	multiplier := 1.0
	if chart == nil {
		return multiplier
	}
	for _, t := range defenderTypes {
		multiplier *= chart.Multiplier(attackType, t)
	}
	return multiplier
}

// EffectivenessMessage describes a type multiplier, or returns "" when it
// is neutral.
func EffectivenessMessage(multiplier float64, defender string) string {
	switch {
	case multiplier == 0:
		return "It doesn't affect " + defender + "..."
	case multiplier > 1:
		return "It's super effective!"
	case multiplier < 1:
		return "It's not very effective..."
	default:
		return ""
	}
}

func typeEquals(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}
