package combat

import (
	"math"

	"github.com/samdwyer/creaturebattle/internal/gamedata"
)

const (
	// CriticalChance is the probability of a critical hit (1/16).
	CriticalChance     = 0.0625
	CriticalMultiplier = 1.5
	STABMultiplier     = 1.5

	// Damage rolls are uniform in [MinDamageRoll, 1.0].
	MinDamageRoll = 0.85
)

// DamageResult is the outcome of a single damage calculation.
type DamageResult struct {
	Damage         int
	Critical       bool
	TypeMultiplier float64
}

// attackStats picks the attacking and defending stats for a move's category.
func attackStats(attacker, defender *Combatant, move *gamedata.MoveDef) (int, int) {
	if move.Category == gamedata.CategorySpecial {
		return attacker.Stats.Get(gamedata.StatSpAttack), defender.Stats.Get(gamedata.StatSpDefense)
	}
	return attacker.Stats.Get(gamedata.StatAttack), defender.Stats.Get(gamedata.StatDefense)
}

// baseDamage evaluates ((2*L/5 + 2) * power * atk) / (def * 50) + 2.
func baseDamage(level, power, atk, def int) float64 {
	if level < 1 {
		level = 1
	}
	l := float64(level)
	return ((2*l/5+2)*float64(power)*float64(atk))/(float64(def)*50) + 2
}

// stab returns the same-type attack bonus of move for attacker.
func stab(attacker *Combatant, move *gamedata.MoveDef) float64 {
	if attacker.HasType(move.Type) {
		return STABMultiplier
	}
	return 1.0
}

// ComputeDamage calculates the damage of a single hit. The move must have
// base power. An immune defender takes exactly 0 and no random draws are
// made; any other hit deals at least 1. Draw order: critical, then roll.
func ComputeDamage(attacker, defender *Combatant, move *gamedata.MoveDef, chart *gamedata.TypeChart, rng RNG) DamageResult {
	typeMultiplier := Effectiveness(chart, move.Type, defender.Types)
	if typeMultiplier == 0 {
		return DamageResult{Damage: 0, TypeMultiplier: 0}
	}

	atk, def := attackStats(attacker, defender, move)
	base := baseDamage(attacker.Level, move.BasePower(), atk, def)

	critical := rng.Float64() < CriticalChance
	critMultiplier := 1.0
	if critical {
		critMultiplier = CriticalMultiplier
	}
	roll := MinDamageRoll + rng.Float64()*(1-MinDamageRoll)

	damage := int(math.Floor(base * stab(attacker, move) * typeMultiplier * critMultiplier * roll))
	if damage < 1 {
		damage = 1
	}
	return DamageResult{Damage: damage, Critical: critical, TypeMultiplier: typeMultiplier}
}

// EstimateDamage is the deterministic counterpart of ComputeDamage, using
// the expected critical and roll factors instead of drawing them. It
// returns the estimate and the type multiplier.
func EstimateDamage(attacker, defender *Combatant, move *gamedata.MoveDef, chart *gamedata.TypeChart) (float64, float64) {
	typeMultiplier := Effectiveness(chart, move.Type, defender.Types)
	if typeMultiplier == 0 || !move.HasPower() {
		return 0, typeMultiplier
	}
	atk, def := attackStats(attacker, defender, move)
	expectedCrit := 1 + CriticalChance*(CriticalMultiplier-1)
	expectedRoll := (MinDamageRoll + 1) / 2
	est := baseDamage(attacker.Level, move.BasePower(), atk, def) *
		stab(attacker, move) * typeMultiplier * expectedCrit * expectedRoll
	return est, typeMultiplier
}
