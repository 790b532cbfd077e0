package combat

import (
	"fmt"

	"github.com/samdwyer/creaturebattle/internal/gamedata"
)

// ApplyEffects resolves a move's secondary effects in a fixed order:
// status, stat stages, protect, recharge, flinch, drain, recoil, weather.
// Every step is independent, so several can fire from one move. damage is
// the value the move is dealing this turn (0 for non-damaging moves).
// Status, stat stages and flinch aimed at a fainted combatant are skipped.
func ApplyEffects(attacker, defender *Combatant, move *gamedata.MoveDef, damage int, rng RNG) []string {
	var messages []string
	fx := move.Effects

	if fx.Status != gamedata.StatusNone {
		if rollPercent(rng) <= gamedata.ChanceOrAlways(fx.StatusChance) &&
			defender.Status == gamedata.StatusNone && !defender.Fainted() {
			defender.Status = fx.Status
			messages = append(messages, fmt.Sprintf("%s is now affected by %s!", defender.Name, fx.Status))
		}
	}

	for _, change := range fx.StatChanges {
		if rollPercent(rng) > gamedata.ChanceOrAlways(change.Chance) {
			continue
		}
		target := defender
		if change.TargetsSelf() {
			target = attacker
		}
		if target.Fainted() || change.Delta == 0 {
			continue
		}
		target.Boost(change.Stat, change.Delta)
		messages = append(messages, stageMessage(target.Name, change.Stat, change.Delta))
	}

	if fx.Protect {
		attacker.Protected = true
		messages = append(messages, attacker.Name+" protected itself!")
	}

	if fx.Recharge {
		attacker.Recharging = true
		messages = append(messages, attacker.Name+" must recharge next turn!")
	}

	if fx.FlinchChance > 0 && rollPercent(rng) <= fx.FlinchChance && !defender.Fainted() {
		defender.Flinched = true
		messages = append(messages, defender.Name+" flinched!")
	}

	if fx.DrainPercent > 0 && damage > 0 {
		if healed := attacker.Heal(damage * fx.DrainPercent / 100); healed > 0 {
			messages = append(messages, fmt.Sprintf("%s drained %d HP!", attacker.Name, healed))
		}
	}

	if fx.RecoilPercent > 0 && damage > 0 {
		recoil := attacker.TakeDamage(damage * fx.RecoilPercent / 100)
		messages = append(messages, fmt.Sprintf("%s is hit with recoil for %d HP!", attacker.Name, recoil))
	}

	if fx.Weather != "" {
		messages = append(messages, fmt.Sprintf("The weather changed to %s!", fx.Weather))
	}

	return messages
}

func stageMessage(name string, stat gamedata.Stat, delta int) string {
	switch {
	case delta >= 2:
		return fmt.Sprintf("%s's %s rose sharply!", name, stat)
	case delta > 0:
		return fmt.Sprintf("%s's %s rose!", name, stat)
	case delta <= -2:
		return fmt.Sprintf("%s's %s harshly fell!", name, stat)
	default:
		return fmt.Sprintf("%s's %s fell!", name, stat)
	}
}
