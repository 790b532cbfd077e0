package combat

import (
	"fmt"

	"github.com/samdwyer/creaturebattle/internal/gamedata"
)

// ItemResult is the outcome of using an item on an ally.
type ItemResult struct {
	Success  bool
	Healed   int
	Cured    gamedata.StatusCondition
	Messages []string
}

func refuse(format string, args ...any) ItemResult {
	return ItemResult{Messages: []string{fmt.Sprintf(format, args...)}}
}

// UseItem applies a healing or status-curing item to an ally. Balls belong
// to AttemptCapture and are refused here, as are items that cannot be used
// in battle. Failures are reported, never returned as errors.
func UseItem(item *gamedata.ItemDef, target *Combatant) ItemResult {
	if item == nil {
		return refuse("That item is unknown.")
	}
	if target == nil {
		return refuse("No target selected.")
	}
	if !item.BattleUsable {
		return refuse("%s can't be used in battle.", item.Name)
	}

	switch item.Category {
	case gamedata.CategoryBall:
		return refuse("%s can't be used on an ally!", item.Name)
	case gamedata.CategoryHealing:
		return heal(item, target)
	case gamedata.CategoryStatusCure:
		return cure(item, target)
	default:
		return refuse("%s has no effect in battle.", item.Name)
	}
}

func heal(item *gamedata.ItemDef, target *Combatant) ItemResult {
	if target.Fainted() {
		return refuse("%s has fainted. %s won't work.", target.Name, item.Name)
	}
	curable := target.Status != gamedata.StatusNone && item.Cure(target.Status)
	if target.HP >= target.MaxHP() && !curable {
		return refuse("%s's HP is already full.", target.Name)
	}

	res := ItemResult{Success: true}
	amount := item.Healing
	if item.FullHeal {
		amount = target.MaxHP()
	}
	if res.Healed = target.Heal(amount); res.Healed > 0 {
		res.Messages = append(res.Messages, fmt.Sprintf("%s recovered %d HP!", target.Name, res.Healed))
	}
	if curable {
		res.Cured = target.Status
		target.Status = gamedata.StatusNone
		res.Messages = append(res.Messages, fmt.Sprintf("%s was cured of %s!", target.Name, res.Cured))
	}
	return res
}

func cure(item *gamedata.ItemDef, target *Combatant) ItemResult {
	if target.Status == gamedata.StatusNone {
		return refuse("%s has no status problem.", target.Name)
	}
	if !item.Cure(target.Status) {
		return refuse("%s had no effect on %s.", item.Name, target.Name)
	}
	cured := target.Status
	target.Status = gamedata.StatusNone
	return ItemResult{
		Success:  true,
		Cured:    cured,
		Messages: []string{fmt.Sprintf("%s was cured of %s!", target.Name, cured)},
	}
}
