package combat

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"

	"github.com/samdwyer/creaturebattle/internal/gamedata"
)

// OneHitKODamage is the damage reported for a one-hit-KO move.
const OneHitKODamage = 9999

// DefaultAlwaysFail names the moves that fail whatever the battle state.
var DefaultAlwaysFail = []string{"splash"}

// Outcome names the state a move resolution terminated in.
type Outcome string

const (
	OutcomeRecharging Outcome = "recharging"
	OutcomeCharging   Outcome = "charging"
	OutcomeFailed     Outcome = "failed"
	OutcomeMissed     Outcome = "missed"
	OutcomeProtected  Outcome = "protected"
	OutcomeOneHitKO   Outcome = "one_hit_ko"
	OutcomeHit        Outcome = "hit"
	OutcomeNoDamage   Outcome = "no_damage"
)

// multiHitWeights are the relative chances of striking 2, 3, 4 and 5 times.
var multiHitWeights = [...]struct{ hits, weight int }{
	{2, 35}, {3, 35}, {4, 15}, {5, 15},
}

// MoveResult is what one move resolution produced.
type MoveResult struct {
	Outcome        Outcome
	Damage         int
	Hits           int
	Criticals      int
	TypeMultiplier float64
	Messages       []string
}

// Critical reports whether any hit was critical.
func (r MoveResult) Critical() bool { return r.Criticals > 0 }

// Resolver runs the move resolution state machine over shared reference data.
type Resolver struct {
	chart      *gamedata.TypeChart
	alwaysFail map[string]bool
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithAlwaysFail replaces the set of moves that always fail.
func WithAlwaysFail(names ...string) Option {
	return func(r *Resolver) {
		r.alwaysFail = make(map[string]bool, len(names))
		for _, n := range names {
			r.alwaysFail[strings.ToLower(n)] = true
		}
	}
}

// NewResolver creates a resolver over a type chart.
func NewResolver(chart *gamedata.TypeChart, opts ...Option) *Resolver {
	r := &Resolver{chart: chart}
	WithAlwaysFail(DefaultAlwaysFail...)(r)
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// ResolveMove executes one move. The states run in order and the first
// terminal one returns: recharge, charge turn, always-fail, accuracy,
// protection, one-hit KO. Otherwise damage (if any) is dealt, secondary
// effects are applied, and the attacker's volatile flags from before this
// turn are cleared. Flags granted this turn (the attacker's protection,
// the defender's flinch) survive until their owner next acts, so the
// defender's flags are never cleared here. A fainted attacker fails
// without drawing from rng or touching either side.
func (r *Resolver) ResolveMove(attacker, defender *Combatant, move *gamedata.MoveDef, rng RNG) MoveResult {
	res := MoveResult{TypeMultiplier: 1}
	if attacker.Fainted() {
		res.Outcome = OutcomeFailed
		res.Messages = append(res.Messages, fmt.Sprintf("%s has fainted and can't move!", attacker.Name))
		return res
	}
	staleProtect, staleFlinch := attacker.Protected, attacker.Flinched
	regranted := false
	defer func() {
		if staleProtect && !regranted {
			attacker.Protected = false
		}
		if staleFlinch {
			attacker.Flinched = false
		}
	}()

	name := move.DisplayName(language.English)
	say := func(format string, args ...any) {
		res.Messages = append(res.Messages, fmt.Sprintf(format, args...))
	}

	if attacker.Recharging {
		attacker.Recharging = false
		res.Outcome = OutcomeRecharging
		say("%s must recharge! The attack failed.", attacker.Name)
		return res
	}

	if move.RequiresCharge {
		if !attacker.Charging {
			attacker.Charging = true
			res.Outcome = OutcomeCharging
			say("%s is charging up %s!", attacker.Name, name)
			return res
		}
		attacker.Charging = false
	}

	say("%s used %s!", attacker.Name, name)

	if r.alwaysFail[strings.ToLower(move.Name)] {
		res.Outcome = OutcomeFailed
		say("But it failed!")
		return res
	}

	if move.Accuracy != nil && rollPercent(rng) > *move.Accuracy {
		res.Outcome = OutcomeMissed
		say("%s's attack missed!", attacker.Name)
		return res
	}

	if defender.Protected {
		res.Outcome = OutcomeProtected
		say("%s protected itself from the attack!", defender.Name)
		return res
	}

	if move.Effects.OneHitKO {
		defender.HP = 0
		res.Outcome = OutcomeOneHitKO
		res.Damage = OneHitKODamage
		res.Hits = 1
		say("It's a one-hit KO! %s fainted!", defender.Name)
		return res
	}

	if move.DealsDamage() {
		r.dealDamage(attacker, defender, move, rng, &res)
		res.Outcome = OutcomeHit
	} else {
		res.Outcome = OutcomeNoDamage
	}

	effects := ApplyEffects(attacker, defender, move, res.Damage, rng)
	regranted = move.Effects.Protect
	res.Messages = append(res.Messages, effects...)
	if res.Outcome == OutcomeNoDamage && len(effects) == 0 {
		say("But nothing happened...")
	}
	return res
}

// dealDamage runs the damage-dealing branch and subtracts the result from
// the defender.
func (r *Resolver) dealDamage(attacker, defender *Combatant, move *gamedata.MoveDef, rng RNG, res *MoveResult) {
	fx := move.Effects
	switch {
	case fx.FixedDamage != nil:
		res.Damage = *fx.FixedDamage
		res.Hits = 1
	case fx.LevelDamage:
		res.Damage = attacker.Level
		res.Hits = 1
	case fx.MultiHit:
		r.multiHit(attacker, defender, move, rng, res)
	default:
		hit := ComputeDamage(attacker, defender, move, r.chart, rng)
		res.Damage = hit.Damage
		res.TypeMultiplier = hit.TypeMultiplier
		res.Hits = 1
		if hit.Critical {
			res.Criticals = 1
		}
	}

	if res.TypeMultiplier == 0 {
		res.Damage = 0
		res.Messages = append(res.Messages, EffectivenessMessage(0, defender.Name))
		return
	}
	if res.Damage < 1 {
		res.Damage = 1
	}

	defender.TakeDamage(res.Damage)

	if res.Criticals > 0 {
		res.Messages = append(res.Messages, "A critical hit!")
	}
	if msg := EffectivenessMessage(res.TypeMultiplier, defender.Name); msg != "" {
		res.Messages = append(res.Messages, msg)
	}
	res.Messages = append(res.Messages, fmt.Sprintf("%s took %d damage!", defender.Name, res.Damage))
	if defender.Fainted() {
		res.Messages = append(res.Messages, defender.Name+" fainted!")
	}
}

// multiHit strikes 2-5 times, each hit a full damage calculation.
func (r *Resolver) multiHit(attacker, defender *Combatant, move *gamedata.MoveDef, rng RNG, res *MoveResult) {
	hits := rollHitCount(rng)
	for i := 0; i < hits; i++ {
		hit := ComputeDamage(attacker, defender, move, r.chart, rng)
		res.TypeMultiplier = hit.TypeMultiplier
		if hit.TypeMultiplier == 0 {
			return
		}
		res.Hits++
		res.Damage += hit.Damage
		if hit.Critical {
			res.Criticals++
		}
	}
	res.Messages = append(res.Messages, fmt.Sprintf("Hit %d times!", res.Hits))
}

func rollHitCount(rng RNG) int {
	total := 0
	for _, w := range multiHitWeights {
		total += w.weight
	}
	roll := rng.Intn(total)
	cumulative := 0
	for _, w := range multiHitWeights {
		cumulative += w.weight
		if roll < cumulative {
			return w.hits
		}
	}
	return multiHitWeights[0].hits
}
