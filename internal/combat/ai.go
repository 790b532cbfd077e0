package combat

import (
	"errors"
	"math"

	"github.com/samdwyer/creaturebattle/internal/gamedata"
)

const (
	// SmartSkillLevel is the skill from which the AI values status moves.
	SmartSkillLevel = 32
	// StatusMoveBonus is added to a damaging move that can inflict a status.
	StatusMoveBonus = 10.0

	superEffectiveWeight = 1.5
	resistedWeight       = 0.5
)

// ErrNoCandidateMoves is returned when the AI is asked to choose from nothing.
var ErrNoCandidateMoves = errors.New("no candidate moves to choose from")

// AI picks moves for a computer-controlled combatant.
type AI struct {
	SkillLevel int
	chart      *gamedata.TypeChart
}

// NewAI creates an AI of the given skill over a type chart.
func NewAI(chart *gamedata.TypeChart, skillLevel int) *AI {
	return &AI{SkillLevel: skillLevel, chart: chart}
}

// Score rates a move against defender. Moves without positive power are
// not scored and report false.
func (ai *AI) Score(attacker, defender *Combatant, move *gamedata.MoveDef) (float64, bool) {
	if move == nil || !move.HasPower() {
		return 0, false
	}
	expected, typeMultiplier := EstimateDamage(attacker, defender, move, ai.chart)
	score := expected * float64(move.AccuracyPercent()) / 100

	if typeMultiplier > 1 {
		score *= superEffectiveWeight
	} else if typeMultiplier < 1 && typeMultiplier > 0 {
		score *= resistedWeight
	}

	if move.Effects.Status != gamedata.StatusNone && ai.SkillLevel >= SmartSkillLevel {
		score += StatusMoveBonus
	}
	return score, true
}

// ChooseMove returns the highest-scoring candidate, keeping the first one
// seen on ties. When no candidate can be scored it picks uniformly at
// random. Only an empty candidate list is an error.
func (ai *AI) ChooseMove(attacker, defender *Combatant, candidates []*gamedata.MoveDef, rng RNG) (*gamedata.MoveDef, error) {
	moves := make([]*gamedata.MoveDef, 0, len(candidates))
	for _, m := range candidates {
		if m != nil {
			moves = append(moves, m)
		}
	}
	if len(moves) == 0 {
		return nil, ErrNoCandidateMoves
	}

	best := math.Inf(-1)
	var choice *gamedata.MoveDef
	for _, m := range moves {
		score, ok := ai.Score(attacker, defender, m)
		if !ok {
			continue
		}
		if score > best {
			best = score
			choice = m
		}
	}

	if choice == nil {
		choice = moves[rng.Intn(len(moves))]
	}
	return choice, nil
}
