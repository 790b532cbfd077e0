package combat

import (
	"fmt"

	"github.com/samdwyer/creaturebattle/internal/gamedata"
)

// MaxLevel is the highest level a combatant can reach.
const MaxLevel = 100

// StatGrowthDivisor: each level-up adds floor(base/StatGrowthDivisor) to a stat.
const StatGrowthDivisor = 50

// ProgressionResult reports what an experience award changed.
type ProgressionResult struct {
	PreviousLevel int
	NewLevel      int
	LevelsGained  int
	StatDelta     Stats
	EvolvedInto   *gamedata.SpeciesDef
	LearnedMoves  []*gamedata.MoveDef
	Messages      []string
}

// ExperienceForLevel returns the cumulative experience level L requires (L³).
func ExperienceForLevel(level int) int {
	return level * level * level
}

// LevelForExperience returns the highest level whose cube does not exceed
// xp, between 1 and MaxLevel.
func LevelForExperience(xp int) int {
	level := 1
	for level < MaxLevel && ExperienceForLevel(level+1) <= xp {
		level++
	}
	return level
}

// ExperienceYield is the experience each party member earns when an
// opponent of the given base experience and level faints.
func ExperienceYield(baseExperience, defeatedLevel int) int {
	return baseExperience * defeatedLevel / 7
}

// Progression applies experience, level-ups and evolution using species
// and move reference data.
type Progression struct {
	species *gamedata.SpeciesRegistry
	moves   *gamedata.MoveRegistry
}

// NewProgression creates a progression engine. A nil species registry
// disables evolution.
func NewProgression(species *gamedata.SpeciesRegistry, moves *gamedata.MoveRegistry) *Progression {
	return &Progression{species: species, moves: moves}
}

// GainExperience adds xp to c and levels it up while its cumulative total
// reaches the next level's cube. Every level adds floor(base/50) to each
// stat; HP growth also raises current HP. Afterwards, a reachable level
// evolution replaces the species-derived fields and resets HP to the
// evolved maximum. A fainted combatant still levels and evolves but stays
// at 0 HP. A non-positive award changes nothing.
func (p *Progression) GainExperience(c *Combatant, xp int) ProgressionResult {
	result := ProgressionResult{
		PreviousLevel: c.Level,
		NewLevel:      c.Level,
		StatDelta:     make(Stats),
	}
	if xp <= 0 {
		return result
	}

	if c.Stats == nil {
		c.Stats = make(Stats)
	}
	c.Experience += xp
	result.Messages = append(result.Messages, fmt.Sprintf("%s gained %d XP!", c.Name, xp))

	for c.Level < MaxLevel && c.Experience >= ExperienceForLevel(c.Level+1) {
		c.Level++
		result.LevelsGained++
		for _, stat := range gamedata.BaseStats {
			delta := c.BaseStats[stat] / StatGrowthDivisor
			if delta == 0 {
				continue
			}
			c.Stats[stat] = c.Stats.Get(stat) + delta
			result.StatDelta[stat] += delta
			if stat == gamedata.StatHP && !c.Fainted() {
				c.HP += delta
			}
		}
		result.Messages = append(result.Messages, fmt.Sprintf("%s grew to level %d!", c.Name, c.Level))
	}
	result.NewLevel = c.Level

	if p.species != nil {
		if evolved := p.species.NextEvolution(c.SpeciesID, c.Level); evolved != nil {
			result.Messages = append(result.Messages, fmt.Sprintf("%s evolved into %s!", c.Name, evolved.Name))
			result.LearnedMoves = p.evolve(c, evolved)
			result.EvolvedInto = evolved
		}
	}
	return result
}

// evolve swaps in the evolved form's data and returns the moves learned.
func (p *Progression) evolve(c *Combatant, evolved *gamedata.SpeciesDef) []*gamedata.MoveDef {
	c.SpeciesID = evolved.ID
	c.Name = evolved.Name
	c.BaseStats = Stats(evolved.Stats).Clone()
	c.Stats = c.BaseStats.Clone()
	c.Types = append([]string(nil), evolved.Types...)
	c.Sprites = evolved.Sprites
	c.CatchRate = evolved.CaptureRate
	c.BaseExperience = evolved.BaseExperience

	var learned []*gamedata.MoveDef
	for _, move := range p.species.LearnableMoves(evolved.ID, c.Level, p.moves) {
		if len(c.Moves) >= MaxMoves {
			break
		}
		if c.KnowsMove(move.Name) {
			continue
		}
		c.Moves = append(c.Moves, move)
		learned = append(learned, move)
	}

	if !c.Fainted() {
		c.HP = c.MaxHP()
	}
	return learned
}
