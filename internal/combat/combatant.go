// Package combat is the battle resolution core: damage, move effects, move
// resolution, capture, progression, battle AI and item use. Every function
// is synchronous and draws randomness only from a caller-supplied RNG.
package combat

import (
	"github.com/google/uuid"

	"github.com/samdwyer/creaturebattle/internal/gamedata"
)

// DefaultStat is used for any stat missing from a combatant's stat block.
const DefaultStat = 10

// MaxMoves is the most moves a combatant can know.
const MaxMoves = 4

// Stats is a stat block keyed by canonical stat name.
type Stats map[gamedata.Stat]int

// Get returns a stat, falling back to DefaultStat when it is missing or not
// positive.
func (s Stats) Get(stat gamedata.Stat) int {
	if v, ok := s[stat]; ok && v > 0 {
		return v
	}
	return DefaultStat
}

// Clone returns an independent copy of the stat block.
func (s Stats) Clone() Stats {
	out := make(Stats, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

// Combatant is a battle-participant snapshot. The battle layer owns it; the
// core mutates it only for the duration of a single call.
type Combatant struct {
	ID         uuid.UUID
	SpeciesID  int
	Name       string
	Level      int
	Experience int // cumulative
	HP         int

	Stats     Stats // current stats; the hp entry is max HP
	BaseStats Stats // species base stats, used for level-up growth
	Types     []string
	Moves     []*gamedata.MoveDef
	Status    gamedata.StatusCondition
	Boosts    map[gamedata.Stat]int

	CatchRate      int
	BaseExperience int
	Sprites        gamedata.Sprites

	// Volatile flags.
	Protected  bool
	Flinched   bool
	Recharging bool
	Charging   bool
}

// NewCombatant builds a full-health combatant of the given species and
// level. Experience starts at the level's cube.
func NewCombatant(species *gamedata.SpeciesDef, level int, moves []*gamedata.MoveDef) *Combatant {
	if level < 1 {
		level = 1
	}
	base := Stats(species.Stats).Clone()
	c := &Combatant{
		ID:             uuid.New(),
		SpeciesID:      species.ID,
		Name:           species.Name,
		Level:          level,
		Experience:     ExperienceForLevel(level),
		Stats:          base.Clone(),
		BaseStats:      base,
		Types:          append([]string(nil), species.Types...),
		Boosts:         make(map[gamedata.Stat]int),
		CatchRate:      species.CaptureRate,
		BaseExperience: species.BaseExperience,
		Sprites:        species.Sprites,
	}
	if len(moves) > MaxMoves {
		moves = moves[:MaxMoves]
	}
	c.Moves = append([]*gamedata.MoveDef(nil), moves...)
	c.HP = c.MaxHP()
	return c
}

// MaxHP returns maximum hit points.
func (c *Combatant) MaxHP() int {
	return c.Stats.Get(gamedata.StatHP)
}

// Fainted reports whether the combatant is at 0 HP.
func (c *Combatant) Fainted() bool { return c.HP <= 0 }

// IsAlive returns true if the combatant has HP remaining.
func (c *Combatant) IsAlive() bool { return c.HP > 0 }

// HasType reports whether t is one of the combatant's types.
func (c *Combatant) HasType(t string) bool {
	for _, own := range c.Types {
		if typeEquals(own, t) {
			return true
		}
	}
	return false
}

// TakeDamage reduces HP, flooring at 0, and returns the HP actually lost.
func (c *Combatant) TakeDamage(amount int) int {
	if amount <= 0 {
		return 0
	}
	actual := amount
	if actual > c.HP {
		actual = c.HP
	}
	c.HP -= actual
	return actual
}

// Heal restores HP, capped at max, and returns the HP actually restored.
func (c *Combatant) Heal(amount int) int {
	if amount <= 0 {
		return 0
	}
	actual := amount
	if c.HP+actual > c.MaxHP() {
		actual = c.MaxHP() - c.HP
	}
	if actual < 0 {
		return 0
	}
	c.HP += actual
	return actual
}

// Boost adds a signed stage delta to a stat. Stages accumulate without a cap.
func (c *Combatant) Boost(stat gamedata.Stat, delta int) int {
	if c.Boosts == nil {
		c.Boosts = make(map[gamedata.Stat]int)
	}
	c.Boosts[stat] += delta
	return c.Boosts[stat]
}

// ClearVolatile drops the per-turn flags. Recharge and charge state are kept.
func (c *Combatant) ClearVolatile() {
	c.Protected = false
	c.Flinched = false
}

// KnowsMove reports whether a move with the same internal name is known.
func (c *Combatant) KnowsMove(name string) bool {
	for _, m := range c.Moves {
		if m != nil && m.Name == name {
			return true
		}
	}
	return false
}
