package entity

import (
	"github.com/samdwyer/creaturebattle/internal/combat"
	"github.com/samdwyer/creaturebattle/internal/gamedata"
)

const (
	// DefaultLevelMargin is how far a wild opponent's level may stray from
	// the ally's.
	DefaultLevelMargin = 1
	// DefaultStatMargin is the tolerated relative difference in base stat
	// totals between the ally and a wild opponent.
	DefaultStatMargin = 0.15
)

// WildOptions tunes SelectWildOpponent.
type WildOptions struct {
	LevelMargin int
	StatMargin  float64
}

// DefaultWildOptions returns the standard balancing margins.
func DefaultWildOptions() WildOptions {
	return WildOptions{LevelMargin: DefaultLevelMargin, StatMargin: DefaultStatMargin}
}

// Candidates returns the species a wild opponent for ally may be drawn
// from: those that can still evolve and whose base stat total lies within
// the stat margin of the ally's.
func Candidates(species *gamedata.SpeciesRegistry, ally *combat.Combatant, opts WildOptions) []*gamedata.SpeciesDef {
	allyTotal := 0
	for _, v := range ally.BaseStats {
		allyTotal += v
	}
	statMin := int(float64(allyTotal) * (1 - opts.StatMargin))
	statMax := int(float64(allyTotal) * (1 + opts.StatMargin))

	var result []*gamedata.SpeciesDef
	all := species.All()
	for i := range all {
		s := &all[i]
		if !s.CanEvolve() {
			continue
		}
		if total := s.StatTotal(); total >= statMin && total <= statMax {
			result = append(result, s)
		}
	}
	return result
}

// SelectWildOpponent picks a balanced wild opponent for ally and builds it
// at a level within the level margin, knowing the moves its learnset
// allows. When no species is balanced, any species may appear. Returns nil
// only for an empty registry.
//
// Draw order: species, then level.
func SelectWildOpponent(species *gamedata.SpeciesRegistry, moves *gamedata.MoveRegistry, ally *combat.Combatant, opts WildOptions, rng combat.RNG) *combat.Combatant {
	pool := Candidates(species, ally, opts)
	if len(pool) == 0 {
		all := species.All()
		for i := range all {
			pool = append(pool, &all[i])
		}
	}
	if len(pool) == 0 {
		return nil
	}

	picked := pool[rng.Intn(len(pool))]

	margin := opts.LevelMargin
	if margin < 0 {
		margin = 0
	}
	low := ally.Level - margin
	if low < 1 {
		low = 1
	}
	level := low + rng.Intn(ally.Level+margin-low+1)
	if level > combat.MaxLevel {
		level = combat.MaxLevel
	}

	return combat.NewCombatant(picked, level, species.LearnableMoves(picked.ID, level, moves))
}
