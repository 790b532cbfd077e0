package game

import (
	"fmt"

	"github.com/samdwyer/creaturebattle/internal/combat"
	"github.com/samdwyer/creaturebattle/internal/gamedata"
)

// Rules bundles the reference data and engines battles run on. A Rules
// value is read-only and may be shared by concurrent battles.
type Rules struct {
	Chart   *gamedata.TypeChart
	Species *gamedata.SpeciesRegistry
	Moves   *gamedata.MoveRegistry
	Items   *gamedata.ItemRegistry

	Resolver    *combat.Resolver
	AI          *combat.AI
	Progression *combat.Progression
}

// NewRules wires the combat engines over loaded reference data.
func NewRules(chart *gamedata.TypeChart, species *gamedata.SpeciesRegistry, moves *gamedata.MoveRegistry, items *gamedata.ItemRegistry, aiSkill int) *Rules {
	return &Rules{
		Chart:       chart,
		Species:     species,
		Moves:       moves,
		Items:       items,
		Resolver:    combat.NewResolver(chart),
		AI:          combat.NewAI(chart, aiSkill),
		Progression: combat.NewProgression(species, moves),
	}
}

// LoadRules builds Rules from the embedded reference data.
func LoadRules(aiSkill int) (*Rules, error) {
	chart, err := gamedata.LoadTypeChart()
	if err != nil {
		return nil, fmt.Errorf("load type chart: %w", err)
	}
	species, err := gamedata.LoadSpeciesRegistry()
	if err != nil {
		return nil, fmt.Errorf("load species: %w", err)
	}
	moves, err := gamedata.LoadMoveRegistry()
	if err != nil {
		return nil, fmt.Errorf("load moves: %w", err)
	}
	items, err := gamedata.LoadItemRegistry()
	if err != nil {
		return nil, fmt.Errorf("load items: %w", err)
	}
	return NewRules(chart, species, moves, items, aiSkill), nil
}

// NewStarter builds a starter of the named species knowing every move its
// learnset allows at level.
func (r *Rules) NewStarter(name string, level int) (*combat.Combatant, error) {
	species := r.Species.GetByName(name)
	if species == nil {
		return nil, fmt.Errorf("unknown species %q", name)
	}
	return combat.NewCombatant(species, level, r.Species.LearnableMoves(species.ID, level, r.Moves)), nil
}
