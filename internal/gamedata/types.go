package gamedata

import (
	"errors"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// DamageRelations lists the defending types an attacking type is strong,
// weak or useless against.
type DamageRelations struct {
	DoubleDamageTo []string `json:"double_damage_to"`
	HalfDamageTo   []string `json:"half_damage_to"`
	NoDamageTo     []string `json:"no_damage_to"`
}

// TypeDef is one elemental type loaded from types.json.
type TypeDef struct {
	Name            string          `json:"name"`
	Color           string          `json:"color"`
	DamageRelations DamageRelations `json:"damage_relations"`
}

// TCellColor returns the type's display colour.
func (t *TypeDef) TCellColor() tcell.Color {
	color, err := ParseHexColor(t.Color)
	if err != nil {
		return tcell.ColorWhite
	}
	return color
}

// TypesFile represents the structure of types.json.
type TypesFile struct {
	Types []TypeDef `json:"types"`
}

// LoadTypes loads type definitions from the embedded types.json file.
func LoadTypes() ([]TypeDef, error) {
	file, err := Load[TypesFile]("types.json")
	if err != nil {
		return nil, err
	}
	return file.Types, nil
}

// relation is the precomputed form of DamageRelations used for lookups.
type relation struct {
	double map[string]bool
	half   map[string]bool
	none   map[string]bool
}

// TypeChart is the immutable attack-type vs defender-type table.
// Names are matched case-insensitively.
type TypeChart struct {
	defs      map[string]*TypeDef
	relations map[string]relation
	order     []string
}

func typeKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func toSet(names []string) map[string]bool {
	set := make(map[string]bool, len(names))
	for _, n := range names {
		set[typeKey(n)] = true
	}
	return set
}

// NewTypeChart builds a chart from loaded type definitions.
func NewTypeChart(types []TypeDef) *TypeChart {
	chart := &TypeChart{
		defs:      make(map[string]*TypeDef, len(types)),
		relations: make(map[string]relation, len(types)),
		order:     make([]string, 0, len(types)),
	}
	for i := range types {
		key := typeKey(types[i].Name)
		chart.defs[key] = &types[i]
		chart.order = append(chart.order, key)
		chart.relations[key] = relation{
			double: toSet(types[i].DamageRelations.DoubleDamageTo),
			half:   toSet(types[i].DamageRelations.HalfDamageTo),
			none:   toSet(types[i].DamageRelations.NoDamageTo),
		}
	}
	return chart
}

// LoadTypeChart loads and creates a chart from the embedded types.json.
func LoadTypeChart() (*TypeChart, error) {
	types, err := LoadTypes()
	if err != nil {
		return nil, err
	}
	if len(types) == 0 {
		return nil, errors.New("no types loaded from types.json")
	}
	return NewTypeChart(types), nil
}

// MustLoadTypeChart loads a chart, panicking on error.
func MustLoadTypeChart() *TypeChart {
	chart, err := LoadTypeChart()
	if err != nil {
		panic(err)
	}
	return chart
}

// Multiplier returns the factor attackType deals to a single defending
// type: 2, 0.5, 0, or 1 when the chart says nothing (including unknown
// names on either side).
func (c *TypeChart) Multiplier(attackType, defenderType string) float64 {
	rel, ok := c.relations[typeKey(attackType)]
	if !ok {
		return 1.0
	}
	key := typeKey(defenderType)
	switch {
	case rel.double[key]:
		return 2.0
	case rel.half[key]:
		return 0.5
	case rel.none[key]:
		return 0.0
	default:
		return 1.0
	}
}

// Relations returns the raw relation sets for a type, or false if unknown.
func (c *TypeChart) Relations(name string) (DamageRelations, bool) {
	def, ok := c.defs[typeKey(name)]
	if !ok {
		return DamageRelations{}, false
	}
	return def.DamageRelations, true
}

// GetByName returns the type definition with the given name, or nil.
func (c *TypeChart) GetByName(name string) *TypeDef {
	return c.defs[typeKey(name)]
}

// Names returns the type names in file order.
func (c *TypeChart) Names() []string {
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}

// Count returns the number of types in the chart.
func (c *TypeChart) Count() int {
	return len(c.order)
}
