package gamedata

import (
	"errors"
	"sort"
	"strings"
)

// Evolution is an edge in the evolution graph: the species evolves into
// Into once it reaches MinLevel. MinLevel 0 marks a non-level trigger
// (stones, trades) which the battle core never fires.
type Evolution struct {
	Into     int `json:"into"`
	MinLevel int `json:"minLevel"`
}

// LearnsetEntry is a move a species learns at a level.
type LearnsetEntry struct {
	Move  string `json:"move"`
	Level int    `json:"level"`
}

// Sprites holds presentation-layer asset references. The core copies them
// on evolution and never reads them.
type Sprites struct {
	Front string `json:"front,omitempty"`
	Back  string `json:"back,omitempty"`
}

// SpeciesDef defines a species loaded from species.json.
type SpeciesDef struct {
	ID             int             `json:"id"`
	Name           string          `json:"name"`
	Types          []string        `json:"types"`
	Stats          map[Stat]int    `json:"stats"`
	CaptureRate    int             `json:"captureRate"`
	BaseExperience int             `json:"baseExperience"`
	Sprites        Sprites         `json:"sprites"`
	Evolutions     []Evolution     `json:"evolutions,omitempty"`
	Learnset       []LearnsetEntry `json:"learnset"`
}

// StatTotal returns the sum of the species' base stats.
func (s *SpeciesDef) StatTotal() int {
	total := 0
	for _, v := range s.Stats {
		total += v
	}
	return total
}

// CanEvolve reports whether the species has any outgoing evolution edge.
func (s *SpeciesDef) CanEvolve() bool {
	return len(s.Evolutions) > 0
}

// SpeciesFile represents the structure of species.json.
type SpeciesFile struct {
	Species []SpeciesDef `json:"species"`
}

// LoadSpecies loads species definitions from the embedded species.json file.
func LoadSpecies() ([]SpeciesDef, error) {
	file, err := Load[SpeciesFile]("species.json")
	if err != nil {
		return nil, err
	}
	return file.Species, nil
}

// SpeciesRegistry holds species keyed by their stable numeric id.
type SpeciesRegistry struct {
	species []SpeciesDef
	byID    map[int]*SpeciesDef
}

// NewSpeciesRegistry creates a registry from loaded species definitions.
func NewSpeciesRegistry(species []SpeciesDef) *SpeciesRegistry {
	r := &SpeciesRegistry{
		species: species,
		byID:    make(map[int]*SpeciesDef, len(species)),
	}
	for i := range species {
		r.byID[species[i].ID] = &species[i]
	}
	return r
}

// LoadSpeciesRegistry loads and creates a registry from the embedded species.json.
func LoadSpeciesRegistry() (*SpeciesRegistry, error) {
	species, err := LoadSpecies()
	if err != nil {
		return nil, err
	}
	if len(species) == 0 {
		return nil, errors.New("no species loaded from species.json")
	}
	return NewSpeciesRegistry(species), nil
}

// MustLoadSpeciesRegistry loads a registry, panicking on error.
func MustLoadSpeciesRegistry() *SpeciesRegistry {
	registry, err := LoadSpeciesRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// GetByID returns the species with the given id, or nil if not found.
func (r *SpeciesRegistry) GetByID(id int) *SpeciesDef {
	return r.byID[id]
}

// GetByName returns the species with the given name (case-insensitive), or nil.
func (r *SpeciesRegistry) GetByName(name string) *SpeciesDef {
	for i := range r.species {
		if strings.EqualFold(r.species[i].Name, name) {
			return &r.species[i]
		}
	}
	return nil
}

// NextEvolution returns the first level-triggered evolution of species id
// that is reachable at level, or nil. Edges pointing at species missing
// from the registry are ignored.
func (r *SpeciesRegistry) NextEvolution(id, level int) *SpeciesDef {
	s := r.byID[id]
	if s == nil {
		return nil
	}
	for _, evo := range s.Evolutions {
		if evo.MinLevel <= 0 || evo.MinLevel > level {
			continue
		}
		if target := r.byID[evo.Into]; target != nil {
			return target
		}
	}
	return nil
}

// LearnableMoves returns the moves species id knows by level, lowest
// learn level first, without duplicates, capped at four. Learnset entries
// naming moves unknown to the move registry are skipped.
func (r *SpeciesRegistry) LearnableMoves(id, level int, moves *MoveRegistry) []*MoveDef {
	s := r.byID[id]
	if s == nil || moves == nil {
		return nil
	}

	learnset := make([]LearnsetEntry, len(s.Learnset))
	copy(learnset, s.Learnset)
	sort.SliceStable(learnset, func(i, j int) bool {
		return learnset[i].Level < learnset[j].Level
	})

	result := make([]*MoveDef, 0, 4)
	seen := make(map[string]bool)
	for _, entry := range learnset {
		if entry.Level > level || seen[entry.Move] {
			continue
		}
		def := moves.GetMultiple([]string{entry.Move})
		if len(def) == 0 {
			continue
		}
		seen[entry.Move] = true
		result = append(result, def[0])
		if len(result) == 4 {
			break
		}
	}
	return result
}

// All returns all species definitions.
func (r *SpeciesRegistry) All() []SpeciesDef {
	return r.species
}

// Count returns the number of species in the registry.
func (r *SpeciesRegistry) Count() int {
	return len(r.species)
}
