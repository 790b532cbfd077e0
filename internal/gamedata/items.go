package gamedata

import (
	"errors"
	"strings"
)

// ItemCategory groups items by how they are used in battle.
type ItemCategory string

const (
	CategoryBall       ItemCategory = "standard-balls"
	CategoryHealing    ItemCategory = "healing"
	CategoryStatusCure ItemCategory = "status-cures"
	CategoryMisc       ItemCategory = "misc"
)

// CureAll in ItemDef.Cures means the item clears any status.
const CureAll = "all"

// ItemDef defines an item loaded from items.json.
type ItemDef struct {
	ID            string       `json:"id"`
	Name          string       `json:"name"`
	Category      ItemCategory `json:"category"`
	CatchModifier float64      `json:"catchModifier,omitempty"`
	Healing       int          `json:"healing,omitempty"`
	FullHeal      bool         `json:"fullHeal,omitempty"`
	Cures         []string     `json:"cures,omitempty"`
	BattleUsable  bool         `json:"battleUsable"`
}

// IsBall reports whether the item is a capture device.
func (i *ItemDef) IsBall() bool {
	return i.Category == CategoryBall
}

// BallModifier returns the capture multiplier of a ball, 1.0 for anything
// without one.
func (i *ItemDef) BallModifier() float64 {
	if i == nil || i.CatchModifier <= 0 {
		return 1.0
	}
	return i.CatchModifier
}

// Cure reports whether the item clears the given status.
func (i *ItemDef) Cure(status StatusCondition) bool {
	for _, c := range i.Cures {
		if c == CureAll || StatusCondition(c) == status {
			return true
		}
	}
	return false
}

// ItemsFile represents the structure of items.json.
type ItemsFile struct {
	Items []ItemDef `json:"items"`
}

// LoadItems loads item definitions from the embedded items.json file.
func LoadItems() ([]ItemDef, error) {
	file, err := Load[ItemsFile]("items.json")
	if err != nil {
		return nil, err
	}
	return file.Items, nil
}

// ItemRegistry holds loaded item definitions.
type ItemRegistry struct {
	items []ItemDef
	byKey map[string]*ItemDef
}

// NewItemRegistry creates a registry from loaded item definitions. Items
// are reachable by id and by display name.
func NewItemRegistry(items []ItemDef) *ItemRegistry {
	r := &ItemRegistry{
		items: items,
		byKey: make(map[string]*ItemDef, len(items)*2),
	}
	for i := range items {
		r.byKey[strings.ToLower(items[i].ID)] = &items[i]
		r.byKey[strings.ToLower(items[i].Name)] = &items[i]
	}
	return r
}

// LoadItemRegistry loads and creates a registry from the embedded items.json.
func LoadItemRegistry() (*ItemRegistry, error) {
	items, err := LoadItems()
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, errors.New("no items loaded from items.json")
	}
	return NewItemRegistry(items), nil
}

// MustLoadItemRegistry loads a registry, panicking on error.
func MustLoadItemRegistry() *ItemRegistry {
	registry, err := LoadItemRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// ByName returns the item with the given id or display name, or nil.
func (r *ItemRegistry) ByName(name string) *ItemDef {
	return r.byKey[strings.ToLower(strings.TrimSpace(name))]
}

// Balls returns every capture device.
func (r *ItemRegistry) Balls() []*ItemDef {
	var balls []*ItemDef
	for i := range r.items {
		if r.items[i].IsBall() {
			balls = append(balls, &r.items[i])
		}
	}
	return balls
}

// All returns all item definitions.
func (r *ItemRegistry) All() []ItemDef {
	return r.items
}

// Count returns the number of items in the registry.
func (r *ItemRegistry) Count() int {
	return len(r.items)
}
