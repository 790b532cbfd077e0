package gamedata

import (
	"errors"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// MoveCategory decides which stat pair a damaging move uses.
type MoveCategory string

const (
	CategoryPhysical MoveCategory = "physical"
	CategorySpecial  MoveCategory = "special"
	CategoryStatus   MoveCategory = "status"
)

// EffectTarget says who a stat-change directive applies to.
type EffectTarget string

const (
	TargetSelf     EffectTarget = "self"
	TargetOpponent EffectTarget = "opponent"
)

// StatChange is one stat-stage directive carried by a move.
type StatChange struct {
	Target EffectTarget `json:"target"`
	Stat   Stat         `json:"stat"`
	Delta  int          `json:"change"`
	Chance *int         `json:"chance,omitempty"` // nil means always
}

// TargetsSelf reports whether the directive applies to the move's user.
// "user" is accepted as an older spelling of "self".
func (s StatChange) TargetsSelf() bool {
	return s.Target == TargetSelf || s.Target == "user"
}

// EffectSpec holds every secondary effect a move can carry.
type EffectSpec struct {
	Status        StatusCondition `json:"status,omitempty"`
	StatusChance  *int            `json:"status_chance,omitempty"` // nil means always
	StatChanges   []StatChange    `json:"stat_changes,omitempty"`
	Protect       bool            `json:"protect,omitempty"`
	Recharge      bool            `json:"recharge,omitempty"`
	OneHitKO      bool            `json:"one_hit_ko,omitempty"`
	MultiHit      bool            `json:"multi_hit,omitempty"`
	FixedDamage   *int            `json:"fixed_damage,omitempty"`
	LevelDamage   bool            `json:"level_damage,omitempty"`
	FlinchChance  int             `json:"flinch_chance,omitempty"`
	DrainPercent  int             `json:"drain,omitempty"`
	RecoilPercent int             `json:"recoil,omitempty"`
	Weather       string          `json:"weather,omitempty"`
}

// ChanceOrAlways resolves a nullable percent chance; nil means 100.
func ChanceOrAlways(chance *int) int {
	if chance == nil {
		return 100
	}
	return *chance
}

// MoveDef is an immutable move definition loaded from moves.json.
type MoveDef struct {
	ID             int               `json:"id"`
	Name           string            `json:"name"`
	Names          map[string]string `json:"names,omitempty"` // BCP 47 base language -> display name
	Type           string            `json:"type"`
	Category       MoveCategory      `json:"category"`
	Power          *int              `json:"power"`    // nil or 0: non-damaging
	Accuracy       *int              `json:"accuracy"` // nil: cannot miss
	PP             int               `json:"pp"`
	RequiresCharge bool              `json:"requiresCharge,omitempty"`
	Effects        EffectSpec        `json:"effects"`
}

// HasPower reports whether the move has a positive base power.
func (m *MoveDef) HasPower() bool {
	return m.Power != nil && *m.Power > 0
}

// BasePower returns the base power, or 0 for power-less moves.
func (m *MoveDef) BasePower() int {
	if m.Power == nil {
		return 0
	}
	return *m.Power
}

// DealsDamage reports whether the move takes the damage-dealing branch.
func (m *MoveDef) DealsDamage() bool {
	return m.HasPower() || m.Effects.FixedDamage != nil || m.Effects.LevelDamage
}

// AccuracyPercent returns the accuracy, treating nil as 100.
func (m *MoveDef) AccuracyPercent() int {
	if m.Accuracy == nil {
		return 100
	}
	return *m.Accuracy
}

// DisplayName returns the move's name for a locale, falling back to
// English and then to the internal name.
func (m *MoveDef) DisplayName(locale language.Tag) string {
	base, _ := locale.Base()
	if name, ok := m.Names[base.String()]; ok && name != "" {
		return name
	}
	if name, ok := m.Names["en"]; ok && name != "" {
		return name
	}
	return m.Name
}

// MovesFile represents the structure of moves.json.
type MovesFile struct {
	Moves []MoveDef `json:"moves"`
}

// LoadMoves loads move definitions from the embedded moves.json file.
func LoadMoves() ([]MoveDef, error) {
	file, err := Load[MovesFile]("moves.json")
	if err != nil {
		return nil, err
	}
	return file.Moves, nil
}

// foldName normalises a move name for lookups. A fresh Caser is used per
// call since casers carry state and must not be shared.
func foldName(name string) string {
	return cases.Fold().String(strings.TrimSpace(name))
}

// MoveRegistry holds loaded move definitions and resolves them by id,
// internal name, or localised display name.
type MoveRegistry struct {
	all     []MoveDef
	byID    map[int]*MoveDef
	byName  map[string]*MoveDef
	display map[language.Tag]map[string]*MoveDef
	locales []language.Tag
	matcher language.Matcher
}

// NewMoveRegistry creates a registry from loaded move definitions.
func NewMoveRegistry(moves []MoveDef) *MoveRegistry {
	r := &MoveRegistry{
		all:     moves,
		byID:    make(map[int]*MoveDef, len(moves)),
		byName:  make(map[string]*MoveDef, len(moves)),
		display: make(map[language.Tag]map[string]*MoveDef),
		locales: []language.Tag{language.English},
	}
	r.display[language.English] = make(map[string]*MoveDef)

	for i := range moves {
		m := &moves[i]
		r.byID[m.ID] = m
		r.byName[foldName(m.Name)] = m
		for code, name := range m.Names {
			tag, err := language.Parse(code)
			if err != nil {
				continue
			}
			base, _ := tag.Base()
			tag = language.Make(base.String())
			if _, ok := r.display[tag]; !ok {
				r.display[tag] = make(map[string]*MoveDef)
				r.locales = append(r.locales, tag)
			}
			r.display[tag][foldName(name)] = m
		}
	}
	r.matcher = language.NewMatcher(r.locales)
	return r
}

// LoadMoveRegistry loads and creates a registry from the embedded moves.json.
func LoadMoveRegistry() (*MoveRegistry, error) {
	moves, err := LoadMoves()
	if err != nil {
		return nil, err
	}
	if len(moves) == 0 {
		return nil, errors.New("no moves loaded from moves.json")
	}
	return NewMoveRegistry(moves), nil
}

// MustLoadMoveRegistry loads a registry, panicking on error.
func MustLoadMoveRegistry() *MoveRegistry {
	registry, err := LoadMoveRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// GetByID returns the move with the given id, or nil if not found.
func (r *MoveRegistry) GetByID(id int) *MoveDef {
	return r.byID[id]
}

// ByName resolves a move from a display name in the given locale. The
// locale only selects which display-name table is searched first; the
// internal name and every other locale are tried after it, so the same
// move is returned whatever language the caller speaks.
func (r *MoveRegistry) ByName(name string, locale language.Tag) *MoveDef {
	key := foldName(name)
	_, idx, _ := r.matcher.Match(locale)
	if m := r.display[r.locales[idx]][key]; m != nil {
		return m
	}
	if m := r.byName[key]; m != nil {
		return m
	}
	for _, tag := range r.locales {
		if m := r.display[tag][key]; m != nil {
			return m
		}
	}
	return nil
}

// GetMultiple returns the moves for a list of internal names.
// Missing names are silently skipped.
func (r *MoveRegistry) GetMultiple(names []string) []*MoveDef {
	result := make([]*MoveDef, 0, len(names))
	for _, name := range names {
		if m := r.byName[foldName(name)]; m != nil {
			result = append(result, m)
		}
	}
	return result
}

// Locales returns the languages display names are available in.
func (r *MoveRegistry) Locales() []language.Tag {
	out := make([]language.Tag, len(r.locales))
	copy(out, r.locales)
	return out
}

// All returns all move definitions.
func (r *MoveRegistry) All() []MoveDef {
	return r.all
}

// Count returns the number of moves in the registry.
func (r *MoveRegistry) Count() int {
	return len(r.all)
}
