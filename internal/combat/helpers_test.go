package combat

import (
	"github.com/samdwyer/creaturebattle/internal/gamedata"
)

// scriptedRNG replays fixed draws so tests can pin every random outcome.
// Once a queue runs dry Intn returns 0 and Float64 returns 0.5.
type scriptedRNG struct {
	ints       []int
	floats     []float64
	intCalls   int
	floatCalls int
}

func (r *scriptedRNG) Intn(n int) int {
	r.intCalls++
	if len(r.ints) == 0 {
		return 0
	}
	v := r.ints[0]
	r.ints = r.ints[1:]
	if v >= n {
		v = n - 1
	}
	return v
}

func (r *scriptedRNG) Float64() float64 {
	r.floatCalls++
	if len(r.floats) == 0 {
		return 0.5
	}
	v := r.floats[0]
	r.floats = r.floats[1:]
	return v
}

func (r *scriptedRNG) draws() int {
	return r.intCalls + r.floatCalls
}

func intPtr(v int) *int { return &v }

// newTestCombatant builds a combatant from a bare stat block.
func newTestCombatant(name string, level int, types []string, stats Stats) *Combatant {
	c := &Combatant{
		Name:      name,
		Level:     level,
		Stats:     stats.Clone(),
		BaseStats: stats.Clone(),
		Types:     types,
		Boosts:    make(map[gamedata.Stat]int),
	}
	c.HP = c.MaxHP()
	return c
}

func evenStats(hp, other int) Stats {
	return Stats{
		gamedata.StatHP:        hp,
		gamedata.StatAttack:    other,
		gamedata.StatDefense:   other,
		gamedata.StatSpAttack:  other,
		gamedata.StatSpDefense: other,
		gamedata.StatSpeed:     other,
	}
}

func physicalMove(name, moveType string, power int) *gamedata.MoveDef {
	return &gamedata.MoveDef{
		Name:     name,
		Type:     moveType,
		Category: gamedata.CategoryPhysical,
		Power:    intPtr(power),
		Accuracy: intPtr(100),
	}
}

func statusMove(name, moveType string) *gamedata.MoveDef {
	return &gamedata.MoveDef{
		Name:     name,
		Type:     moveType,
		Category: gamedata.CategoryStatus,
	}
}
