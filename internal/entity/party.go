// Package entity holds roster-side helpers that sit outside the battle
// core: the player's party and wild-opponent selection.
package entity

import (
	"errors"

	"github.com/samdwyer/creaturebattle/internal/combat"
)

// MaxPartySize is the most combatants a party can hold.
const MaxPartySize = 6

// ErrPartyFull is returned when adding to a party that has no room left.
var ErrPartyFull = errors.New("party is full")

// Party represents the player's team of creatures, lead first.
type Party struct {
	members []*combat.Combatant
}

// NewParty creates a party from the given members. Members beyond
// MaxPartySize are dropped.
func NewParty(members ...*combat.Combatant) *Party {
	p := &Party{}
	for _, m := range members {
		if err := p.Add(m); err != nil {
			break
		}
	}
	return p
}

// Add appends a member to the end of the party.
func (p *Party) Add(c *combat.Combatant) error {
	if c == nil {
		return errors.New("cannot add nil combatant to party")
	}
	if p.IsFull() {
		return ErrPartyFull
	}
	p.members = append(p.members, c)
	return nil
}

// Members returns the party in order.
func (p *Party) Members() []*combat.Combatant {
	return p.members
}

// Size returns the number of members.
func (p *Party) Size() int {
	return len(p.members)
}

// IsFull reports whether the party has reached MaxPartySize.
func (p *Party) IsFull() bool {
	return len(p.members) >= MaxPartySize
}

// Lead returns the first member, or nil for an empty party.
func (p *Party) Lead() *combat.Combatant {
	if len(p.members) == 0 {
		return nil
	}
	return p.members[0]
}

// FirstAlive returns the first member that has not fainted, or nil.
func (p *Party) FirstAlive() *combat.Combatant {
	for _, m := range p.members {
		if m.IsAlive() {
			return m
		}
	}
	return nil
}

// AliveCount returns the number of members still standing.
func (p *Party) AliveCount() int {
	count := 0
	for _, m := range p.members {
		if m.IsAlive() {
			count++
		}
	}
	return count
}

// IsDefeated returns true when every member has fainted.
func (p *Party) IsDefeated() bool {
	return p.AliveCount() == 0
}
