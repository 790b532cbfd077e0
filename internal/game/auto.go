package game

import (
	"context"
	"fmt"

	"github.com/samdwyer/creaturebattle/internal/combat"
)

// Autopilot plays the party's side of a battle with the battle AI.
type Autopilot struct {
	AI *combat.AI

	// Ball is thrown whenever the wild opponent is below CaptureBelow of
	// its max HP and the party has room. Empty disables throwing.
	Ball         string
	CaptureBelow float64

	// MaxTurns after which the party flees. 0 means no limit.
	MaxTurns int
}

// NewAutopilot creates an autopilot from configuration.
func NewAutopilot(rules *Rules, cfg Config) *Autopilot {
	return &Autopilot{
		AI:           rules.AI,
		Ball:         cfg.Ball,
		CaptureBelow: cfg.CaptureBelow,
		MaxTurns:     cfg.MaxTurns,
	}
}

// Run plays b to its end and returns the final phase.
func (a *Autopilot) Run(ctx context.Context, b *Battle) (Phase, error) {
	for !b.Over() {
		if a.MaxTurns > 0 && b.TurnCount >= a.MaxTurns {
			if err := b.Flee(ctx); err != nil {
				return b.Phase(), err
			}
			break
		}

		if a.shouldThrow(b) {
			if _, err := b.ThrowBall(ctx, a.Ball); err != nil {
				return b.Phase(), fmt.Errorf("throw %s: %w", a.Ball, err)
			}
			continue
		}

		ally := b.Active()
		move, err := a.AI.ChooseMove(ally, b.Wild, ally.Moves, b.rng)
		if err != nil {
			return b.Phase(), fmt.Errorf("choose move for %s: %w", ally.Name, err)
		}
		if err := b.Fight(ctx, move); err != nil {
			return b.Phase(), err
		}
	}
	return b.Phase(), nil
}

func (a *Autopilot) shouldThrow(b *Battle) bool {
	if a.Ball == "" || b.Party.IsFull() {
		return false
	}
	return float64(b.Wild.HP) < a.CaptureBelow*float64(b.Wild.MaxHP())
}
