// Package game runs headless wild battles on top of the combat core: turn
// order, fainting and switching, experience, ball throws, item use and the
// battle phase machine.
package game

import (
	"context"

	"github.com/looplab/fsm"
)

// Phase is the state of a battle.
type Phase string

const (
	// PhaseCommand waits for the party's next action.
	PhaseCommand Phase = "command"
	// PhaseVictory - the wild opponent fainted.
	PhaseVictory Phase = "victory"
	// PhaseDefeat - every party member fainted.
	PhaseDefeat Phase = "defeat"
	// PhaseCaptured - the wild opponent was caught.
	PhaseCaptured Phase = "captured"
	// PhaseFled - the party ran away.
	PhaseFled Phase = "fled"
)

// String returns the phase name.
func (p Phase) String() string {
	return string(p)
}

// IsOver reports whether the battle has ended in this phase.
func (p Phase) IsOver() bool {
	return p != PhaseCommand
}

const (
	eventWin     = "win"
	eventLose    = "lose"
	eventCapture = "capture"
	eventFlee    = "flee"
)

// newPhaseMachine builds the battle phase machine. Every terminal phase is
// reachable only from PhaseCommand, so a finished battle rejects further
// transitions. onEnd runs on entering a terminal phase.
func newPhaseMachine(onEnd func(ctx context.Context, outcome Phase)) *fsm.FSM {
	command := []string{string(PhaseCommand)}
	return fsm.NewFSM(
		string(PhaseCommand),
		fsm.Events{
			{Name: eventWin, Src: command, Dst: string(PhaseVictory)},
			{Name: eventLose, Src: command, Dst: string(PhaseDefeat)},
			{Name: eventCapture, Src: command, Dst: string(PhaseCaptured)},
			{Name: eventFlee, Src: command, Dst: string(PhaseFled)},
		},
		fsm.Callbacks{
			"enter_state": func(ctx context.Context, e *fsm.Event) {
				onEnd(ctx, Phase(e.Dst))
			},
		},
	)
}
