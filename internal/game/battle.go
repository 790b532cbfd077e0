package game

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/looplab/fsm"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/creaturebattle/internal/combat"
	"github.com/samdwyer/creaturebattle/internal/entity"
	"github.com/samdwyer/creaturebattle/internal/gamedata"
	"github.com/samdwyer/creaturebattle/internal/telemetry"
)

var (
	ErrBattleOver     = errors.New("battle is over")
	ErrNoActiveMember = errors.New("party has no member able to battle")
	ErrUnknownMove    = errors.New("move not known")
	ErrUnknownItem    = errors.New("unknown item")
	ErrNotABall       = errors.New("item is not a ball")
)

// Battle is a single wild encounter between the player's party and one
// wild combatant.
type Battle struct {
	ID    uuid.UUID
	Party *entity.Party
	Wild  *combat.Combatant

	TurnCount int
	Log       []string
	Progress  []combat.ProgressionResult // experience awarded on victory

	rules   *Rules
	rng     combat.RNG
	machine *fsm.FSM
	tracer  trace.Tracer
	active  *combat.Combatant
	pending map[uuid.UUID]*gamedata.MoveDef // charged moves awaiting release
}

// action is one combatant's move for a round.
type action struct {
	actor *combat.Combatant
	move  *gamedata.MoveDef
	wild  bool
}

// NewBattle starts a battle against wild. The party's first conscious
// member leads.
func NewBattle(ctx context.Context, rules *Rules, party *entity.Party, wild *combat.Combatant, rng combat.RNG) (*Battle, error) {
	if party == nil || party.FirstAlive() == nil {
		return nil, ErrNoActiveMember
	}
	if wild == nil {
		return nil, errors.New("no wild opponent")
	}

	b := &Battle{
		ID:      uuid.New(),
		Party:   party,
		Wild:    wild,
		rules:   rules,
		rng:     rng,
		tracer:  telemetry.Tracer("battle"),
		active:  party.FirstAlive(),
		pending: make(map[uuid.UUID]*gamedata.MoveDef),
	}
	b.machine = newPhaseMachine(b.endBattle)

	_, span := b.tracer.Start(ctx, "battle.start")
	span.SetAttributes(
		attribute.String("battle.id", b.ID.String()),
		attribute.Int("party_size", party.AliveCount()),
		attribute.String("ally.species", b.active.Name),
		attribute.Int("ally.level", b.active.Level),
		attribute.String("wild.species", wild.Name),
		attribute.Int("wild.level", wild.Level),
	)
	span.End()

	b.logf("A wild %s appeared! (Lv. %d)", wild.Name, wild.Level)
	b.logf("Go! %s!", b.active.Name)
	return b, nil
}

// Phase returns the current battle phase.
func (b *Battle) Phase() Phase {
	return Phase(b.machine.Current())
}

// Over reports whether the battle has ended.
func (b *Battle) Over() bool {
	return b.Phase().IsOver()
}

// Active returns the party member currently battling.
func (b *Battle) Active() *combat.Combatant {
	return b.active
}

// Fight plays one round: the active member uses move and the wild
// opponent answers with the battle AI's choice. The faster combatant acts
// first; the party wins speed ties.
func (b *Battle) Fight(ctx context.Context, move *gamedata.MoveDef) error {
	if b.Over() {
		return ErrBattleOver
	}
	ally := b.active
	if move == nil {
		return fmt.Errorf("%w: nil move", ErrUnknownMove)
	}
	if !ally.KnowsMove(move.Name) {
		return fmt.Errorf("%w: %s does not know %s", ErrUnknownMove, ally.Name, move.Name)
	}

	ctx, span := b.startTurn(ctx, "fight")
	defer span.End()

	wildMove := b.chooseWildMove()
	first := action{actor: ally, move: move}
	second := action{actor: b.Wild, move: wildMove, wild: true}
	if b.Wild.Stats.Get(gamedata.StatSpeed) > ally.Stats.Get(gamedata.StatSpeed) {
		first, second = second, first
	}

	for _, a := range []action{first, second} {
		b.act(ctx, a)
		if err := b.checkBattleEnd(ctx); err != nil {
			return err
		}
		if b.Over() {
			break
		}
	}
	b.endRound()
	return nil
}

// ThrowBall throws the named ball at the wild opponent. A failed throw
// uses up the party's turn and the wild opponent acts. A caught opponent
// joins the party when there is room.
func (b *Battle) ThrowBall(ctx context.Context, name string) (combat.CaptureResult, error) {
	if b.Over() {
		return combat.CaptureResult{}, ErrBattleOver
	}
	ball := b.rules.Items.ByName(name)
	if ball == nil {
		return combat.CaptureResult{}, fmt.Errorf("%w: %s", ErrUnknownItem, name)
	}
	if !ball.IsBall() {
		return combat.CaptureResult{}, fmt.Errorf("%w: %s", ErrNotABall, ball.Name)
	}

	ctx, span := b.startTurn(ctx, "capture")
	defer span.End()

	_, captureSpan := b.tracer.Start(ctx, "battle.capture")
	statusModifier := gamedata.StatusCaptureModifier(b.Wild.Status)
	b.logf("You threw a %s!", ball.Name)
	result := combat.AttemptCapture(b.Wild, ball.BallModifier(), statusModifier, b.rng)
	b.log(result.Messages...)
	captureSpan.SetAttributes(
		attribute.String("ball", ball.ID),
		attribute.Float64("ball_modifier", ball.BallModifier()),
		attribute.Float64("status_modifier", statusModifier),
		attribute.Int("wild.hp", b.Wild.HP),
		attribute.Bool("success", result.Success),
		attribute.Int("shakes", result.Shakes),
	)
	captureSpan.End()

	if result.Success {
		if err := b.Party.Add(b.Wild); err != nil {
			b.logf("Your party is full. %s was sent away.", b.Wild.Name)
		} else {
			b.logf("%s joined your party!", b.Wild.Name)
		}
		return result, b.transition(ctx, eventCapture)
	}

	return result, b.wildTurn(ctx)
}

// UseItem uses the named item on target, or on the active member when
// target is nil. A refused item does not use up the turn; otherwise the
// wild opponent acts.
func (b *Battle) UseItem(ctx context.Context, name string, target *combat.Combatant) (combat.ItemResult, error) {
	if b.Over() {
		return combat.ItemResult{}, ErrBattleOver
	}
	item := b.rules.Items.ByName(name)
	if item == nil {
		return combat.ItemResult{}, fmt.Errorf("%w: %s", ErrUnknownItem, name)
	}
	if target == nil {
		target = b.active
	}

	_, span := b.tracer.Start(ctx, "battle.item")
	result := combat.UseItem(item, target)
	span.SetAttributes(
		attribute.String("item", item.ID),
		attribute.String("target", target.Name),
		attribute.Bool("success", result.Success),
		attribute.Int("healed", result.Healed),
		attribute.String("cured", string(result.Cured)),
	)
	span.End()
	b.log(result.Messages...)

	if !result.Success {
		return result, nil
	}

	ctx, turnSpan := b.startTurn(ctx, "item")
	defer turnSpan.End()
	return result, b.wildTurn(ctx)
}

// Flee ends the battle. Running from a wild battle always succeeds.
func (b *Battle) Flee(ctx context.Context) error {
	if b.Over() {
		return ErrBattleOver
	}
	b.logf("Got away safely!")
	return b.transition(ctx, eventFlee)
}

// startTurn counts a turn and opens its span.
func (b *Battle) startTurn(ctx context.Context, kind string) (context.Context, trace.Span) {
	b.TurnCount++
	ctx, span := b.tracer.Start(ctx, "battle.turn")
	span.SetAttributes(
		attribute.String("battle.id", b.ID.String()),
		attribute.String("action", kind),
		attribute.Int("turn", b.TurnCount),
		attribute.String("ally", b.active.Name),
		attribute.Int("ally.hp", b.active.HP),
		attribute.Int("wild.hp", b.Wild.HP),
	)
	return ctx, span
}

// wildTurn lets the wild opponent act alone, after a throw or an item.
func (b *Battle) wildTurn(ctx context.Context) error {
	b.act(ctx, action{actor: b.Wild, move: b.chooseWildMove(), wild: true})
	if err := b.checkBattleEnd(ctx); err != nil {
		return err
	}
	b.endRound()
	return nil
}

// chooseWildMove asks the battle AI for the wild opponent's move. A wild
// opponent without moves gets nil and loses its action.
func (b *Battle) chooseWildMove() *gamedata.MoveDef {
	move, err := b.rules.AI.ChooseMove(b.Wild, b.active, b.Wild.Moves, b.rng)
	if err != nil {
		return nil
	}
	return move
}

// act executes one combatant's action against the other side.
func (b *Battle) act(ctx context.Context, a action) {
	if a.actor.Fainted() {
		return
	}
	defender := b.Wild
	if a.wild {
		defender = b.active
	}
	if defender == nil || defender.Fainted() {
		return
	}

	if a.actor.Flinched {
		a.actor.Flinched = false
		b.logf("%s flinched and couldn't move!", a.actor.Name)
		return
	}

	move := a.move
	if pending := b.pending[a.actor.ID]; pending != nil && a.actor.Charging {
		move = pending
	}
	if move == nil {
		b.logf("%s has no moves it can use!", a.actor.Name)
		return
	}

	result := b.rules.Resolver.ResolveMove(a.actor, defender, move, b.rng)
	if result.Outcome == combat.OutcomeCharging {
		b.pending[a.actor.ID] = move
	} else {
		delete(b.pending, a.actor.ID)
	}
	b.log(result.Messages...)

	trace.SpanFromContext(ctx).AddEvent("move", trace.WithAttributes(
		attribute.String("actor", a.actor.Name),
		attribute.String("move", move.Name),
		attribute.String("outcome", string(result.Outcome)),
		attribute.Int("damage", result.Damage),
		attribute.Int("hits", result.Hits),
		attribute.Bool("critical", result.Critical()),
		attribute.Float64("type_multiplier", result.TypeMultiplier),
	))
}

// endRound drops the per-round volatile flags on both sides.
func (b *Battle) endRound() {
	for _, m := range b.Party.Members() {
		m.ClearVolatile()
	}
	b.Wild.ClearVolatile()
}

// checkBattleEnd moves the battle to victory or defeat, or sends out the
// next conscious member when the active one has fainted.
func (b *Battle) checkBattleEnd(ctx context.Context) error {
	if b.Wild.Fainted() {
		b.awardExperience(ctx)
		return b.transition(ctx, eventWin)
	}
	if b.Party.IsDefeated() {
		b.logf("You have no more creatures that can fight!")
		return b.transition(ctx, eventLose)
	}
	if next := b.Party.FirstAlive(); next != b.active {
		b.active = next
		b.logf("Go! %s!", next.Name)
	}
	return nil
}

// awardExperience gives every party member the defeated opponent's yield.
func (b *Battle) awardExperience(ctx context.Context) {
	xp := combat.ExperienceYield(b.Wild.BaseExperience, b.Wild.Level)
	for _, m := range b.Party.Members() {
		_, span := b.tracer.Start(ctx, "battle.experience")
		result := b.rules.Progression.GainExperience(m, xp)
		span.SetAttributes(
			attribute.String("member", m.Name),
			attribute.Int("xp", xp),
			attribute.Int("level", result.NewLevel),
			attribute.Int("levels_gained", result.LevelsGained),
			attribute.Bool("evolved", result.EvolvedInto != nil),
		)
		span.End()

		b.Progress = append(b.Progress, result)
		b.log(result.Messages...)
		for _, learned := range result.LearnedMoves {
			b.logf("%s learned %s!", m.Name, learned.Name)
		}
	}
}

func (b *Battle) transition(ctx context.Context, event string) error {
	if err := b.machine.Event(ctx, event); err != nil {
		return fmt.Errorf("battle %s: %w", event, err)
	}
	return nil
}

// endBattle records the outcome once a terminal phase is entered.
func (b *Battle) endBattle(ctx context.Context, outcome Phase) {
	_, span := b.tracer.Start(ctx, "battle.end")
	span.SetAttributes(
		attribute.String("battle.id", b.ID.String()),
		attribute.String("outcome", outcome.String()),
		attribute.Int("turns_taken", b.TurnCount),
		attribute.Int("party_hp_remaining", b.totalPartyHP()),
	)
	span.End()
}

// totalPartyHP returns the sum of all party members' current HP.
func (b *Battle) totalPartyHP() int {
	total := 0
	for _, m := range b.Party.Members() {
		total += m.HP
	}
	return total
}

func (b *Battle) log(messages ...string) {
	b.Log = append(b.Log, messages...)
}

func (b *Battle) logf(format string, args ...any) {
	b.Log = append(b.Log, fmt.Sprintf(format, args...))
}
