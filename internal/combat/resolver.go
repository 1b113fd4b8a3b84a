package combat

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/dungeonseeker/internal/event"
	"github.com/samdwyer/dungeonseeker/internal/telemetry"
)

// Phase is a state of the encounter state machine.
type Phase int

const (
	// PhaseAwaitingAction - waiting for the player to choose
	PhaseAwaitingAction Phase = iota
	// PhasePlayerAttacking - the player's weapon attack resolves
	PhasePlayerAttacking
	// PhaseMonsterCounterAttack - the monster answers a weapon attack
	PhaseMonsterCounterAttack
	// PhaseFled - the player ran away
	PhaseFled
	// PhaseMonsterDefeated - the monster's health dropped to 0 or below
	PhaseMonsterDefeated
	// PhasePlayerDefeated - the player's health dropped to 0 or below
	PhasePlayerDefeated
)

// String returns a human-readable phase name.
func (p Phase) String() string {
	switch p {
	case PhaseAwaitingAction:
		return "awaiting_action"
	case PhasePlayerAttacking:
		return "player_attacking"
	case PhaseMonsterCounterAttack:
		return "monster_counter_attack"
	case PhaseFled:
		return "fled"
	case PhaseMonsterDefeated:
		return "monster_defeated"
	case PhasePlayerDefeated:
		return "player_defeated"
	default:
		return "unknown"
	}
}

// Terminal reports whether the encounter is over in this phase.
func (p Phase) Terminal() bool {
	return p == PhaseFled || p == PhaseMonsterDefeated || p == PhasePlayerDefeated
}

// Result is the outcome of one encounter.
type Result struct {
	Phase Phase // Terminal phase reached
	Turns int   // Recognised actions taken; ignored input is not counted
}

// Encounter holds the state of a single fight between the hero and one foe.
type Encounter struct {
	Phase Phase
	Turns int
	Hero  Hero
	Foe   Foe
}

// NewEncounter creates an encounter waiting for the player's first action.
func NewEncounter(hero Hero, foe Foe) *Encounter {
	return &Encounter{
		Phase: PhaseAwaitingAction,
		Hero:  hero,
		Foe:   foe,
	}
}

// Resolver runs encounters, taking choices from an ActionProvider and
// reporting everything that happens to a Narrator.
type Resolver struct {
	actions  ActionProvider
	narrator event.Narrator
	tracer   trace.Tracer
}

// NewResolver creates a new resolver.
func NewResolver(actions ActionProvider, narrator event.Narrator) *Resolver {
	return &Resolver{
		actions:  actions,
		narrator: narrator,
		tracer:   telemetry.Tracer("combat"),
	}
}

// Resolve runs the encounter between hero and foe until someone falls or
// the player flees. Combat itself grants no reward.
func (r *Resolver) Resolve(ctx context.Context, hero Hero, foe Foe) (Result, error) {
	ctx, span := r.tracer.Start(ctx, "combat.start")
	span.SetAttributes(
		attribute.String("monster", foe.GetName()),
		attribute.Int("monster_hp", foe.GetHP()),
		attribute.Int("player_hp", hero.GetHP()),
	)
	defer span.End()

	r.narrate(ctx, event.Event{Kind: event.KindMonsterAppeared, Subject: foe.GetName(), Remaining: foe.GetHP()})

	enc := NewEncounter(hero, foe)
	for !enc.Phase.Terminal() {
		if err := r.Step(ctx, enc); err != nil {
			span.RecordError(err)
			return Result{Phase: enc.Phase, Turns: enc.Turns}, err
		}
	}

	r.endCombat(ctx, enc)
	return Result{Phase: enc.Phase, Turns: enc.Turns}, nil
}

// Step advances the encounter by one state transition.
func (r *Resolver) Step(ctx context.Context, enc *Encounter) error {
	switch enc.Phase {
	case PhaseAwaitingAction:
		if !enc.Foe.IsAlive() {
			r.enter(ctx, enc, PhaseMonsterDefeated)
			return nil
		}
		if !enc.Hero.IsAlive() {
			r.enter(ctx, enc, PhasePlayerDefeated)
			return nil
		}
		action, err := r.actions.NextAction(ctx)
		if err != nil {
			return fmt.Errorf("read action: %w", err)
		}
		return r.executeAction(ctx, enc, action)

	case PhasePlayerAttacking:
		damage, err := enc.Hero.Attack(enc.Foe)
		if err != nil {
			return fmt.Errorf("player attack: %w", err)
		}
		r.narrate(ctx, event.Event{Kind: event.KindPlayerHit, Subject: enc.Foe.GetName(), Amount: damage, Remaining: enc.Foe.GetHP()})
		if enc.Foe.IsAlive() {
			r.enter(ctx, enc, PhaseMonsterCounterAttack)
		} else {
			r.enter(ctx, enc, PhaseMonsterDefeated)
		}
		return nil

	case PhaseMonsterCounterAttack:
		damage, err := enc.Foe.Attack(enc.Hero)
		if err != nil {
			return fmt.Errorf("%s attack: %w", enc.Foe.GetName(), err)
		}
		r.narrate(ctx, event.Event{Kind: event.KindMonsterHit, Subject: enc.Foe.GetName(), Amount: damage, Remaining: enc.Hero.GetHP()})
		if enc.Hero.IsAlive() {
			r.enter(ctx, enc, PhaseAwaitingAction)
		} else {
			r.enter(ctx, enc, PhasePlayerDefeated)
		}
		return nil

	default:
		return nil
	}
}

// executeAction applies the player's choice. Only a weapon attack gives the
// monster a reply; heal and magic end the turn without one.
func (r *Resolver) executeAction(ctx context.Context, enc *Encounter, action Action) error {
	if action == ActionUnknown {
		return nil
	}

	_, span := r.tracer.Start(ctx, "combat.turn")
	span.SetAttributes(
		attribute.String("action", action.String()),
		attribute.Int("turn", enc.Turns),
	)
	defer span.End()

	enc.Turns++

	switch action {
	case ActionAttack:
		r.enter(ctx, enc, PhasePlayerAttacking)

	case ActionFlee:
		r.enter(ctx, enc, PhaseFled)

	case ActionHeal:
		amount, ok, err := enc.Hero.Heal()
		if err != nil {
			return fmt.Errorf("heal: %w", err)
		}
		if ok {
			r.narrate(ctx, event.Event{Kind: event.KindHealed, Amount: amount, Remaining: enc.Hero.HealsLeft()})
			span.SetAttributes(attribute.Int("healing", amount))
		} else {
			r.narrate(ctx, event.Event{Kind: event.KindHealsExhausted})
			span.SetAttributes(attribute.Bool("failed", true))
		}

	case ActionMagic:
		damage, ok, err := enc.Hero.CastMagic(enc.Foe)
		if err != nil {
			return fmt.Errorf("cast magic: %w", err)
		}
		if ok {
			r.narrate(ctx, event.Event{Kind: event.KindMagicCast, Subject: enc.Foe.GetName(), Amount: damage, Remaining: enc.Foe.GetHP()})
			span.SetAttributes(attribute.Int("damage", damage))
		} else {
			r.narrate(ctx, event.Event{Kind: event.KindMagicDepleted})
			span.SetAttributes(attribute.Bool("failed", true))
		}
	}
	return nil
}

// enter moves the encounter to phase and narrates the phases that end it.
func (r *Resolver) enter(ctx context.Context, enc *Encounter, phase Phase) {
	enc.Phase = phase
	switch phase {
	case PhaseFled:
		r.narrate(ctx, event.Event{Kind: event.KindFled, Subject: enc.Foe.GetName()})
	case PhaseMonsterDefeated:
		r.narrate(ctx, event.Event{Kind: event.KindMonsterDefeated, Subject: enc.Foe.GetName()})
	}
}

// endCombat records how the encounter finished.
func (r *Resolver) endCombat(ctx context.Context, enc *Encounter) {
	_, span := r.tracer.Start(ctx, "combat.end")
	span.SetAttributes(
		attribute.String("outcome", enc.Phase.String()),
		attribute.Int("turns_taken", enc.Turns),
		attribute.Int("player_hp_remaining", enc.Hero.GetHP()),
		attribute.Int("monster_hp_remaining", enc.Foe.GetHP()),
	)
	span.End()
}

func (r *Resolver) narrate(ctx context.Context, ev event.Event) {
	if r.narrator != nil {
		r.narrator.Narrate(ctx, ev)
	}
}
