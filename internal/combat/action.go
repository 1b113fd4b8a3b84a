package combat

import (
	"context"
	"errors"
	"strings"
)

// ErrNoMoreActions is returned by Actions once its queue is empty.
var ErrNoMoreActions = errors.New("no more actions")

// Action is one choice the player can make on their turn.
type Action int

const (
	// ActionUnknown is unrecognised input; the resolver ignores it.
	ActionUnknown Action = iota
	ActionAttack
	ActionFlee
	ActionHeal
	ActionMagic
)

// String returns a human-readable action name.
func (a Action) String() string {
	switch a {
	case ActionAttack:
		return "attack"
	case ActionFlee:
		return "flee"
	case ActionHeal:
		return "heal"
	case ActionMagic:
		return "magic"
	default:
		return "unknown"
	}
}

// ParseAction maps one line of player input to an Action, case-insensitively.
// English initials (a, f, h, m) and Russian initials (а, б, л, м) are
// accepted, as are the English words.
func ParseAction(input string) Action {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "a", "а", "attack":
		return ActionAttack
	case "f", "б", "flee":
		return ActionFlee
	case "h", "л", "heal":
		return ActionHeal
	case "m", "м", "magic":
		return ActionMagic
	default:
		return ActionUnknown
	}
}

// ActionProvider supplies the player's choices to the resolver.
type ActionProvider interface {
	// NextAction blocks until the player has chosen.
	NextAction(ctx context.Context) (Action, error)
}

// ActionProviderFunc adapts a function to the ActionProvider interface.
type ActionProviderFunc func(ctx context.Context) (Action, error)

// NextAction calls f(ctx).
func (f ActionProviderFunc) NextAction(ctx context.Context) (Action, error) {
	return f(ctx)
}

// Actions is a fixed queue of choices, consumed front to back.
type Actions []Action

// NextAction pops the next action.
func (a *Actions) NextAction(ctx context.Context) (Action, error) {
	if err := ctx.Err(); err != nil {
		return ActionUnknown, err
	}
	if len(*a) == 0 {
		return ActionUnknown, ErrNoMoreActions
	}
	next := (*a)[0]
	*a = (*a)[1:]
	return next, nil
}
