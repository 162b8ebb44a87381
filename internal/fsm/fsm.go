// Package fsm tracks whether a card's latinization and example are visible.
package fsm

import "fmt"

type State string

type Event string

const (
	StateHidden   State = "hidden"
	StateRevealed State = "revealed"
)

const (
	EventReveal   Event = "reveal"
	EventNavigate Event = "navigate"
)

func Transition(current State, event Event) (State, error) {
	switch current {
	case StateHidden, StateRevealed:
	default:
		return current, fmt.Errorf("unknown state %q", current)
	}

	switch event {
	case EventReveal:
		return StateRevealed, nil
	case EventNavigate:
		return StateHidden, nil
	default:
		return current, invalidTransition(current, event)
	}
}

func invalidTransition(state State, event Event) error {
	return fmt.Errorf("invalid transition: %s --(%s)--> ?", state, event)
}
