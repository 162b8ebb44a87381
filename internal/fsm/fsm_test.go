package fsm

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTransitionRevealThenNavigate(t *testing.T) {
	s := StateHidden

	next, err := Transition(s, EventReveal)
	require.NoError(t, err)
	require.Equal(t, StateRevealed, next)

	next, err = Transition(next, EventNavigate)
	require.NoError(t, err)
	require.Equal(t, StateHidden, next)
}

func TestTransitionMatrix(t *testing.T) {
	tests := []struct {
		name    string
		state   State
		event   Event
		want    State
		wantErr bool
	}{
		{name: "hidden reveal", state: StateHidden, event: EventReveal, want: StateRevealed},
		{name: "revealed reveal stays revealed", state: StateRevealed, event: EventReveal, want: StateRevealed},
		{name: "hidden navigate stays hidden", state: StateHidden, event: EventNavigate, want: StateHidden},
		{name: "revealed navigate hides", state: StateRevealed, event: EventNavigate, want: StateHidden},
		{name: "hidden unknown event", state: StateHidden, event: Event("flip"), want: StateHidden, wantErr: true},
		{name: "revealed unknown event", state: StateRevealed, event: Event("flip"), want: StateRevealed, wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			next, err := Transition(tc.state, tc.event)
			require.Equal(t, tc.want, next)
			if tc.wantErr {
				require.Error(t, err)
				require.Contains(t, err.Error(), "invalid transition")
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestTransitionUnknownState(t *testing.T) {
	next, err := Transition(State("mystery"), EventReveal)
	require.Error(t, err)
	require.Contains(t, err.Error(), "unknown state")
	require.Equal(t, State("mystery"), next)
}
