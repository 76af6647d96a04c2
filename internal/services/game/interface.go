package game

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_game.go github.com/KirkDiggler/fairdice/internal/services/game Service,Prompter

// Service runs one complete game: turn-order toss, dice selection, one
// fairness round per party, and the final comparison
type Service interface {
	// Play drives the session state machine from init to end
	Play(ctx context.Context, input *PlayInput) (*PlayOutput, error)
}

// Prompter gathers one menu selection from the player. Implementations own
// the retry loop for malformed input, surface the help table on request, and
// return ErrSessionAborted when the player asks to quit.
type Prompter interface {
	// Select shows the menu described by input and returns the chosen option
	Select(ctx context.Context, input *SelectInput) (*SelectOutput, error)
}
