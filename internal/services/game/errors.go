package game

import "errors"

// Define errors
var (
	ErrNilConfig       = errors.New("config cannot be nil")
	ErrNilGenerator    = errors.New("fairness generator cannot be nil")
	ErrNilRandomSource = errors.New("random source cannot be nil")
	ErrNilPrompter     = errors.New("prompter cannot be nil")
	ErrNilInput        = errors.New("input cannot be nil")
	ErrNoDice          = errors.New("a validated dice set is required")

	// ErrSessionAborted signals that the player asked to quit at a prompt.
	// It propagates up through every protocol call so embedding contexts can
	// intercept it; only the process entrypoint maps it to an exit status.
	ErrSessionAborted = errors.New("session aborted by player")
)
