package game

import (
	"io"

	"github.com/KirkDiggler/fairdice/internal/common/clock"
	"github.com/KirkDiggler/fairdice/internal/common/random"
	"github.com/KirkDiggler/fairdice/internal/common/uuid"
	"github.com/KirkDiggler/fairdice/internal/fairness"
	"github.com/KirkDiggler/fairdice/internal/models"
)

// Config holds configuration for the game service
type Config struct {
	// Generator produces the committed random values for fairness rounds
	Generator *fairness.Generator

	// Random drives the system's uncommitted die picks
	Random random.Source

	// Prompter gathers the player's menu selections
	Prompter Prompter

	// Output receives the game transcript; defaults to os.Stdout
	Output io.Writer

	// Clock provides session timestamps; defaults to the system clock
	Clock clock.Clock

	// UUID provides session and round identifiers; defaults to random UUIDs
	UUID uuid.Generator
}

// PlayInput holds the parameters for playing one game
type PlayInput struct {
	// Dice is the validated dice set for the session
	Dice []models.Die
}

// PlayOutput holds the result of a completed game
type PlayOutput struct {
	// Session is the finished session, including both rounds and the outcome
	Session *models.Session
}

// SelectInput describes one menu shown to the player
type SelectInput struct {
	// Prompt is an optional line printed before the options
	Prompt string

	// Options is the ordered list of legal selections
	Options []Option

	// Help is the text shown when the player asks for help
	Help string
}

// Option is a single selectable menu entry
type Option struct {
	// Value is returned when the option is selected
	Value int

	// Label is the text shown next to the value
	Label string
}

// SelectOutput holds the player's selection
type SelectOutput struct {
	// Value is the Value of the chosen option
	Value int
}
