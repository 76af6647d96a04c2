package models

import (
	"time"
)

// Stage represents the current step of the game's state machine. Stages
// advance in a fixed order and are never revisited.
type Stage string

const (
	// StageInit indicates the session has been created but not started
	StageInit Stage = "init"

	// StageDetermineFirst indicates the turn-order toss is in progress
	StageDetermineFirst Stage = "determine_first"

	// StageSelectDice indicates the parties are picking their dice
	StageSelectDice Stage = "select_dice"

	// StageSystemRound indicates the system's roll is being resolved
	StageSystemRound Stage = "system_round"

	// StageUserRound indicates the player's roll is being resolved
	StageUserRound Stage = "user_round"

	// StageCompare indicates the two faces are being compared
	StageCompare Stage = "compare"

	// StageEnd indicates the session has finished
	StageEnd Stage = "end"
)

// Outcome is the final result of a session
type Outcome string

const (
	// OutcomeUserWin indicates the player's face beat the system's
	OutcomeUserWin Outcome = "user_win"

	// OutcomeSystemWin indicates the system's face beat the player's
	OutcomeSystemWin Outcome = "system_win"

	// OutcomeTie indicates both faces were equal
	OutcomeTie Outcome = "tie"
)

// Session holds the state of one complete game. It is mutated only by the
// game service as stages advance and is never rolled back.
type Session struct {
	// ID is the unique identifier for the session
	ID string

	// Dice is the validated dice set, read-only after creation
	Dice []Die

	// Stage is the current step of the state machine
	Stage Stage

	// UserFirst reports whether the player won the turn-order toss
	UserFirst bool

	// SystemDieIndex is the index into Dice of the system's die
	SystemDieIndex int

	// UserDieIndex is the index into Dice of the player's die
	UserDieIndex int

	// SystemRound is the resolved round for the system's die
	SystemRound *RoundResult

	// UserRound is the resolved round for the player's die
	UserRound *RoundResult

	// Outcome is the final comparison result
	Outcome Outcome

	// CreatedAt is when the session was created
	CreatedAt time.Time

	// CompletedAt is when the session reached the end stage
	CompletedAt time.Time
}

// SystemDie returns the die selected by the system
func (s *Session) SystemDie() Die {
	return s.Dice[s.SystemDieIndex]
}

// UserDie returns the die selected by the player
func (s *Session) UserDie() Die {
	return s.Dice[s.UserDieIndex]
}
