package models

// RoundResult captures one fairness round: the value the system committed to,
// the number the player answered with, and the face the combination landed on.
type RoundResult struct {
	// ID is the unique identifier for the round
	ID string

	// SystemValue is the value the system committed to and later revealed
	SystemValue int

	// UserValue is the modular number supplied by the player
	UserValue int

	// CombinedIndex is (SystemValue + UserValue) mod the die's face count
	CombinedIndex int

	// Face is the face value of the rolled die at CombinedIndex
	Face int
}
