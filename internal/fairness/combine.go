package fairness

import "fmt"

// Combine folds two independently chosen non-negative values into a single
// index in [0, modulus). One value is hidden until after the other party has
// committed to theirs, so neither party could have biased the result alone.
// A modulus below 1 is a programming error, not a game state: callers always
// pass a die's face count, so this panics rather than returning an error.
func Combine(a, b, modulus int) int {
	if modulus < 1 {
		panic(fmt.Sprintf("fairness: combine called with modulus %d", modulus))
	}

	return ((a % modulus) + (b % modulus)) % modulus
}
