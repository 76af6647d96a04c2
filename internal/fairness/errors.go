package fairness

import "errors"

// Define errors
var (
	ErrNilConfig       = errors.New("config cannot be nil")
	ErrNilSource       = errors.New("random source cannot be nil")
	ErrInvalidRange    = errors.New("max must be greater than or equal to min")
	ErrTagNotShown     = errors.New("commitment revealed before its tag was shown")
	ErrAlreadyRevealed = errors.New("commitment already revealed")
)
