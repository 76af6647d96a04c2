package uuid

import "github.com/google/uuid"

//go:generate mockgen -package=mocks -destination=mocks/mock_uuid.go github.com/KirkDiggler/fairdice/internal/common/uuid Generator

// Generator produces unique identifiers for sessions and rounds
type Generator interface {
	NewID() string
}

// DefaultGenerator implements the Generator interface using the uuid package
type DefaultGenerator struct{}

// New creates a new UUID-backed generator
func New() *DefaultGenerator {
	return &DefaultGenerator{}
}

// NewID returns a new random identifier
func (g *DefaultGenerator) NewID() string {
	return uuid.New().String()
}
