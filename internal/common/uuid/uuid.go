package uuid

import "github.com/google/uuid"

//go:generate mockgen -package=mocks -destination=mocks/mock_generator.go github.com/KirkDiggler/strikeout/internal/common/uuid Generator

// Generator hands out identifiers for games and players
type Generator interface {
	NewID() string
}

// DefaultGenerator implements the Generator interface using random v4 UUIDs
type DefaultGenerator struct{}

// New creates a new DefaultGenerator
func New() *DefaultGenerator {
	return &DefaultGenerator{}
}

// NewID returns a new UUID string
func (d *DefaultGenerator) NewID() string {
	return uuid.New().String()
}
