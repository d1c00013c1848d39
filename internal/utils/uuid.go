package utils

import "github.com/google/uuid"

// IDGenerator issues identifiers for user documents and request traces.
type IDGenerator struct{}

func NewIDGenerator() *IDGenerator {
	return &IDGenerator{}
}

// NewID returns a time-ordered UUIDv7, falling back to a random UUIDv4 when
// the clock source fails.
func (g *IDGenerator) NewID() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
