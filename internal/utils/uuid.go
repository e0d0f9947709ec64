package utils

import "github.com/google/uuid"

// UUIDGenerator produces time-ordered ids for blobs and trace ids.
type UUIDGenerator struct{}

// NewUUIDGenerator returns a ready generator.
func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a UUIDv7 string, falling back to a random v4 when the
// clock source fails.
func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
