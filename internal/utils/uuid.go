package utils

import "github.com/google/uuid"

// UUIDGenerator issues journal ids. Ids of one generator sort in creation
// order.
type UUIDGenerator struct{}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a UUIDv7. A random v4 id is returned if the v7 source
// fails.
func (*UUIDGenerator) Generate() uuid.UUID {
	if id, err := uuid.NewV7(); err == nil {
		return id
	}
	return uuid.New()
}
