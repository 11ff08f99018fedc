package utils

import "github.com/google/uuid"

// UUIDGenerator hands out UUIDv7 strings, so account ids sort by creation
// time. It falls back to a random v4 when v7 generation fails.
type UUIDGenerator struct {
	newV7 func() (uuid.UUID, error)
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{newV7: uuid.NewV7}
}

func (g *UUIDGenerator) Generate() string {
	if id, err := g.newV7(); err == nil {
		return id.String()
	}
	return uuid.NewString()
}
