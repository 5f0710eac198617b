package utils

import "github.com/google/uuid"

// UUIDGenerator mints local entity ids. V7 keeps ids time-ordered so the
// local store's listing stays in creation order without an extra column.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
