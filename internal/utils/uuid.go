package utils

import "github.com/google/uuid"

// UUIDGenerator issues category ids. V7 keeps them time-sortable; the plain
// random fallback only triggers if the entropy source fails.
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
