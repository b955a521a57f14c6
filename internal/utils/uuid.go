package utils

import "github.com/google/uuid"

// UUIDGenerator produces identifiers for newly created entities.
// Time-ordered v7 identifiers are preferred so that primary key indexes stay
// append-mostly; a random v4 is used if the clock source fails.
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

// IsValidUUID reports whether id is a well-formed UUID in canonical
// 36-character form.
func IsValidUUID(id string) bool {
	if len(id) != 36 {
		return false
	}
	return uuid.Validate(id) == nil
}
