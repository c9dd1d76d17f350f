package utils

import "github.com/google/uuid"

type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a time-ordered v7 id, falling back to v4.
func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}

// IsUUID reports whether s is a well-formed UUID in canonical form.
func IsUUID(s string) bool {
	if len(s) != 36 {
		return false
	}

	_, err := uuid.Parse(s)
	return err == nil
}
