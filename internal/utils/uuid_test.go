package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUUIDGenerator_Generate(t *testing.T) {
	g := NewUUIDGenerator()

	first := g.Generate()
	second := g.Generate()

	assert.True(t, IsValidUUID(first))
	assert.True(t, IsValidUUID(second))
	assert.NotEqual(t, first, second)
}

func TestIsValidUUID(t *testing.T) {
	assert.True(t, IsValidUUID("0190b6a4-7c3e-7d2a-9f1e-3b8c2a1d4e5f"))
	assert.False(t, IsValidUUID(""))
	assert.False(t, IsValidUUID("not-a-uuid"))
	assert.False(t, IsValidUUID("urn:uuid:0190b6a4-7c3e-7d2a-9f1e-3b8c2a1d4e5f"))
	assert.False(t, IsValidUUID("0190b6a47c3e7d2a9f1e3b8c2a1d4e5f"))
}
