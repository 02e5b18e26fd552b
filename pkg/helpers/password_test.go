package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	hash, err := h.Hash("Secret123!")
	require.NoError(t, err)
	assert.NotEqual(t, "Secret123!", hash)

	assert.True(t, h.Verify("Secret123!", hash))
	assert.False(t, h.Verify("secret123!", hash))
	assert.False(t, h.Verify("Secret123!", "not-a-hash"))
}

func TestNewBcryptHasher_InvalidCost(t *testing.T) {
	assert.Equal(t, bcrypt.DefaultCost, NewBcryptHasher(0).Cost)
	assert.Equal(t, bcrypt.DefaultCost, NewBcryptHasher(99).Cost)
	assert.Equal(t, 12, NewBcryptHasher(12).Cost)
}
