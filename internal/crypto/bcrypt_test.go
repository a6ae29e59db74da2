package crypto

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_HashAndCompare(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	hash, err := h.Hash("s3cret")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret", hash, "hash must not be the plaintext")
	assert.True(t, strings.HasPrefix(hash, "$2a$"))

	assert.NoError(t, h.Compare(hash, "s3cret"))
	assert.ErrorIs(t, h.Compare(hash, "wrong"), ErrMismatchedPassword)
}

func TestBcryptHasher_Salted(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	first, err := h.Hash("same")
	require.NoError(t, err)
	second, err := h.Hash("same")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestBcryptHasher_MalformedHash(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	err := h.Compare("not-a-bcrypt-hash", "pw")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrMismatchedPassword)
}

func TestBcryptHasher_TooLong(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	_, err := h.Hash(strings.Repeat("x", 73))
	assert.ErrorIs(t, err, ErrPasswordTooLong)
}

func TestNewBcryptHasher_CostFallback(t *testing.T) {
	tests := []struct {
		name string
		cost int
		want int
	}{
		{"zero", 0, bcrypt.DefaultCost},
		{"too high", bcrypt.MaxCost + 1, bcrypt.DefaultCost},
		{"min", bcrypt.MinCost, bcrypt.MinCost},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewBcryptHasher(tt.cost).(*bcryptHasher)
			assert.Equal(t, tt.want, h.cost)
		})
	}
}
