package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := NewBcryptHasher(bcrypt.MinCost)

	hash, err := hasher.Hash("p1")
	require.NoError(t, err)
	assert.NotEqual(t, "p1", hash)

	assert.True(t, hasher.Check("p1", hash))
	assert.False(t, hasher.Check("p2", hash))
	assert.False(t, hasher.Check("", hash))
	assert.False(t, hasher.Check("p1", ""))
}

func TestBcryptHasher_UsesConfiguredCost(t *testing.T) {
	hash, err := NewBcryptHasher(bcrypt.MinCost).Hash("secret")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.MinCost, cost)

	hash, err = NewBcryptHasher(99).Hash("secret")
	require.NoError(t, err)

	cost, err = bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.DefaultCost, cost)
}

func TestBcryptHasher_LongSecretsUseEveryByte(t *testing.T) {
	hasher := NewBcryptHasher(bcrypt.MinCost)
	prefix := strings.Repeat("x", 100)

	hash, err := hasher.Hash(prefix + "first")
	require.NoError(t, err)

	assert.True(t, hasher.Check(prefix+"first", hash))
	assert.False(t, hasher.Check(prefix+"second", hash))
}
