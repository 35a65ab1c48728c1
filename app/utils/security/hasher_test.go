package security

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// Cost 4 keeps the bcrypt work negligible in tests.
const testCost = bcrypt.MinCost

func TestNewBcryptHasher_CostBounds(t *testing.T) {
	tests := []struct {
		name    string
		cost    int
		wantErr bool
	}{
		{name: "minimum cost", cost: bcrypt.MinCost},
		{name: "maximum cost", cost: bcrypt.MaxCost},
		{name: "below minimum", cost: bcrypt.MinCost - 1, wantErr: true},
		{name: "above maximum", cost: bcrypt.MaxCost + 1, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hasher, err := NewBcryptHasher(tt.cost)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, hasher)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.cost, hasher.CurrentCost())
			}
		})
	}
}

func TestBcryptHasher_HashAndCompare(t *testing.T) {
	hasher, err := NewBcryptHasher(testCost)
	require.NoError(t, err)

	hash, err := hasher.Hash("correct horse battery staple")
	require.NoError(t, err)
	require.NotEmpty(t, hash)

	assert.True(t, hasher.Compare(hash, "correct horse battery staple"))
	assert.False(t, hasher.Compare(hash, "wrong password"))
	assert.False(t, hasher.Compare("not a bcrypt hash", "anything"))
}

func TestBcryptHasher_Cost(t *testing.T) {
	hasher, err := NewBcryptHasher(testCost)
	require.NoError(t, err)

	hash, err := hasher.Hash("password")
	require.NoError(t, err)

	cost, err := hasher.Cost(hash)
	require.NoError(t, err)
	assert.Equal(t, testCost, cost)

	_, err = hasher.Cost("garbage")
	assert.Error(t, err)
}

func TestBcryptHasher_DummyHash(t *testing.T) {
	hasher, err := NewBcryptHasher(testCost)
	require.NoError(t, err)

	dummy := hasher.DummyHash()
	require.NotEmpty(t, dummy)

	// The dummy carries the configured cost so comparing against it
	// takes as long as comparing against a stored hash.
	cost, err := hasher.Cost(dummy)
	require.NoError(t, err)
	assert.Equal(t, testCost, cost)

	// Stable across calls; no per-request key derivation.
	assert.Equal(t, dummy, hasher.DummyHash())

	// No password guess ever matches it.
	assert.False(t, hasher.Compare(dummy, ""))
	assert.False(t, hasher.Compare(dummy, "password"))
}
