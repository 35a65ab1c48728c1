package domain

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewID(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		id, err := NewID()
		require.NoError(t, err)
		assert.Len(t, id, IDLength)
		assert.True(t, ValidID(id), "id %q should be valid", id)

		_, dup := seen[id]
		assert.False(t, dup, "ids must not repeat")
		seen[id] = struct{}{}
	}
}

func TestValidID(t *testing.T) {
	tests := []struct {
		name string
		id   string
		want bool
	}{
		{"wildcard account id", WildcardAccountID, true},
		{"lowercase hex", strings.Repeat("ab12", 16), true},
		{"too short", strings.Repeat("a", 63), false},
		{"too long", strings.Repeat("a", 65), false},
		{"uppercase rejected", strings.Repeat("A", 64), false},
		{"non-hex rejected", strings.Repeat("g", 64), false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidID(tt.id))
		})
	}
}

func TestSession_IsExpired(t *testing.T) {
	session, err := NewSession(WildcardAccountID, false, nil)
	require.NoError(t, err)

	// Indefinite sessions never expire.
	assert.False(t, session.IsExpired(session.CreatedAt.Add(365*24*time.Hour)))

	exp := session.CreatedAt.Add(time.Minute)
	session.ExpiresAt = &exp
	assert.False(t, session.IsExpired(session.CreatedAt))
	assert.True(t, session.IsExpired(exp.Add(time.Second)))
}
