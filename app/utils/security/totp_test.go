package security

import (
	"testing"
	"time"

	"github.com/pquerna/otp/totp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSecret(t *testing.T) {
	secret, err := GenerateSecret("identity-service", "alice")
	require.NoError(t, err)
	assert.NotEmpty(t, secret)

	other, err := GenerateSecret("identity-service", "alice")
	require.NoError(t, err)
	assert.NotEqual(t, secret, other)
}

func TestTOTPVerifier_Verify(t *testing.T) {
	verifier := NewTOTPVerifier(1)

	secret, err := verifier.GenerateSecret("alice")
	require.NoError(t, err)

	code, err := totp.GenerateCode(secret, time.Now())
	require.NoError(t, err)

	assert.True(t, verifier.Verify(secret, code))
	assert.False(t, verifier.Verify(secret, "000000"))
	assert.False(t, verifier.Verify(secret, "not-a-code"))
	assert.False(t, verifier.Verify("not-base32!", code))
}

func TestTOTPVerifier_Skew(t *testing.T) {
	secret, err := GenerateSecret("identity-service", "alice")
	require.NoError(t, err)

	// A code from the previous step is accepted with one step of skew
	// and rejected with none. Two steps back is outside either window.
	previous, err := totp.GenerateCode(secret, time.Now().Add(-30*time.Second))
	require.NoError(t, err)
	stale, err := totp.GenerateCode(secret, time.Now().Add(-90*time.Second))
	require.NoError(t, err)

	assert.True(t, NewTOTPVerifier(1).Verify(secret, previous))
	assert.False(t, NewTOTPVerifier(0).Verify(secret, previous))
	assert.False(t, NewTOTPVerifier(1).Verify(secret, stale))
}
