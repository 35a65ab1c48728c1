package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewIdentity(t *testing.T) {
	tests := []struct {
		name     string
		username string
		wantErr  bool
	}{
		{
			name:     "valid username",
			username: "alice",
			wantErr:  false,
		},
		{
			name:     "empty username",
			username: "",
			wantErr:  true,
		},
		{
			name:     "username too long",
			username: "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa",
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			identity, err := NewIdentity(tt.username)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, identity)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.username, identity.Username)
			assert.True(t, ValidID(identity.ID))
			assert.False(t, identity.Admin)
		})
	}
}

func TestCredentials_LockedOut(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name         string
		attemptCount uint
		lastAttempt  *time.Time
		locked       bool
		want         bool
	}{
		{
			name:         "no prior attempts",
			attemptCount: 0,
			lastAttempt:  nil,
			want:         false,
		},
		{
			name:         "inside backoff window",
			attemptCount: 5,
			lastAttempt:  timePtr(now.Add(-3 * time.Second)),
			want:         true, // window is 5*2s = 10s
		},
		{
			name:         "window just elapsed",
			attemptCount: 5,
			lastAttempt:  timePtr(now.Add(-11 * time.Second)),
			want:         false,
		},
		{
			name:         "single failure window",
			attemptCount: 1,
			lastAttempt:  timePtr(now.Add(-1 * time.Second)),
			want:         true, // window is 2s
		},
		{
			name:         "counter without timestamp",
			attemptCount: 50,
			lastAttempt:  nil,
			want:         false,
		},
		{
			name:         "manual lock wins regardless of window",
			attemptCount: 0,
			lastAttempt:  timePtr(now.Add(-time.Hour)),
			locked:       true,
			want:         true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			creds := &Credentials{
				AttemptCount: tt.attemptCount,
				LastAttempt:  tt.lastAttempt,
				Locked:       tt.locked,
			}
			assert.Equal(t, tt.want, creds.LockedOut(now))
		})
	}
}

func TestCredentials_LockedOut_WindowGrowsWithAttempts(t *testing.T) {
	now := time.Now()
	last := now.Add(-9 * time.Second)

	// 9 seconds after the last attempt: 4 failures (8s window) is
	// clear, 5 failures (10s window) is still locked.
	cleared := &Credentials{AttemptCount: 4, LastAttempt: &last}
	locked := &Credentials{AttemptCount: 5, LastAttempt: &last}

	assert.False(t, cleared.LockedOut(now))
	assert.True(t, locked.LockedOut(now))
}

func TestCredentials_HasTempPassword(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name string
		hash string
		exp  *time.Time
		want bool
	}{
		{
			name: "no temp password",
			hash: "",
			exp:  nil,
			want: false,
		},
		{
			name: "valid temp password",
			hash: "$2b$12$hash",
			exp:  timePtr(now.Add(5 * time.Minute)),
			want: true,
		},
		{
			name: "expired temp password",
			hash: "$2b$12$hash",
			exp:  timePtr(now.Add(-time.Minute)),
			want: false,
		},
		{
			name: "temp password without expiry",
			hash: "$2b$12$hash",
			exp:  nil,
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			creds := &Credentials{
				TempPasswordHash: tt.hash,
				TempPasswordExp:  tt.exp,
			}
			assert.Equal(t, tt.want, creds.HasTempPassword(now))
		})
	}
}

func timePtr(t time.Time) *time.Time {
	return &t
}
