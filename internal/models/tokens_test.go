package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRefreshToken_Validity(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name    string
		token   RefreshToken
		expired bool
		revoked bool
	}{
		{"fresh", RefreshToken{ExpiresAt: now.Add(time.Hour)}, false, false},
		{"expired", RefreshToken{ExpiresAt: now.Add(-time.Hour)}, true, false},
		{"revoked", RefreshToken{ExpiresAt: now.Add(time.Hour), RevokedAt: &now}, false, true},
		{"expired and revoked", RefreshToken{ExpiresAt: now.Add(-time.Hour), RevokedAt: &now}, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expired, tt.token.IsExpired())
			assert.Equal(t, tt.revoked, tt.token.IsRevoked())
			assert.Equal(t, !tt.expired && !tt.revoked, tt.token.IsValid())
		})
	}
}

func TestRefreshToken_Revoke(t *testing.T) {
	token := RefreshToken{ExpiresAt: time.Now().Add(time.Hour)}
	at := time.Now()

	token.Revoke(at)

	require.NotNil(t, token.RevokedAt)
	assert.Equal(t, at, *token.RevokedAt)
	assert.False(t, token.IsValid())
}

func TestRefreshToken_BeforeCreate(t *testing.T) {
	token := RefreshToken{UserID: uuid.New()}

	require.NoError(t, token.BeforeCreate(nil))
	assert.NotEqual(t, uuid.Nil, token.ID)
	assert.False(t, token.CreatedAt.IsZero())
}

func TestBlacklistedToken(t *testing.T) {
	expired := BlacklistedToken{ExpiresAt: time.Now().Add(-time.Minute)}
	live := BlacklistedToken{ExpiresAt: time.Now().Add(time.Minute)}

	assert.True(t, expired.IsExpired())
	assert.False(t, live.IsExpired())

	require.NoError(t, live.BeforeCreate(nil))
	assert.NotEqual(t, uuid.Nil, live.ID)
	assert.False(t, live.BlacklistedAt.IsZero())
}

func TestCustomClaims_IsAccess(t *testing.T) {
	assert.True(t, (&CustomClaims{TokenType: TokenTypeAccess}).IsAccess())
	assert.False(t, (&CustomClaims{TokenType: TokenTypeRefresh}).IsAccess())
}
