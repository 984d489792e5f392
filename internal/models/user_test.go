package models

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUser_Validate(t *testing.T) {
	tests := []struct {
		name   string
		user   User
		errMsg string
	}{
		{"valid user", User{Username: "alice", Email: "alice@example.com"}, ""},
		{"username with allowed punctuation", User{Username: "a.l+i-c_e@x", Email: "alice@example.com"}, ""},
		{"empty username", User{Email: "alice@example.com"}, "username is required"},
		{"username with spaces", User{Username: "al ice", Email: "alice@example.com"}, "username may contain"},
		{"username too long", User{Username: strings.Repeat("a", 151), Email: "alice@example.com"}, "at most 150"},
		{"empty email", User{Username: "alice"}, "email is required"},
		{"invalid email", User{Username: "alice", Email: "not-an-email"}, "invalid email format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.user.Validate()
			if tt.errMsg == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestUser_BeforeCreate(t *testing.T) {
	user := User{Username: "bob", Email: "bob@example.com"}

	require.NoError(t, user.BeforeCreate(nil))
	assert.NotEqual(t, uuid.Nil, user.ID)
	assert.False(t, user.CreatedAt.IsZero())
	assert.False(t, user.UpdatedAt.IsZero())
}

func TestUser_UpdateLastLogin(t *testing.T) {
	user := User{}
	assert.Nil(t, user.LastLoginAt)

	user.UpdateLastLogin()
	assert.NotNil(t, user.LastLoginAt)
}

func TestUserProfile_BeforeCreate(t *testing.T) {
	profile := UserProfile{UserID: uuid.New()}

	require.NoError(t, profile.BeforeCreate(nil))
	assert.NotEqual(t, uuid.Nil, profile.ID)
	assert.False(t, profile.MemberSince.IsZero())

	fixed := NewDate(2020, 3, 1)
	kept := UserProfile{UserID: uuid.New(), MemberSince: fixed}
	require.NoError(t, kept.BeforeCreate(nil))
	assert.Equal(t, fixed, kept.MemberSince)
}
