package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	const strong = "Tq9#vL2m!xWz7pRk"

	t.Run("Valid user", func(t *testing.T) {
		id := uuid.New()
		u, err := NewUser(UserConfig{ID: id, Username: "walker_01", PlainPassword: strong})
		require.NoError(t, err)
		assert.Equal(t, id, u.ID)
		assert.NotEqual(t, strong, u.PasswordHash)
		assert.True(t, u.VerifyPassword(strong))
		assert.False(t, u.VerifyPassword("wrong"))
	})

	cases := []struct {
		name     string
		username string
		password string
		err      error
	}{
		{"Short username", "ab", strong, ErrUsernameTooShort},
		{"Long username", "abcdefghijklmnopqrstu", strong, ErrUsernameTooLong},
		{"Bad characters", "walk-er", strong, ErrUsernameFormat},
		{"Weak password", "walker", "password", ErrWeakPassword},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewUser(UserConfig{ID: uuid.New(), Username: tc.username, PlainPassword: tc.password})
			assert.ErrorIs(t, err, tc.err)
		})
	}
}
