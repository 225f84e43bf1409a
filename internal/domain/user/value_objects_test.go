//go:build unit

package user_test

import (
	"testing"

	"hotel-booking-api/internal/domain/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEmail(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
		errIs error
	}{
		{name: "plain address", input: "guest@example.com", want: "guest@example.com"},
		{name: "plus tag", input: "guest+hotel@example.com", want: "guest+hotel@example.com"},
		{name: "surrounding whitespace trimmed", input: "  guest@example.com  ", want: "guest@example.com"},
		{name: "missing at sign", input: "guest.example.com", errIs: user.ErrInvalidEmail},
		{name: "missing tld", input: "guest@example", errIs: user.ErrInvalidEmail},
		{name: "empty", input: "", errIs: user.ErrInvalidEmail},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			email, err := user.NewEmail(tt.input)
			if tt.errIs != nil {
				assert.ErrorIs(t, err, tt.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, email.Value())
		})
	}
}

func TestNewPassword(t *testing.T) {
	_, err := user.NewPassword("short")
	assert.ErrorIs(t, err, user.ErrPasswordTooWeak)

	p, err := user.NewPassword("password123")
	require.NoError(t, err)
	assert.Equal(t, "password123", p.Value())
}

func TestNewRole(t *testing.T) {
	for _, valid := range []string{"user", "admin"} {
		role, err := user.NewRole(valid)
		require.NoError(t, err)
		assert.Equal(t, valid, role.String())
	}

	_, err := user.NewRole("superadmin")
	assert.ErrorIs(t, err, user.ErrInvalidRole)
}

func TestUserIsAdmin(t *testing.T) {
	email, err := user.NewEmail("admin@example.com")
	require.NoError(t, err)

	admin := user.NewUser(email, "hash", user.RoleAdmin)
	assert.True(t, admin.IsAdmin())

	guest := user.NewUser(email, "hash", user.RoleUser)
	assert.False(t, guest.IsAdmin())
}
