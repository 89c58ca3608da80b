package service

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/user/reelfind/internal/repository"
)

func newAuthService() *AuthService {
	return NewAuthService(repository.NewMemoryUserRepository(), log.New(io.Discard))
}

func TestAuthenticateSeedUser(t *testing.T) {
	svc := newAuthService()

	user, err := svc.Authenticate("demo@example.com", "password123")
	require.NoError(t, err)
	assert.Equal(t, "demo@example.com", user.Email)
	assert.Equal(t, "Demo User", user.Name)
}

func TestAuthenticateFailureModesAreIdentical(t *testing.T) {
	svc := newAuthService()

	_, wrongPass := svc.Authenticate("demo@example.com", "wrongpass")
	_, noUser := svc.Authenticate("nouser@example.com", "whatever")

	// No user-enumeration signal: same error either way.
	require.Error(t, wrongPass)
	require.Error(t, noUser)
	assert.ErrorIs(t, wrongPass, ErrInvalidCredentials)
	assert.ErrorIs(t, noUser, ErrInvalidCredentials)
	assert.Equal(t, wrongPass.Error(), noUser.Error())
}

func TestRegisterThenAuthenticate(t *testing.T) {
	svc := newAuthService()

	created, err := svc.Register("New User", "new@example.com", "secret1")
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "new@example.com", created.Email)

	// Registration and sign-in share one repository: the account works.
	user, err := svc.Authenticate("new@example.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, created.ID, user.ID)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := newAuthService()

	_, err := svc.Register("Demo Again", "demo@example.com", "secret1")
	assert.ErrorIs(t, err, repository.ErrEmailTaken)
}
