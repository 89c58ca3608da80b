package service

import (
	"errors"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/user/reelfind/internal/auth"
	"github.com/user/reelfind/internal/model"
	"github.com/user/reelfind/internal/repository"
)

// ErrInvalidCredentials is the single failure mode for sign-in. Unknown
// email and wrong password are indistinguishable to the caller; the
// distinction goes to the server log only.
var ErrInvalidCredentials = errors.New("invalid email or password")

// AuthService owns the credential check and registration flow.
type AuthService struct {
	users  repository.UserRepository
	logger *log.Logger
}

func NewAuthService(users repository.UserRepository, logger *log.Logger) *AuthService {
	return &AuthService{
		users:  users,
		logger: logger,
	}
}

// Authenticate verifies credentials and returns the public projection of
// the user. The password hash never crosses this boundary.
func (s *AuthService) Authenticate(email, password string) (*model.PublicUser, error) {
	user, err := s.users.FindByEmail(email)
	if err != nil {
		s.logger.Error("user lookup failed", "err", err)
		return nil, ErrInvalidCredentials
	}
	if user == nil {
		s.logger.Debug("sign-in for unknown email", "email", email)
		return nil, ErrInvalidCredentials
	}

	if !auth.VerifyPassword(password, user.PasswordHash) {
		s.logger.Debug("sign-in with wrong password", "email", email)
		return nil, ErrInvalidCredentials
	}

	return user.Public(), nil
}

// Register creates an account. Input shape validation happens at the
// handler; this enforces email uniqueness through the repository.
func (s *AuthService) Register(name, email, password string) (*model.PublicUser, error) {
	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		ID:           uuid.NewString(),
		Email:        email,
		Name:         name,
		PasswordHash: hash,
	}
	if err := s.users.Insert(user); err != nil {
		return nil, err
	}

	s.logger.Info("user registered", "id", user.ID)
	return user.Public(), nil
}
