package server

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/priyansh/career-compass/internal/config"
)

// UserService provides business logic for account registration and login.
type UserService struct {
	store          Store
	passwordConfig *config.PasswordConfig
}

// NewUserService creates a new UserService with the given dependencies.
func NewUserService(store Store, passwordConfig *config.PasswordConfig) *UserService {
	return &UserService{
		store:          store,
		passwordConfig: passwordConfig,
	}
}

// Account is the authenticated identity returned to the client.
type Account struct {
	UID   string `json:"uid"`
	Email string `json:"email"`
}

// Register creates a new account and its backing user row.
func (s *UserService) Register(ctx context.Context, email, password string) (*Account, error) {
	exists, err := s.store.CheckEmailExists(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email existence: %w", err)
	}
	if exists {
		return nil, &ErrEmailAlreadyExists{Email: email}
	}

	passwordHash, err := s.passwordConfig.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	uid := uuid.NewString()
	if err := s.store.CreateAccount(ctx, uid, email, passwordHash); err != nil {
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	return &Account{UID: uid, Email: email}, nil
}

// Login authenticates an account. Unknown emails and wrong passwords
// return the same generic error.
func (s *UserService) Login(ctx context.Context, email, password string) (*Account, error) {
	creds, err := s.store.GetCredentials(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to get credentials: %w", err)
	}
	if creds == nil || !creds.PasswordSet {
		return nil, &ErrInvalidCredentials{}
	}
	if !s.passwordConfig.VerifyPassword(password, creds.PasswordHash) {
		return nil, &ErrInvalidCredentials{}
	}

	return &Account{UID: creds.UID, Email: creds.Email}, nil
}
