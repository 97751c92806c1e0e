package service

import (
	"context"
	"time"

	"github.com/spec-kit/library-catalog/internal/auth"
	"github.com/spec-kit/library-catalog/internal/config"
	"github.com/spec-kit/library-catalog/internal/domain"
	"github.com/spec-kit/library-catalog/internal/repository"
)

// AuthService coordinates registration and login flows.
type AuthService struct {
	users      repository.UserRepository
	tokenMgr   *auth.TokenManager
	bcryptCost int
}

// NewAuthService builds the service.
func NewAuthService(cfg config.AuthConfig, users repository.UserRepository) *AuthService {
	return &AuthService{
		users:      users,
		tokenMgr:   auth.NewTokenManager(cfg),
		bcryptCost: cfg.BcryptCost,
	}
}

// Register creates a new identity and returns a signed bearer token for it.
// A duplicate email fails with domain.ErrIdentityExists whether it is caught
// by the lookup or by losing the insert race; the store's unique constraint
// is the authoritative check.
func (s *AuthService) Register(ctx context.Context, email, password string) (*domain.User, string, time.Time, error) {
	existing, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	if existing != nil {
		return nil, "", time.Time{}, domain.ErrIdentityExists
	}

	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, "", time.Time{}, err
	}

	user, err := s.users.Insert(ctx, email, hash)
	if err != nil {
		if err == domain.ErrDuplicateIdentity {
			return nil, "", time.Time{}, domain.ErrIdentityExists
		}
		return nil, "", time.Time{}, err
	}

	token, exp, err := s.tokenMgr.IssueToken(user)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	return user, token, exp, nil
}

// Login verifies credentials and returns a signed bearer token. An unknown
// email fails with domain.ErrIdentityNotFound; a wrong password with
// domain.ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.User, string, time.Time, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	if user == nil {
		return nil, "", time.Time{}, domain.ErrIdentityNotFound
	}

	if err := auth.ComparePassword(user.PasswordHash, password); err != nil {
		return nil, "", time.Time{}, domain.ErrInvalidCredentials
	}

	token, exp, err := s.tokenMgr.IssueToken(user)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	return user, token, exp, nil
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}
