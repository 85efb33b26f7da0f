package service

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/credit-score-service/internal/auth"
	"github.com/spec-kit/credit-score-service/internal/config"
	"github.com/spec-kit/credit-score-service/internal/repository"
	apperrors "github.com/spec-kit/credit-score-service/pkg/util"
)

// AuthService coordinates the login and password-change flows.
type AuthService struct {
	users      repository.UserRepository
	tokenMgr   *auth.TokenManager
	bcryptCost int
}

// NewAuthService builds the service from the immutable startup config.
func NewAuthService(cfg config.AuthConfig, users repository.UserRepository) *AuthService {
	return &AuthService{
		users:      users,
		tokenMgr:   auth.NewTokenManager(cfg.JWTSecret, cfg.AccessTokenTTLMinutes),
		bcryptCost: cfg.BcryptCost,
	}
}

// Login checks credentials and issues a bearer token. Unknown username and
// wrong password return the same error value; only store or signing failures
// surface as internal errors.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, time.Time, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", time.Time{}, apperrors.ErrInvalidCredentials
		}
		return "", time.Time{}, apperrors.NewInternalError(err)
	}

	if !auth.VerifyPassword(user.PasswordHash, password) {
		return "", time.Time{}, apperrors.ErrInvalidCredentials
	}

	token, expiresAt, err := s.tokenMgr.GenerateToken(user.ID)
	if err != nil {
		return "", time.Time{}, apperrors.NewInternalError(err)
	}
	return token, expiresAt, nil
}

// ChangePassword verifies the current password before storing a new hash.
func (s *AuthService) ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) error {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("user")
		}
		return apperrors.NewInternalError(err)
	}

	if !auth.VerifyPassword(user.PasswordHash, currentPassword) {
		return apperrors.ErrInvalidCredentials
	}

	hash, err := auth.HashPassword(newPassword, s.bcryptCost)
	if err != nil {
		return apperrors.NewInternalError(err)
	}

	user.PasswordHash = hash
	if err := s.users.Update(ctx, user); err != nil {
		return apperrors.NewInternalError(err)
	}
	return nil
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}
