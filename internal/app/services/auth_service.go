// Package services composes page view models from backend data: session
// lifecycle, attendance workflows, the exams module, reports, and the
// dashboard.
package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/lyra-school/lyra-web/internal/app/models"
	"github.com/lyra-school/lyra-web/internal/backend"
	"github.com/lyra-school/lyra-web/internal/session"
)

// AuthService drives the session lifecycle against the backend.
type AuthService struct {
	backend *backend.Services
	logger  zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(b *backend.Services, logger zerolog.Logger) *AuthService {
	return &AuthService{backend: b, logger: logger}
}

// Login exchanges credentials for tokens, fetches the profile, and starts
// the session. Returns the signed-in user.
func (s *AuthService) Login(ctx context.Context, sess *session.Session, email, password string) (models.User, error) {
	tokens, err := s.backend.Auth.Login(ctx, email, password)
	if err != nil {
		return models.User{}, err
	}

	// The session is not written yet, so the profile fetch carries the
	// fresh tokens directly.
	authed := backend.WithTokens(ctx, &backend.StaticTokens{
		Access:  tokens.AccessToken,
		Refresh: tokens.RefreshToken,
	})
	user, err := s.backend.Auth.Me(authed)
	if err != nil {
		return models.User{}, err
	}

	if err := sess.Start(tokens, user); err != nil {
		return models.User{}, err
	}
	return user, nil
}

// Logout tells the backend to drop the tokens and clears the session. The
// session is cleared even when the backend call fails.
func (s *AuthService) Logout(ctx context.Context, sess *session.Session) error {
	if err := s.backend.Auth.Logout(ctx); err != nil {
		s.logger.Warn().Err(err).Msg("Backend logout failed, clearing session anyway")
	}
	return sess.Clear()
}

// Profile re-fetches the authenticated user and refreshes the session
// snapshot so role or name changes propagate.
func (s *AuthService) Profile(ctx context.Context, sess *session.Session) (models.User, error) {
	user, err := s.backend.Auth.Me(ctx)
	if err != nil {
		return models.User{}, err
	}
	if err := sess.SetUser(user); err != nil {
		s.logger.Warn().Err(err).Msg("Failed to refresh session user snapshot")
	}
	return user, nil
}
