package backend

import (
	"context"

	"github.com/lyra-school/lyra-web/internal/app/models"
	"github.com/lyra-school/lyra-web/internal/app/models/dto"
)

// AuthService wraps the /auth endpoints.
type AuthService struct {
	client *Client
}

// NewAuthService creates a new AuthService
func NewAuthService(client *Client) *AuthService {
	return &AuthService{client: client}
}

// Login exchanges credentials for a token pair. Runs unauthenticated.
func (s *AuthService) Login(ctx context.Context, email, password string) (dto.TokenPair, error) {
	var tokens dto.TokenPair
	err := s.client.Post(ctx, "/auth/login", map[string]string{
		"email":    email,
		"password": password,
	}, &tokens)
	return tokens, err
}

// Logout invalidates the session's tokens on the backend. Callers clear
// the local session whether or not this succeeds.
func (s *AuthService) Logout(ctx context.Context) error {
	return s.client.Post(ctx, "/auth/logout", nil, nil)
}

// Me returns the authenticated user's profile.
func (s *AuthService) Me(ctx context.Context) (models.User, error) {
	var user models.User
	err := s.client.Get(ctx, "/auth/me", nil, &user)
	return user, err
}
