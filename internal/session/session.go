// Package session holds the signed-in state: the backend token pair plus
// the serialized user, in a signed cookie session. Populated on login,
// cleared on logout, read by the route guard at request time.
package session

import (
	"encoding/json"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"

	"github.com/lyra-school/lyra-web/internal/app/models"
	"github.com/lyra-school/lyra-web/internal/app/models/dto"
	"github.com/lyra-school/lyra-web/internal/pkg/logger"
)

// Session value keys. keyLegacyLoggedIn is the mock-auth flag from the old
// static build; it is never read anymore, only deleted on logout so stale
// cookies shed it.
const (
	keyAccessToken    = "access_token"
	keyRefreshToken   = "refresh_token"
	keyUser           = "user"
	keyLegacyLoggedIn = "loggedIn"
)

// Options configures the cookie store.
type Options struct {
	Secret     string
	CookieName string
	MaxAge     int // seconds
	Secure     bool
}

// Middleware returns the session middleware backed by a signed cookie
// store.
func Middleware(opts Options) gin.HandlerFunc {
	store := cookie.NewStore([]byte(opts.Secret))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   opts.MaxAge,
		HttpOnly: true,
		Secure:   opts.Secure,
	})
	return sessions.Sessions(opts.CookieName, store)
}

// Session wraps the request's cookie session with typed accessors.
type Session struct {
	raw sessions.Session
}

// FromContext returns the request's session.
func FromContext(c *gin.Context) *Session {
	return &Session{raw: sessions.Default(c)}
}

// Authenticated reports whether an access token is stored.
func (s *Session) Authenticated() bool {
	return s.AccessToken() != ""
}

// AccessToken returns the stored access token, "" when signed out.
func (s *Session) AccessToken() string {
	v, _ := s.raw.Get(keyAccessToken).(string)
	return v
}

// RefreshToken returns the stored refresh token, "" when signed out.
func (s *Session) RefreshToken() string {
	v, _ := s.raw.Get(keyRefreshToken).(string)
	return v
}

// UpdateAccess stores a refreshed access token. Implements
// backend.TokenSource.
func (s *Session) UpdateAccess(token string, expiresIn int) {
	s.raw.Set(keyAccessToken, token)
	if err := s.raw.Save(); err != nil {
		logger.Warn().Err(err).Msg("Failed to persist refreshed access token")
	}
}

// User returns the stored user, false when none is stored or it fails to
// decode.
func (s *Session) User() (models.User, bool) {
	raw, _ := s.raw.Get(keyUser).(string)
	if raw == "" {
		return models.User{}, false
	}
	var user models.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		return models.User{}, false
	}
	return user, true
}

// Role returns the stored user's role, "" when signed out.
func (s *Session) Role() models.Role {
	user, ok := s.User()
	if !ok {
		return ""
	}
	return user.Role
}

// Start populates the session after a successful login.
func (s *Session) Start(tokens dto.TokenPair, user models.User) error {
	payload, err := json.Marshal(user)
	if err != nil {
		return err
	}
	s.raw.Set(keyAccessToken, tokens.AccessToken)
	s.raw.Set(keyRefreshToken, tokens.RefreshToken)
	s.raw.Set(keyUser, string(payload))
	return s.raw.Save()
}

// SetUser refreshes the stored user snapshot (profile page re-fetch).
func (s *Session) SetUser(user models.User) error {
	payload, err := json.Marshal(user)
	if err != nil {
		return err
	}
	s.raw.Set(keyUser, string(payload))
	return s.raw.Save()
}

// Clear empties the session. Runs on logout whether or not the backend
// call succeeded.
func (s *Session) Clear() error {
	s.raw.Delete(keyLegacyLoggedIn)
	s.raw.Clear()
	return s.raw.Save()
}
