package backend

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// StaticTokens is a fixed token source for the window between a backend
// login and the session being written.
type StaticTokens struct {
	Access  string
	Refresh string
}

// AccessToken implements TokenSource.
func (t *StaticTokens) AccessToken() string { return t.Access }

// RefreshToken implements TokenSource.
func (t *StaticTokens) RefreshToken() string { return t.Refresh }

// UpdateAccess implements TokenSource.
func (t *StaticTokens) UpdateAccess(token string, expiresIn int) { t.Access = token }

// tokenExpired peeks at the access token's exp claim without verifying the
// signature; verification is the backend's job, this side only needs to
// know when a refresh is due. Unreadable tokens are treated as live and
// left to the backend to reject.
func tokenExpired(token string) bool {
	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return false
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}

	// A small skew so a token about to die mid-request refreshes now.
	return exp.Time.Before(time.Now().Add(10 * time.Second))
}
