// Package backend is the typed client for the Lyra REST backend. One
// resource service per backend resource, all sharing a single configured
// Client, mirrors how the backend groups its endpoints.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/lyra-school/lyra-web/internal/pkg/apperrors"
)

// TokenSource provides the backend token pair for one request and accepts
// refreshed access tokens. The session implements it.
type TokenSource interface {
	AccessToken() string
	RefreshToken() string
	// UpdateAccess stores a refreshed access token so later requests in
	// the same session reuse it.
	UpdateAccess(token string, expiresIn int)
}

type tokenSourceKey struct{}

// WithTokens returns a context carrying the request's token source. The
// guard middleware attaches it; client calls without one go out
// unauthenticated (login, refresh).
func WithTokens(ctx context.Context, ts TokenSource) context.Context {
	return context.WithValue(ctx, tokenSourceKey{}, ts)
}

// TokensFrom extracts the token source from a context, nil when absent.
func TokensFrom(ctx context.Context) TokenSource {
	ts, _ := ctx.Value(tokenSourceKey{}).(TokenSource)
	return ts
}

// Client is the shared HTTP client for the backend: base URL, timeout,
// bearer attach, one automatic refresh-and-retry on an expired token.
type Client struct {
	baseURL string
	http    *http.Client
	logger  zerolog.Logger
}

// NewClient creates a backend client for the given base URL.
func NewClient(baseURL string, timeout time.Duration, logger zerolog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

// errorEnvelope is the backend's error payload shape.
type errorEnvelope struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// Get issues a GET and decodes the response into out.
func (c *Client) Get(ctx context.Context, path string, query url.Values, out interface{}) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

// Post issues a POST with a JSON body and decodes the response into out
// (out may be nil).
func (c *Client) Post(ctx context.Context, path string, body, out interface{}) error {
	return c.do(ctx, http.MethodPost, path, nil, body, out)
}

// Patch issues a PATCH with a JSON body and decodes the response into out
// (out may be nil).
func (c *Client) Patch(ctx context.Context, path string, body, out interface{}) error {
	return c.do(ctx, http.MethodPatch, path, nil, body, out)
}

// Delete issues a DELETE.
func (c *Client) Delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, nil)
}

// do runs one backend request. With a token source in ctx the access token
// is attached; a stale token is refreshed proactively when its expiry is
// readable, and reactively on a 401, in both cases retrying the original
// request exactly once.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {
	ts := TokensFrom(ctx)

	if ts != nil && ts.AccessToken() != "" && tokenExpired(ts.AccessToken()) {
		if err := c.refresh(ctx, ts); err != nil {
			return err
		}
	}

	status, data, err := c.roundTrip(ctx, method, path, query, body, ts)
	if err != nil {
		return err
	}

	if status == http.StatusUnauthorized && ts != nil && ts.RefreshToken() != "" {
		if err := c.refresh(ctx, ts); err != nil {
			return err
		}
		status, data, err = c.roundTrip(ctx, method, path, query, body, ts)
		if err != nil {
			return err
		}
	}

	if status >= 400 {
		return c.decodeError(status, data)
	}

	if out == nil || len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return apperrors.NewCustomError(apperrors.ErrBackendResponse,
			fmt.Sprintf("failed to decode %s %s response", method, path))
	}
	return nil
}

// roundTrip performs a single HTTP exchange and reads the full body.
func (c *Client) roundTrip(ctx context.Context, method, path string, query url.Values, body interface{}, ts TokenSource) (int, []byte, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return 0, nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if ts != nil && ts.AccessToken() != "" {
		req.Header.Set("Authorization", "Bearer "+ts.AccessToken())
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Warn().Err(err).Str("method", method).Str("path", path).Msg("Backend request failed")
		return 0, nil, apperrors.NewCustomError(apperrors.ErrBackendUnavailable, "backend unreachable")
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, apperrors.NewCustomError(apperrors.ErrBackendUnavailable, "failed to read backend response")
	}
	return resp.StatusCode, data, nil
}

// refresh exchanges the refresh token for a new access token. Runs without
// a bearer header so an expired access token cannot poison it.
func (c *Client) refresh(ctx context.Context, ts TokenSource) error {
	refreshToken := ts.RefreshToken()
	if refreshToken == "" {
		return apperrors.ErrSessionExpired
	}

	payload, err := json.Marshal(map[string]string{"refresh_token": refreshToken})
	if err != nil {
		return fmt.Errorf("failed to encode refresh request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/auth/refresh", bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to build refresh request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return apperrors.NewCustomError(apperrors.ErrBackendUnavailable, "backend unreachable during token refresh")
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		c.logger.Info().Int("status", resp.StatusCode).Msg("Token refresh rejected, session expired")
		return apperrors.NewCustomError(apperrors.ErrRefreshFailed, "session expired, please sign in again")
	}

	var tokens struct {
		AccessToken string `json:"access_token"`
		ExpiresIn   int    `json:"expires_in"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&tokens); err != nil || tokens.AccessToken == "" {
		return apperrors.NewCustomError(apperrors.ErrBackendResponse, "malformed refresh response")
	}

	ts.UpdateAccess(tokens.AccessToken, tokens.ExpiresIn)
	return nil
}

// decodeError maps a backend error status to the application taxonomy,
// keeping the backend's own message when it sent one.
func (c *Client) decodeError(status int, data []byte) error {
	var envelope errorEnvelope
	_ = json.Unmarshal(data, &envelope)
	message := envelope.Message
	if message == "" {
		message = envelope.Error
	}

	var base error
	switch status {
	case http.StatusUnauthorized:
		base = apperrors.ErrNotAuthenticated
	case http.StatusForbidden:
		base = apperrors.ErrPermissionDenied
	case http.StatusNotFound:
		base = apperrors.ErrResourceNotFound
	case http.StatusConflict:
		base = apperrors.ErrResourceAlreadyExists
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		base = apperrors.ErrValidationFailed
	default:
		base = apperrors.ErrBackendResponse
	}

	if message == "" {
		message = base.Error()
	}
	return apperrors.NewBackendError(base, message)
}
