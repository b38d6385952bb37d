package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/lyra-school/lyra-web/internal/app/models"
	"github.com/lyra-school/lyra-web/internal/app/models/dto"
	"github.com/lyra-school/lyra-web/internal/backend"
	"github.com/lyra-school/lyra-web/internal/session"
)

// Guard gates page rendering on session state. It is a navigation
// convenience only: the backend authorizes every call independently, so a
// bypassed guard exposes nothing.
type Guard struct {
	logger zerolog.Logger
}

// NewGuard creates a new Guard
func NewGuard(logger zerolog.Logger) *Guard {
	return &Guard{logger: logger}
}

// RequireAuth rejects unauthenticated requests, sending them to /login.
// Authenticated requests continue with the session's tokens attached to
// the request context for the backend client.
func (g *Guard) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := session.FromContext(c)
		if !sess.Authenticated() {
			deny(c, http.StatusUnauthorized, dto.ErrorCodeUnauthorized, "Authentication required", "/login")
			return
		}

		c.Request = c.Request.WithContext(backend.WithTokens(c.Request.Context(), sess))
		c.Next()
	}
}

// RequireRoles rejects authenticated users whose role is outside the
// allow-list, sending them to /home. Must run after RequireAuth.
func (g *Guard) RequireRoles(allowed ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := session.FromContext(c)
		role := sess.Role()

		for _, a := range allowed {
			if role == a {
				c.Next()
				return
			}
		}

		g.logger.Debug().Str("role", string(role)).Str("path", c.Request.URL.Path).Msg("Role not allowed for page")
		deny(c, http.StatusForbidden, dto.ErrorCodeForbidden, "Your role cannot open this page", "/home")
	}
}

// deny aborts the request: browser navigations get a redirect, fetch
// callers get the error envelope with the redirect target to follow.
func deny(c *gin.Context, status int, code dto.ErrorCode, message, redirect string) {
	if wantsHTML(c) {
		c.Redirect(http.StatusFound, redirect)
		c.Abort()
		return
	}

	resp := dto.NewErrorResponse(dto.NewErrorDetail(code, message))
	resp.Redirect = redirect
	c.AbortWithStatusJSON(status, resp)
}

// wantsHTML reports whether the request is a browser navigation rather
// than a fetch call.
func wantsHTML(c *gin.Context) bool {
	accept := c.GetHeader("Accept")
	return strings.Contains(accept, "text/html")
}
