package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/lyra-school/lyra-web/internal/app/models"
	"github.com/lyra-school/lyra-web/internal/app/models/dto"
	"github.com/lyra-school/lyra-web/internal/session"
)

func guardedRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(session.Middleware(session.Options{
		Secret:     "test-secret",
		CookieName: "test_session",
		MaxAge:     3600,
	}))

	guard := NewGuard(zerolog.Nop())

	// Signs a user in so later requests carry a live session cookie.
	router.POST("/test/signin", func(c *gin.Context) {
		role := models.Role(c.Query("role"))
		sess := session.FromContext(c)
		err := sess.Start(
			dto.TokenPair{AccessToken: "access", RefreshToken: "refresh"},
			models.User{ID: 1, Email: "a@b.c", Role: role},
		)
		if err != nil {
			t.Fatalf("failed to start session: %v", err)
		}
		c.Status(http.StatusOK)
	})

	authed := router.Group("", guard.RequireAuth())
	authed.GET("/home", func(c *gin.Context) { c.Status(http.StatusOK) })
	authed.GET("/users", guard.RequireRoles(models.RoleAdmin), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	return router
}

func signIn(t *testing.T, router *gin.Engine, role models.Role) []*http.Cookie {
	t.Helper()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/test/signin?role="+string(role), nil)
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("sign-in failed with status %d", rec.Code)
	}
	return rec.Result().Cookies()
}

func TestRequireAuthRedirectsBrowserToLogin(t *testing.T) {
	t.Parallel()
	router := guardedRouter(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/home", nil)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusFound {
		t.Fatalf("status: got %d, want %d", rec.Code, http.StatusFound)
	}
	if loc := rec.Header().Get("Location"); loc != "/login" {
		t.Errorf("location: got %q, want /login", loc)
	}
}

func TestRequireAuthAnswersFetchWithEnvelope(t *testing.T) {
	t.Parallel()
	router := guardedRouter(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/home", nil)
	req.Header.Set("Accept", "application/json")
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status: got %d, want %d", rec.Code, http.StatusUnauthorized)
	}

	var resp dto.ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if resp.Redirect != "/login" {
		t.Errorf("redirect: got %q, want /login", resp.Redirect)
	}
	if resp.Error == nil || resp.Error.Code != dto.ErrorCodeUnauthorized {
		t.Errorf("error detail: got %+v", resp.Error)
	}
}

func TestRequireAuthPassesSignedInUser(t *testing.T) {
	t.Parallel()
	router := guardedRouter(t)
	cookies := signIn(t, router, models.RoleStudent)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/home", nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want %d", rec.Code, http.StatusOK)
	}
}

func TestRequireRolesSendsDeniedRoleHome(t *testing.T) {
	t.Parallel()
	router := guardedRouter(t)
	cookies := signIn(t, router, models.RoleStudent)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	req.Header.Set("Accept", "text/html")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusFound {
		t.Fatalf("status: got %d, want %d", rec.Code, http.StatusFound)
	}
	if loc := rec.Header().Get("Location"); loc != "/home" {
		t.Errorf("location: got %q, want /home", loc)
	}
}

func TestRequireRolesAdmitsAllowedRole(t *testing.T) {
	t.Parallel()
	router := guardedRouter(t)
	cookies := signIn(t, router, models.RoleAdmin)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want %d", rec.Code, http.StatusOK)
	}
}
