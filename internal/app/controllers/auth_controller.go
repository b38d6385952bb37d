package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lyra-school/lyra-web/internal/app/models/dto"
	"github.com/lyra-school/lyra-web/internal/app/services"
	"github.com/lyra-school/lyra-web/internal/app/views"
	"github.com/lyra-school/lyra-web/internal/middleware"
	"github.com/lyra-school/lyra-web/internal/session"
)

// AuthController handles login, logout and the profile page.
type AuthController struct {
	authService *services.AuthService
}

// NewAuthController creates a new AuthController
func NewAuthController(authService *services.AuthService) *AuthController {
	return &AuthController{authService: authService}
}

// Login authenticates against the backend and starts the session. The
// response tells the client where to navigate next.
func (ac *AuthController) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.BindError(c, err)
		return
	}

	sess := session.FromContext(c)
	user, err := ac.authService.Login(c.Request.Context(), sess, req.Email, req.Password)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	respond(c, http.StatusOK, dto.LoginResponse{
		User:     user,
		Redirect: "/home",
	})
}

// Logout revokes the backend session best-effort and always clears the
// local one.
func (ac *AuthController) Logout(c *gin.Context) {
	sess := session.FromContext(c)
	if err := ac.authService.Logout(c.Request.Context(), sess); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	respond(c, http.StatusOK, dto.SuccessResponse{Message: "Signed out"})
}

// Profile returns the profile page: a fresh copy of the signed-in user
// plus the sidebar menu for their role.
func (ac *AuthController) Profile(c *gin.Context) {
	sess := session.FromContext(c)
	user, err := ac.authService.Profile(c.Request.Context(), sess)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	respond(c, http.StatusOK, dto.ProfileView{
		User: user,
		Menu: views.MenuFor(user.Role),
	})
}
