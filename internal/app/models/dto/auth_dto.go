package dto

import "github.com/lyra-school/lyra-web/internal/app/models"

// LoginRequest is the login form.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// LoginResponse is the view returned after a successful login.
type LoginResponse struct {
	User     models.User `json:"user"`
	Redirect string      `json:"redirect"`
}

// TokenPair is the backend token response for login and refresh.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int    `json:"expires_in"`
}

// ProfileView is the payload of the profile page.
type ProfileView struct {
	User models.User    `json:"user"`
	Menu []MenuItemView `json:"menu"`
}
