package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lyra-school/lyra-web/internal/app/models/dto"
	"github.com/lyra-school/lyra-web/internal/backend"
	"github.com/lyra-school/lyra-web/internal/middleware"
	"github.com/lyra-school/lyra-web/internal/pkg/table"
)

// UserController handles the admin user management page.
type UserController struct {
	users *backend.UsersService
}

// NewUserController creates a new UserController
func NewUserController(users *backend.UsersService) *UserController {
	return &UserController{users: users}
}

// ListUsers returns the filtered, paginated user table.
func (uc *UserController) ListUsers(c *gin.Context) {
	users, err := uc.users.List(c.Request.Context())
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	query, page, size := tableQuery(c)
	respond(c, http.StatusOK, table.Apply(users, query, page, size))
}

// GetUser returns one user.
func (uc *UserController) GetUser(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	user, err := uc.users.Get(c.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	respond(c, http.StatusOK, user)
}

// CreateUser registers a new user account.
func (uc *UserController) CreateUser(c *gin.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.BindError(c, err)
		return
	}

	user, err := uc.users.Create(c.Request.Context(), req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	respond(c, http.StatusCreated, user)
}

// UpdateUser patches a user account.
func (uc *UserController) UpdateUser(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.BindError(c, err)
		return
	}

	user, err := uc.users.Update(c.Request.Context(), id, req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	respond(c, http.StatusOK, user)
}

// DeleteUser removes a user account.
func (uc *UserController) DeleteUser(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := uc.users.Delete(c.Request.Context(), id); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	respond(c, http.StatusOK, dto.SuccessResponse{Message: "User deleted"})
}

// ListRoles returns the assignable roles for the user form.
func (uc *UserController) ListRoles(c *gin.Context) {
	roles, err := uc.users.Roles(c.Request.Context())
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	respond(c, http.StatusOK, roles)
}
