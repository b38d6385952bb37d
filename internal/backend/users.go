package backend

import (
	"context"
	"fmt"

	"github.com/lyra-school/lyra-web/internal/app/models"
	"github.com/lyra-school/lyra-web/internal/app/models/dto"
)

// UsersService wraps the /users endpoints.
type UsersService struct {
	client *Client
}

// NewUsersService creates a new UsersService
func NewUsersService(client *Client) *UsersService {
	return &UsersService{client: client}
}

// List returns every user.
func (s *UsersService) List(ctx context.Context) ([]models.User, error) {
	var users []models.User
	err := s.client.Get(ctx, "/users", nil, &users)
	return users, err
}

// Get returns one user by id.
func (s *UsersService) Get(ctx context.Context, id int64) (models.User, error) {
	var user models.User
	err := s.client.Get(ctx, fmt.Sprintf("/users/%d", id), nil, &user)
	return user, err
}

// Create registers a new user.
func (s *UsersService) Create(ctx context.Context, req dto.CreateUserRequest) (models.User, error) {
	var user models.User
	err := s.client.Post(ctx, "/users", req, &user)
	return user, err
}

// Update patches a user.
func (s *UsersService) Update(ctx context.Context, id int64, req dto.UpdateUserRequest) (models.User, error) {
	var user models.User
	err := s.client.Patch(ctx, fmt.Sprintf("/users/%d", id), req, &user)
	return user, err
}

// Delete removes a user.
func (s *UsersService) Delete(ctx context.Context, id int64) error {
	return s.client.Delete(ctx, fmt.Sprintf("/users/%d", id))
}

// Roles returns the role list the backend accepts for the user form.
func (s *UsersService) Roles(ctx context.Context) ([]string, error) {
	var roles []string
	err := s.client.Get(ctx, "/users/roles", nil, &roles)
	return roles, err
}
