package backend

import (
	"context"
	"fmt"

	"github.com/lyra-school/lyra-web/internal/app/models"
	"github.com/lyra-school/lyra-web/internal/app/models/dto"
)

// LessonsService wraps the /lessons endpoints.
type LessonsService struct {
	client *Client
}

// NewLessonsService creates a new LessonsService
func NewLessonsService(client *Client) *LessonsService {
	return &LessonsService{client: client}
}

// List returns every lesson.
func (s *LessonsService) List(ctx context.Context) ([]models.Lesson, error) {
	var lessons []models.Lesson
	err := s.client.Get(ctx, "/lessons", nil, &lessons)
	return lessons, err
}

// Get returns one lesson by id.
func (s *LessonsService) Get(ctx context.Context, id int64) (models.Lesson, error) {
	var lesson models.Lesson
	err := s.client.Get(ctx, fmt.Sprintf("/lessons/%d", id), nil, &lesson)
	return lesson, err
}

// Create schedules a lesson.
func (s *LessonsService) Create(ctx context.Context, req dto.CreateLessonRequest) (models.Lesson, error) {
	var lesson models.Lesson
	err := s.client.Post(ctx, "/lessons", req, &lesson)
	return lesson, err
}

// Update patches a lesson.
func (s *LessonsService) Update(ctx context.Context, id int64, req dto.UpdateLessonRequest) (models.Lesson, error) {
	var lesson models.Lesson
	err := s.client.Patch(ctx, fmt.Sprintf("/lessons/%d", id), req, &lesson)
	return lesson, err
}

// Delete removes a lesson.
func (s *LessonsService) Delete(ctx context.Context, id int64) error {
	return s.client.Delete(ctx, fmt.Sprintf("/lessons/%d", id))
}
