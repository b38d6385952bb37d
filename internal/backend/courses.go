package backend

import (
	"context"
	"fmt"

	"github.com/lyra-school/lyra-web/internal/app/models"
	"github.com/lyra-school/lyra-web/internal/app/models/dto"
)

// CoursesService wraps the /courses endpoints.
type CoursesService struct {
	client *Client
}

// NewCoursesService creates a new CoursesService
func NewCoursesService(client *Client) *CoursesService {
	return &CoursesService{client: client}
}

// List returns every course.
func (s *CoursesService) List(ctx context.Context) ([]models.Course, error) {
	var courses []models.Course
	err := s.client.Get(ctx, "/courses", nil, &courses)
	return courses, err
}

// Get returns one course with its subjects and students.
func (s *CoursesService) Get(ctx context.Context, id int64) (models.Course, error) {
	var course models.Course
	err := s.client.Get(ctx, fmt.Sprintf("/courses/%d", id), nil, &course)
	return course, err
}

// Create adds a course.
func (s *CoursesService) Create(ctx context.Context, req dto.CreateCourseRequest) (models.Course, error) {
	var course models.Course
	err := s.client.Post(ctx, "/courses", req, &course)
	return course, err
}

// Update patches a course.
func (s *CoursesService) Update(ctx context.Context, id int64, req dto.UpdateCourseRequest) (models.Course, error) {
	var course models.Course
	err := s.client.Patch(ctx, fmt.Sprintf("/courses/%d", id), req, &course)
	return course, err
}

// Delete removes a course.
func (s *CoursesService) Delete(ctx context.Context, id int64) error {
	return s.client.Delete(ctx, fmt.Sprintf("/courses/%d", id))
}

// Students returns the roster of a course.
func (s *CoursesService) Students(ctx context.Context, id int64) ([]models.Student, error) {
	var students []models.Student
	err := s.client.Get(ctx, fmt.Sprintf("/courses/%d/students", id), nil, &students)
	return students, err
}
