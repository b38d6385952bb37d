package backend

import (
	"context"
	"fmt"

	"github.com/lyra-school/lyra-web/internal/app/models"
	"github.com/lyra-school/lyra-web/internal/app/models/dto"
)

// ProfessorsService wraps the /professors endpoints.
type ProfessorsService struct {
	client *Client
}

// NewProfessorsService creates a new ProfessorsService
func NewProfessorsService(client *Client) *ProfessorsService {
	return &ProfessorsService{client: client}
}

// List returns every professor.
func (s *ProfessorsService) List(ctx context.Context) ([]models.Professor, error) {
	var professors []models.Professor
	err := s.client.Get(ctx, "/professors", nil, &professors)
	return professors, err
}

// Get returns one professor by id.
func (s *ProfessorsService) Get(ctx context.Context, id int64) (models.Professor, error) {
	var professor models.Professor
	err := s.client.Get(ctx, fmt.Sprintf("/professors/%d", id), nil, &professor)
	return professor, err
}

// Create registers a professor.
func (s *ProfessorsService) Create(ctx context.Context, req dto.CreateProfessorRequest) (models.Professor, error) {
	var professor models.Professor
	err := s.client.Post(ctx, "/professors", req, &professor)
	return professor, err
}

// Update patches a professor.
func (s *ProfessorsService) Update(ctx context.Context, id int64, req dto.UpdateProfessorRequest) (models.Professor, error) {
	var professor models.Professor
	err := s.client.Patch(ctx, fmt.Sprintf("/professors/%d", id), req, &professor)
	return professor, err
}

// Delete removes a professor.
func (s *ProfessorsService) Delete(ctx context.Context, id int64) error {
	return s.client.Delete(ctx, fmt.Sprintf("/professors/%d", id))
}

// Me returns the professor record of the authenticated user.
func (s *ProfessorsService) Me(ctx context.Context) (models.Professor, error) {
	var professor models.Professor
	err := s.client.Get(ctx, "/professors/me", nil, &professor)
	return professor, err
}

// MyLessons returns the authenticated professor's lessons.
func (s *ProfessorsService) MyLessons(ctx context.Context) ([]models.Lesson, error) {
	var lessons []models.Lesson
	err := s.client.Get(ctx, "/professors/me/lessons", nil, &lessons)
	return lessons, err
}

// MySubjects returns the authenticated professor's subjects.
func (s *ProfessorsService) MySubjects(ctx context.Context) ([]models.Subject, error) {
	var subjects []models.Subject
	err := s.client.Get(ctx, "/professors/me/subjects", nil, &subjects)
	return subjects, err
}

// AssignCourse links a professor to a course.
func (s *ProfessorsService) AssignCourse(ctx context.Context, professorID, courseID int64) error {
	return s.client.Post(ctx, fmt.Sprintf("/professors/%d/courses/%d", professorID, courseID), nil, nil)
}

// UnassignCourse removes a professor from a course.
func (s *ProfessorsService) UnassignCourse(ctx context.Context, professorID, courseID int64) error {
	return s.client.Delete(ctx, fmt.Sprintf("/professors/%d/courses/%d", professorID, courseID))
}
