package backend

import (
	"context"
	"fmt"

	"github.com/lyra-school/lyra-web/internal/app/models"
	"github.com/lyra-school/lyra-web/internal/app/models/dto"
)

// SubjectsService wraps the /subjects endpoints.
type SubjectsService struct {
	client *Client
}

// NewSubjectsService creates a new SubjectsService
func NewSubjectsService(client *Client) *SubjectsService {
	return &SubjectsService{client: client}
}

// List returns every subject.
func (s *SubjectsService) List(ctx context.Context) ([]models.Subject, error) {
	var subjects []models.Subject
	err := s.client.Get(ctx, "/subjects", nil, &subjects)
	return subjects, err
}

// Get returns one subject by id.
func (s *SubjectsService) Get(ctx context.Context, id int64) (models.Subject, error) {
	var subject models.Subject
	err := s.client.Get(ctx, fmt.Sprintf("/subjects/%d", id), nil, &subject)
	return subject, err
}

// Create adds a subject.
func (s *SubjectsService) Create(ctx context.Context, req dto.CreateSubjectRequest) (models.Subject, error) {
	var subject models.Subject
	err := s.client.Post(ctx, "/subjects", req, &subject)
	return subject, err
}

// Update patches a subject.
func (s *SubjectsService) Update(ctx context.Context, id int64, req dto.UpdateSubjectRequest) (models.Subject, error) {
	var subject models.Subject
	err := s.client.Patch(ctx, fmt.Sprintf("/subjects/%d", id), req, &subject)
	return subject, err
}

// Delete removes a subject.
func (s *SubjectsService) Delete(ctx context.Context, id int64) error {
	return s.client.Delete(ctx, fmt.Sprintf("/subjects/%d", id))
}

// AssignProfessor links a professor to a subject.
func (s *SubjectsService) AssignProfessor(ctx context.Context, subjectID, professorID int64) error {
	return s.client.Post(ctx, fmt.Sprintf("/subjects/%d/professors/%d", subjectID, professorID), nil, nil)
}

// UnassignProfessor removes a professor from a subject.
func (s *SubjectsService) UnassignProfessor(ctx context.Context, subjectID, professorID int64) error {
	return s.client.Delete(ctx, fmt.Sprintf("/subjects/%d/professors/%d", subjectID, professorID))
}
