package backend

import (
	"context"
	"fmt"

	"github.com/lyra-school/lyra-web/internal/app/models"
	"github.com/lyra-school/lyra-web/internal/app/models/dto"
)

// StudentsService wraps the /students endpoints.
type StudentsService struct {
	client *Client
}

// NewStudentsService creates a new StudentsService
func NewStudentsService(client *Client) *StudentsService {
	return &StudentsService{client: client}
}

// List returns every student.
func (s *StudentsService) List(ctx context.Context) ([]models.Student, error) {
	var students []models.Student
	err := s.client.Get(ctx, "/students", nil, &students)
	return students, err
}

// Get returns one student by id.
func (s *StudentsService) Get(ctx context.Context, id int64) (models.Student, error) {
	var student models.Student
	err := s.client.Get(ctx, fmt.Sprintf("/students/%d", id), nil, &student)
	return student, err
}

// Create enrolls a student.
func (s *StudentsService) Create(ctx context.Context, req dto.CreateStudentRequest) (models.Student, error) {
	var student models.Student
	err := s.client.Post(ctx, "/students", req, &student)
	return student, err
}

// Update patches a student.
func (s *StudentsService) Update(ctx context.Context, id int64, req dto.UpdateStudentRequest) (models.Student, error) {
	var student models.Student
	err := s.client.Patch(ctx, fmt.Sprintf("/students/%d", id), req, &student)
	return student, err
}

// Delete removes a student.
func (s *StudentsService) Delete(ctx context.Context, id int64) error {
	return s.client.Delete(ctx, fmt.Sprintf("/students/%d", id))
}

// Me returns the student record of the authenticated user.
func (s *StudentsService) Me(ctx context.Context) (models.Student, error) {
	var student models.Student
	err := s.client.Get(ctx, "/students/me", nil, &student)
	return student, err
}

// MyAttendances returns the authenticated student's attendance records.
func (s *StudentsService) MyAttendances(ctx context.Context) ([]models.Attendance, error) {
	var attendances []models.Attendance
	err := s.client.Get(ctx, "/students/me/attendances", nil, &attendances)
	return attendances, err
}

// MyGrades returns the authenticated student's exam results.
func (s *StudentsService) MyGrades(ctx context.Context) ([]models.ExamResult, error) {
	var results []models.ExamResult
	err := s.client.Get(ctx, "/students/me/grades", nil, &results)
	return results, err
}
