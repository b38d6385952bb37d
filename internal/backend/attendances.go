package backend

import (
	"context"
	"fmt"

	"github.com/lyra-school/lyra-web/internal/app/models"
)

// AttendancesService wraps the /attendances endpoints.
type AttendancesService struct {
	client *Client
}

// NewAttendancesService creates a new AttendancesService
func NewAttendancesService(client *Client) *AttendancesService {
	return &AttendancesService{client: client}
}

// CreateAttendanceInput is the creation payload for one record.
type CreateAttendanceInput struct {
	LessonID  int64  `json:"lesson_id"`
	StudentID int64  `json:"student_id"`
	Status    string `json:"status"`
	Justified bool   `json:"justified"`
	Note      string `json:"note,omitempty"`
}

// UpdateAttendanceInput is the patch payload for one record.
type UpdateAttendanceInput struct {
	Status    *string `json:"status,omitempty"`
	Justified *bool   `json:"justified,omitempty"`
	Note      *string `json:"note,omitempty"`
}

// List returns every attendance record visible to the caller.
func (s *AttendancesService) List(ctx context.Context) ([]models.Attendance, error) {
	var attendances []models.Attendance
	err := s.client.Get(ctx, "/attendances", nil, &attendances)
	return attendances, err
}

// ByLesson returns the attendance records for one lesson.
func (s *AttendancesService) ByLesson(ctx context.Context, lessonID int64) ([]models.Attendance, error) {
	var attendances []models.Attendance
	err := s.client.Get(ctx, fmt.Sprintf("/attendances/lesson/%d", lessonID), nil, &attendances)
	return attendances, err
}

// ByStudent returns the attendance records for one student.
func (s *AttendancesService) ByStudent(ctx context.Context, studentID int64) ([]models.Attendance, error) {
	var attendances []models.Attendance
	err := s.client.Get(ctx, fmt.Sprintf("/attendances/student/%d", studentID), nil, &attendances)
	return attendances, err
}

// Create registers one attendance record. New records start unconfirmed.
func (s *AttendancesService) Create(ctx context.Context, input CreateAttendanceInput) (models.Attendance, error) {
	var attendance models.Attendance
	err := s.client.Post(ctx, "/attendances", input, &attendance)
	return attendance, err
}

// Update patches one attendance record.
func (s *AttendancesService) Update(ctx context.Context, id int64, input UpdateAttendanceInput) (models.Attendance, error) {
	var attendance models.Attendance
	err := s.client.Patch(ctx, fmt.Sprintf("/attendances/%d", id), input, &attendance)
	return attendance, err
}

// Delete removes an attendance record.
func (s *AttendancesService) Delete(ctx context.Context, id int64) error {
	return s.client.Delete(ctx, fmt.Sprintf("/attendances/%d", id))
}

// SelfMark records the authenticated student's own presence for a lesson.
// The backend resolves the student from the token.
func (s *AttendancesService) SelfMark(ctx context.Context, lessonID int64, status string) error {
	return s.client.Post(ctx, "/attendances/self-mark", map[string]interface{}{
		"lesson_id": lessonID,
		"status":    status,
	}, nil)
}

// Confirm marks a record as reviewed by a professor. Only the confirmed flag
// changes; status and justified stay as recorded.
func (s *AttendancesService) Confirm(ctx context.Context, id int64) error {
	return s.client.Patch(ctx, fmt.Sprintf("/attendances/%d/confirm", id), nil, nil)
}
