package backend

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/lyra-school/lyra-web/internal/app/models"
	"github.com/lyra-school/lyra-web/internal/app/models/dto"
)

// ExamsService wraps the /exam-sessions and /exam-results endpoints.
type ExamsService struct {
	client *Client
}

// NewExamsService creates a new ExamsService
func NewExamsService(client *Client) *ExamsService {
	return &ExamsService{client: client}
}

// UpsertResultInput carries a grade write. Grade nil clears the value back
// to pending; Passed is ignored by the backend on writes and recomputed
// server-side.
type UpsertResultInput struct {
	ExamSessionID int64    `json:"exam_session_id"`
	StudentID     int64    `json:"student_id"`
	Grade         *float64 `json:"grade"`
}

// ListSessions returns every exam session.
func (s *ExamsService) ListSessions(ctx context.Context) ([]models.ExamSession, error) {
	var sessions []models.ExamSession
	err := s.client.Get(ctx, "/exam-sessions", nil, &sessions)
	return sessions, err
}

// GetSession returns one exam session by id.
func (s *ExamsService) GetSession(ctx context.Context, id int64) (models.ExamSession, error) {
	var session models.ExamSession
	err := s.client.Get(ctx, fmt.Sprintf("/exam-sessions/%d", id), nil, &session)
	return session, err
}

// CreateSession schedules an exam session.
func (s *ExamsService) CreateSession(ctx context.Context, req dto.CreateExamSessionRequest) (models.ExamSession, error) {
	var session models.ExamSession
	err := s.client.Post(ctx, "/exam-sessions", req, &session)
	return session, err
}

// UpdateSession patches an exam session.
func (s *ExamsService) UpdateSession(ctx context.Context, id int64, req dto.UpdateExamSessionRequest) (models.ExamSession, error) {
	var session models.ExamSession
	err := s.client.Patch(ctx, fmt.Sprintf("/exam-sessions/%d", id), req, &session)
	return session, err
}

// DeleteSession removes an exam session.
func (s *ExamsService) DeleteSession(ctx context.Context, id int64) error {
	return s.client.Delete(ctx, fmt.Sprintf("/exam-sessions/%d", id))
}

// ResultsBySession returns the submitted results of one session.
func (s *ExamsService) ResultsBySession(ctx context.Context, sessionID int64) ([]models.ExamResult, error) {
	query := url.Values{"session": {strconv.FormatInt(sessionID, 10)}}
	var results []models.ExamResult
	err := s.client.Get(ctx, "/exam-results", query, &results)
	return results, err
}

// PendingResults returns results awaiting grade confirmation.
func (s *ExamsService) PendingResults(ctx context.Context) ([]models.ExamResult, error) {
	query := url.Values{"status": {"pending"}}
	var results []models.ExamResult
	err := s.client.Get(ctx, "/exam-results", query, &results)
	return results, err
}

// CreateResult submits a new exam result.
func (s *ExamsService) CreateResult(ctx context.Context, input UpsertResultInput) (models.ExamResult, error) {
	var result models.ExamResult
	err := s.client.Post(ctx, "/exam-results", input, &result)
	return result, err
}

// UpdateResult patches an existing exam result.
func (s *ExamsService) UpdateResult(ctx context.Context, id int64, input UpsertResultInput) (models.ExamResult, error) {
	var result models.ExamResult
	err := s.client.Patch(ctx, fmt.Sprintf("/exam-results/%d", id), input, &result)
	return result, err
}

// DeleteResult removes an exam result.
func (s *ExamsService) DeleteResult(ctx context.Context, id int64) error {
	return s.client.Delete(ctx, fmt.Sprintf("/exam-results/%d", id))
}
