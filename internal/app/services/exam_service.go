package services

import (
	"context"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/lyra-school/lyra-web/internal/app/models"
	"github.com/lyra-school/lyra-web/internal/app/models/dto"
	"github.com/lyra-school/lyra-web/internal/backend"
	"github.com/lyra-school/lyra-web/internal/pkg/apperrors"
)

// ExamService composes the exams page: the student's own results view, or
// the staff view with session management and the per-session grade editor.
type ExamService struct {
	backend *backend.Services
	logger  zerolog.Logger
}

// NewExamService creates a new ExamService
func NewExamService(b *backend.Services, logger zerolog.Logger) *ExamService {
	return &ExamService{backend: b, logger: logger}
}

// View builds the role-dispatched exams page. The role comes from the
// session, resolved once by the page handler.
func (s *ExamService) View(ctx context.Context, role models.Role) (dto.ExamsView, error) {
	if role == models.RoleStudent {
		return s.studentView(ctx)
	}
	return s.staffView(ctx, role)
}

// studentView lists the student's own results with the derived outcome
// label.
func (s *ExamService) studentView(ctx context.Context) (dto.ExamsView, error) {
	results, err := s.backend.Students.MyGrades(ctx)
	if err != nil {
		return dto.ExamsView{}, err
	}

	view := dto.ExamsView{Role: models.RoleStudent}
	for _, r := range results {
		view.MyResults = append(view.MyResults, dto.StudentExamRow{
			Result:  r,
			Outcome: r.Outcome(),
		})
	}
	return view, nil
}

// staffView loads sessions, the form option lists, and the pending-grade
// queue. The pending queue degrades to empty on failure; session
// management stays usable.
func (s *ExamService) staffView(ctx context.Context, role models.Role) (dto.ExamsView, error) {
	sessions, err := s.backend.Exams.ListSessions(ctx)
	if err != nil {
		return dto.ExamsView{}, err
	}

	subjects, err := s.backend.Subjects.List(ctx)
	if err != nil {
		return dto.ExamsView{}, err
	}

	courses, err := s.backend.Courses.List(ctx)
	if err != nil {
		return dto.ExamsView{}, err
	}

	pending, err := s.backend.Exams.PendingResults(ctx)
	if err != nil {
		s.logger.Warn().Err(err).Msg("Failed to load pending exam results")
		pending = nil
	}

	return dto.ExamsView{
		Role:     role,
		Sessions: sessions,
		Subjects: subjects,
		Courses:  courses,
		Pending:  pending,
	}, nil
}

// Editor builds the grade editor for one session: the roster of the
// session's course, merged with any already-submitted results.
func (s *ExamService) Editor(ctx context.Context, sessionID int64) (dto.GradeEditorView, error) {
	examSession, err := s.backend.Exams.GetSession(ctx, sessionID)
	if err != nil {
		return dto.GradeEditorView{}, err
	}

	roster, err := s.backend.Courses.Students(ctx, examSession.CourseID)
	if err != nil {
		return dto.GradeEditorView{}, err
	}
	if len(roster) == 0 {
		return dto.GradeEditorView{}, apperrors.NewCustomError(apperrors.ErrEmptyRoster,
			"No students enrolled in the session's course")
	}

	results, err := s.backend.Exams.ResultsBySession(ctx, sessionID)
	if err != nil {
		return dto.GradeEditorView{}, err
	}

	byStudent := make(map[int64]models.ExamResult, len(results))
	for _, r := range results {
		byStudent[r.StudentID] = r
	}

	view := dto.GradeEditorView{Session: examSession}
	for _, student := range roster {
		row := dto.GradeEditorRow{Student: student}
		if r, ok := byStudent[student.ID]; ok {
			row.ResultID = r.ID
			row.Outcome = r.Outcome()
			if r.Grade != nil {
				row.Grade = strconv.FormatFloat(*r.Grade, 'f', -1, 64)
			}
		}
		view.Rows = append(view.Rows, row)
	}
	return view, nil
}

// SaveGrades upserts the editor's entries, one backend call per student,
// concurrently and best-effort: existing results are patched, missing
// ones created, empty grades cleared to pending. The editor reloads the
// authoritative result set afterwards regardless of partial failures.
func (s *ExamService) SaveGrades(ctx context.Context, sessionID int64, req dto.SaveGradesRequest) dto.BatchResult {
	existing := map[int64]int64{}
	if results, err := s.backend.Exams.ResultsBySession(ctx, sessionID); err == nil {
		for _, r := range results {
			existing[r.StudentID] = r.ID
		}
	} else {
		s.logger.Warn().Err(err).Int64("sessionID", sessionID).Msg("Failed to load existing results, treating all grades as new")
	}

	errs := fanOut(len(req.Entries), func(i int) error {
		entry := req.Entries[i]

		var grade *float64
		if entry.Grade != "" {
			v, err := strconv.ParseFloat(entry.Grade, 64)
			if err != nil {
				return err
			}
			grade = &v
		}

		input := backend.UpsertResultInput{
			ExamSessionID: sessionID,
			StudentID:     entry.StudentID,
			Grade:         grade,
		}
		if id, ok := existing[entry.StudentID]; ok {
			_, err := s.backend.Exams.UpdateResult(ctx, id, input)
			return err
		}
		_, err := s.backend.Exams.CreateResult(ctx, input)
		return err
	})

	result := dto.BatchResult{Attempted: len(req.Entries)}
	for i, err := range errs {
		if err == nil {
			result.Succeeded++
			continue
		}
		s.logger.Warn().Err(err).Int64("studentID", req.Entries[i].StudentID).Msg("Grade upsert rejected")
		result.Failed = append(result.Failed, dto.BatchItemError{
			StudentID: req.Entries[i].StudentID,
			Message:   err.Error(),
		})
	}
	return result
}
