package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/lyra-school/lyra-web/internal/app/models"
	"github.com/lyra-school/lyra-web/internal/app/models/dto"
	"github.com/lyra-school/lyra-web/internal/backend"
	"github.com/lyra-school/lyra-web/internal/pkg/apperrors"
)

// AttendanceService composes the two attendance workflows: the professor's
// register-then-confirm flow and the student's self-mark calendar.
type AttendanceService struct {
	backend *backend.Services
	logger  zerolog.Logger
	// now is swappable for tests of the today-only self-mark rule.
	now func() time.Time
}

// NewAttendanceService creates a new AttendanceService
func NewAttendanceService(b *backend.Services, logger zerolog.Logger) *AttendanceService {
	return &AttendanceService{backend: b, logger: logger, now: time.Now}
}

// LessonView builds the professor page for one lesson. With recorded rows it
// is the confirmation view; without, the registration roster of the
// lesson's course.
func (s *AttendanceService) LessonView(ctx context.Context, lessonID int64) (dto.LessonAttendanceView, error) {
	lesson, err := s.backend.Lessons.Get(ctx, lessonID)
	if err != nil {
		return dto.LessonAttendanceView{}, err
	}

	attendances, err := s.backend.Attendances.ByLesson(ctx, lessonID)
	if err != nil {
		return dto.LessonAttendanceView{}, err
	}

	view := dto.LessonAttendanceView{Lesson: lesson}
	if len(attendances) > 0 {
		view.Registered = true
		view.Attendances = attendances
		return view, nil
	}

	roster, err := s.backend.Courses.Students(ctx, lesson.CourseID)
	if err != nil {
		return dto.LessonAttendanceView{}, err
	}
	view.Roster = roster
	return view, nil
}

// Register writes the whole per-student form for a lesson, one creation
// call per student, concurrently and best-effort.
func (s *AttendanceService) Register(ctx context.Context, req dto.RegisterAttendanceRequest) dto.BatchResult {
	errs := fanOut(len(req.Entries), func(i int) error {
		entry := req.Entries[i]
		_, err := s.backend.Attendances.Create(ctx, backend.CreateAttendanceInput{
			LessonID:  req.LessonID,
			StudentID: entry.StudentID,
			Status:    entry.Status,
			Justified: entry.Justified,
			Note:      entry.Note,
		})
		return err
	})

	result := dto.BatchResult{Attempted: len(req.Entries)}
	for i, err := range errs {
		if err == nil {
			result.Succeeded++
			continue
		}
		s.logger.Warn().Err(err).Int64("studentID", req.Entries[i].StudentID).Msg("Attendance entry rejected")
		result.Failed = append(result.Failed, dto.BatchItemError{
			StudentID: req.Entries[i].StudentID,
			Message:   err.Error(),
		})
	}
	return result
}

// Confirm marks one record as reviewed.
func (s *AttendanceService) Confirm(ctx context.Context, id int64) error {
	return s.backend.Attendances.Confirm(ctx, id)
}

// Calendar builds the student's month view: own lessons grouped by day,
// each paired with the student's attendance record when one exists.
// month is YYYY-MM; "" means the current month.
func (s *AttendanceService) Calendar(ctx context.Context, month string) (dto.AttendanceCalendarView, error) {
	today := s.now().Format("2006-01-02")
	if month == "" {
		month = today[:7]
	}
	first, err := time.Parse("2006-01", month)
	if err != nil {
		return dto.AttendanceCalendarView{}, apperrors.NewValidationError("month must be YYYY-MM")
	}

	student, err := s.backend.Students.Me(ctx)
	if err != nil {
		return dto.AttendanceCalendarView{}, err
	}

	lessons, err := s.backend.Lessons.List(ctx)
	if err != nil {
		return dto.AttendanceCalendarView{}, err
	}

	attendances, err := s.backend.Students.MyAttendances(ctx)
	if err != nil {
		// The calendar still renders without attendance badges.
		s.logger.Warn().Err(err).Msg("Failed to load own attendances for calendar")
		attendances = nil
	}

	byLesson := make(map[int64]models.Attendance, len(attendances))
	for _, a := range attendances {
		byLesson[a.LessonID] = a
	}

	byDay := map[string][]dto.CalendarLessonRow{}
	for _, lesson := range lessons {
		if lesson.CourseID != student.CourseID {
			continue
		}
		if len(lesson.LessonDate) < 7 || lesson.LessonDate[:7] != month {
			continue
		}

		row := dto.CalendarLessonRow{Lesson: lesson}
		if a, ok := byLesson[lesson.ID]; ok {
			attendance := a
			row.Attendance = &attendance
		} else {
			row.CanSelfMark = lesson.LessonDate == today
		}
		byDay[lesson.LessonDate] = append(byDay[lesson.LessonDate], row)
	}

	view := dto.AttendanceCalendarView{Month: month}
	daysInMonth := first.AddDate(0, 1, -1).Day()
	for d := 1; d <= daysInMonth; d++ {
		date := first.AddDate(0, 0, d-1).Format("2006-01-02")
		day := dto.CalendarDay{Date: date}
		if rows, ok := byDay[date]; ok {
			day.HasLessons = true
			day.Lessons = rows
		}
		view.Days = append(view.Days, day)
	}
	return view, nil
}

// SelfMark records the student's own presence. Only lessons occurring
// today without an existing record qualify.
func (s *AttendanceService) SelfMark(ctx context.Context, req dto.SelfMarkRequest) error {
	lesson, err := s.backend.Lessons.Get(ctx, req.LessonID)
	if err != nil {
		return err
	}
	if lesson.LessonDate != s.now().Format("2006-01-02") {
		return apperrors.ErrLessonNotToday
	}

	attendances, err := s.backend.Students.MyAttendances(ctx)
	if err == nil {
		for _, a := range attendances {
			if a.LessonID == req.LessonID {
				return apperrors.ErrAttendanceExists
			}
		}
	}

	return s.backend.Attendances.SelfMark(ctx, req.LessonID, req.Status)
}
