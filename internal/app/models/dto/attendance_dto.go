package dto

import "github.com/lyra-school/lyra-web/internal/app/models"

// AttendanceEntry is one student's row of the professor registration form.
type AttendanceEntry struct {
	StudentID int64  `json:"student_id" binding:"required"`
	Status    string `json:"status" binding:"required,oneof=present absent late early_exit"`
	Justified bool   `json:"justified"`
	Note      string `json:"note" binding:"max=500"`
}

// RegisterAttendanceRequest submits the whole per-student form for one
// lesson. Entries are written best-effort, one backend call each.
type RegisterAttendanceRequest struct {
	LessonID int64             `json:"lesson_id" binding:"required"`
	Entries  []AttendanceEntry `json:"entries" binding:"required,min=1,dive"`
}

// SelfMarkRequest is a student marking their own presence for a lesson
// occurring today. Only present and late are allowed from this path.
type SelfMarkRequest struct {
	LessonID int64  `json:"lesson_id" binding:"required"`
	Status   string `json:"status" binding:"required,oneof=present late"`
}

// LessonAttendanceView is the professor page for one lesson: either the
// registration roster (no records yet) or the recorded rows awaiting
// confirmation.
type LessonAttendanceView struct {
	Lesson      models.Lesson       `json:"lesson"`
	Registered  bool                `json:"registered"`
	Attendances []models.Attendance `json:"attendances,omitempty"`
	Roster      []models.Student    `json:"roster,omitempty"`
}

// CalendarDay is one day cell of the student attendance calendar.
type CalendarDay struct {
	Date       string              `json:"date"` // YYYY-MM-DD
	HasLessons bool                `json:"has_lessons"`
	Lessons    []CalendarLessonRow `json:"lessons,omitempty"`
}

// CalendarLessonRow pairs a lesson with the student's own attendance state
// for it, if any.
type CalendarLessonRow struct {
	Lesson     models.Lesson      `json:"lesson"`
	Attendance *models.Attendance `json:"attendance,omitempty"`
	// CanSelfMark is true only for lessons occurring today with no
	// attendance row yet.
	CanSelfMark bool `json:"can_self_mark"`
}

// AttendanceCalendarView is the student self-mark page for one month.
type AttendanceCalendarView struct {
	Month string        `json:"month"` // YYYY-MM
	Days  []CalendarDay `json:"days"`
}
