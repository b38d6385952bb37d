package dto

import "github.com/lyra-school/lyra-web/internal/app/models"

// CreateExamSessionRequest is the exam session form.
type CreateExamSessionRequest struct {
	SubjectID int64  `json:"subject_id" binding:"required"`
	CourseID  int64  `json:"course_id" binding:"required"`
	ExamDate  string `json:"exam_date" binding:"required,dateonly"`
	ExamTime  string `json:"exam_time" binding:"omitempty,timeofday"`
}

// UpdateExamSessionRequest carries only the fields to change.
type UpdateExamSessionRequest struct {
	SubjectID *int64  `json:"subject_id,omitempty"`
	CourseID  *int64  `json:"course_id,omitempty"`
	ExamDate  *string `json:"exam_date,omitempty" binding:"omitempty,dateonly"`
	ExamTime  *string `json:"exam_time,omitempty" binding:"omitempty,timeofday"`
}

// GradeEntry is one student's cell of the grade editor. An empty Grade
// string clears the grade back to pending.
type GradeEntry struct {
	StudentID int64  `json:"student_id" binding:"required"`
	Grade     string `json:"grade" binding:"omitempty,gradevalue"`
}

// SaveGradesRequest submits the whole grade editor for one session.
// Entries are upserted best-effort, one backend call each.
type SaveGradesRequest struct {
	Entries []GradeEntry `json:"entries" binding:"required,min=1,dive"`
}

// GradeEditorRow is one roster line of the grade editor view.
type GradeEditorRow struct {
	Student models.Student `json:"student"`
	// Grade is the editable string form; "" when no result exists yet
	// or the grade is pending.
	Grade   string `json:"grade"`
	Outcome string `json:"outcome"` // pending, passed, failed, or "" without a result
	// ResultID is the existing exam result id, 0 when none exists.
	ResultID int64 `json:"result_id"`
}

// GradeEditorView is the per-session grade editor payload.
type GradeEditorView struct {
	Session models.ExamSession `json:"session"`
	Rows    []GradeEditorRow   `json:"rows"`
}

// StudentExamRow is one line of the student's own results view.
type StudentExamRow struct {
	Result  models.ExamResult `json:"result"`
	Outcome string            `json:"outcome"`
}

// ExamsView is the role-dispatched exams page payload. Exactly one of the
// role sections is populated.
type ExamsView struct {
	Role models.Role `json:"role"`
	// Student section
	MyResults []StudentExamRow `json:"my_results,omitempty"`
	// Staff section
	Sessions []models.ExamSession `json:"sessions,omitempty"`
	Subjects []models.Subject     `json:"subjects,omitempty"`
	Courses  []models.Course      `json:"courses,omitempty"`
	Pending  []models.ExamResult  `json:"pending,omitempty"`
}
