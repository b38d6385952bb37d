package models

// ExamSession mirrors the backend 'exam-sessions' resource: a scheduled
// exam event for a subject and course, distinct from any student's result.
type ExamSession struct {
	ID          int64    `json:"id"`
	SubjectID   int64    `json:"subject_id"`
	CourseID    int64    `json:"course_id"`
	ProfessorID int64    `json:"professor_id,omitempty"`
	ExamDate    string   `json:"exam_date"`           // YYYY-MM-DD
	ExamTime    string   `json:"exam_time,omitempty"` // HH:MM, optional
	Subject     *Subject `json:"subject,omitempty"`
	Course      *Course  `json:"course,omitempty"`
}

// ExamResult mirrors the backend 'exam-results' resource. A nil Grade means
// the result is pending confirmation; Passed is always backend-supplied and
// never recomputed here.
type ExamResult struct {
	ID            int64        `json:"id"`
	ExamSessionID int64        `json:"exam_session_id"`
	StudentID     int64        `json:"student_id"`
	Grade         *float64     `json:"grade,omitempty"`
	Passed        bool         `json:"passed"`
	ExamSession   *ExamSession `json:"exam_session,omitempty"`
	Student       *Student     `json:"student,omitempty"`
}

// Outcome returns the label shown for a result: "pending" while the grade
// is unset, otherwise "passed" or "failed" from the backend flag.
func (r ExamResult) Outcome() string {
	if r.Grade == nil {
		return "pending"
	}
	if r.Passed {
		return "passed"
	}
	return "failed"
}
