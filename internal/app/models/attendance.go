package models

// Attendance mirrors the backend 'attendances' resource. A record starts
// unconfirmed (a professor registration or a student self-mark) and becomes
// confirmed only through the confirm endpoint, which changes nothing else.
type Attendance struct {
	ID        int64            `json:"id"`
	LessonID  int64            `json:"lesson_id"`
	StudentID int64            `json:"student_id"`
	Status    AttendanceStatus `json:"status"`
	Justified bool             `json:"justified"`
	Confirmed bool             `json:"confirmed"`
	Note      string           `json:"note,omitempty"`
	Lesson    *Lesson          `json:"lesson,omitempty"`
	Student   *Student         `json:"student,omitempty"`
}
