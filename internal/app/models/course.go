package models

// Course mirrors the backend 'courses' resource.
type Course struct {
	ID            int64      `json:"id"`
	Name          string     `json:"name"`
	DurationYears int        `json:"duration_years"`
	Subjects      []Subject  `json:"subjects,omitempty"` // Relation, present on GET /courses/{id}
	Students      []Student  `json:"students,omitempty"` // Relation, present on GET /courses/{id}
}

// Subject mirrors the backend 'subjects' resource. Many-to-many with
// Professor through the subject/professor assignment endpoints.
type Subject struct {
	ID            int64       `json:"id"`
	Name          string      `json:"name"`
	DurationHours int         `json:"duration_hours"`
	CourseID      int64       `json:"course_id"`
	Course        *Course     `json:"course,omitempty"`
	Professors    []Professor `json:"professors,omitempty"`
}

// Professor mirrors the backend 'professors' resource.
type Professor struct {
	ID       int64     `json:"id"`
	UserID   int64     `json:"user_id"`
	User     *User     `json:"user,omitempty"`
	Subjects []Subject `json:"subjects,omitempty"`
	Courses  []Course  `json:"courses,omitempty"`
}

// Student mirrors the backend 'students' resource.
type Student struct {
	ID               int64         `json:"id"`
	UserID           int64         `json:"user_id"`
	CourseID         int64         `json:"course_id"`
	EnrollmentNumber string        `json:"enrollment_number"`
	EnrollmentYear   string        `json:"enrollment_year"` // 4-digit year
	Status           StudentStatus `json:"status"`
	User             *User         `json:"user,omitempty"`
	Course           *Course       `json:"course,omitempty"`
}

// Lesson mirrors the backend 'lessons' resource: one occurrence of a
// subject taught on a date, between start and end time.
type Lesson struct {
	ID          int64      `json:"id"`
	SubjectID   int64      `json:"subject_id"`
	CourseID    int64      `json:"course_id"`
	ProfessorID int64      `json:"professor_id"`
	LessonDate  string     `json:"lesson_date"` // YYYY-MM-DD
	StartTime   string     `json:"start_time"`  // HH:MM
	EndTime     string     `json:"end_time"`    // HH:MM
	Subject     *Subject   `json:"subject,omitempty"`
	Course      *Course    `json:"course,omitempty"`
	Professor   *Professor `json:"professor,omitempty"`
}
