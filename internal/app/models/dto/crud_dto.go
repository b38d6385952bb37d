package dto

// Form DTOs for the entity CRUD pages. Binding tags gate submission before
// any backend call; the backend revalidates everything independently.

// CreateUserRequest is the admin user form.
type CreateUserRequest struct {
	FirstName string `json:"first_name" binding:"required,min=2,max=100"`
	LastName  string `json:"last_name" binding:"required,min=2,max=100"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=8"`
	Role      string `json:"role" binding:"required,oneof=admin professor tutor student"`
	Phone     string `json:"phone" binding:"omitempty,phone"`
	BirthDate string `json:"birth_date" binding:"omitempty,dateonly"`
}

// UpdateUserRequest carries only the fields to change.
type UpdateUserRequest struct {
	FirstName *string `json:"first_name,omitempty" binding:"omitempty,min=2,max=100"`
	LastName  *string `json:"last_name,omitempty" binding:"omitempty,min=2,max=100"`
	Email     *string `json:"email,omitempty" binding:"omitempty,email"`
	Password  *string `json:"password,omitempty" binding:"omitempty,min=8"`
	Role      *string `json:"role,omitempty" binding:"omitempty,oneof=admin professor tutor student"`
	Phone     *string `json:"phone,omitempty" binding:"omitempty,phone"`
	BirthDate *string `json:"birth_date,omitempty" binding:"omitempty,dateonly"`
}

// CreateCourseRequest is the course form.
type CreateCourseRequest struct {
	Name          string `json:"name" binding:"required,min=2,max=150"`
	DurationYears int    `json:"duration_years" binding:"required,min=1,max=10"`
}

// UpdateCourseRequest carries only the fields to change.
type UpdateCourseRequest struct {
	Name          *string `json:"name,omitempty" binding:"omitempty,min=2,max=150"`
	DurationYears *int    `json:"duration_years,omitempty" binding:"omitempty,min=1,max=10"`
}

// CreateSubjectRequest is the subject form.
type CreateSubjectRequest struct {
	Name          string `json:"name" binding:"required,min=2,max=150"`
	DurationHours int    `json:"duration_hours" binding:"required,min=1"`
	CourseID      int64  `json:"course_id" binding:"required"`
}

// UpdateSubjectRequest carries only the fields to change.
type UpdateSubjectRequest struct {
	Name          *string `json:"name,omitempty" binding:"omitempty,min=2,max=150"`
	DurationHours *int    `json:"duration_hours,omitempty" binding:"omitempty,min=1"`
	CourseID      *int64  `json:"course_id,omitempty"`
}

// CreateProfessorRequest links an existing user to the professor roster.
type CreateProfessorRequest struct {
	UserID   int64   `json:"user_id" binding:"required"`
	Subjects []int64 `json:"subjects,omitempty"`
	Courses  []int64 `json:"courses,omitempty"`
}

// UpdateProfessorRequest carries only the fields to change.
type UpdateProfessorRequest struct {
	Subjects []int64 `json:"subjects,omitempty"`
	Courses  []int64 `json:"courses,omitempty"`
}

// CreateStudentRequest is the student enrollment form.
type CreateStudentRequest struct {
	UserID           int64  `json:"user_id" binding:"required"`
	CourseID         int64  `json:"course_id" binding:"required"`
	EnrollmentNumber string `json:"enrollment_number" binding:"required,enrollment"`
	EnrollmentYear   string `json:"enrollment_year" binding:"required,year4"`
	Status           string `json:"status" binding:"omitempty,oneof=active graduated retired"`
}

// UpdateStudentRequest carries only the fields to change.
type UpdateStudentRequest struct {
	CourseID         *int64  `json:"course_id,omitempty"`
	EnrollmentNumber *string `json:"enrollment_number,omitempty" binding:"omitempty,enrollment"`
	EnrollmentYear   *string `json:"enrollment_year,omitempty" binding:"omitempty,year4"`
	Status           *string `json:"status,omitempty" binding:"omitempty,oneof=active graduated retired"`
}

// CreateLessonRequest is the lesson form.
type CreateLessonRequest struct {
	SubjectID   int64  `json:"subject_id" binding:"required"`
	CourseID    int64  `json:"course_id" binding:"required"`
	ProfessorID int64  `json:"professor_id" binding:"required"`
	LessonDate  string `json:"lesson_date" binding:"required,dateonly"`
	StartTime   string `json:"start_time" binding:"required,timeofday"`
	EndTime     string `json:"end_time" binding:"required,timeofday"`
}

// UpdateLessonRequest carries only the fields to change.
type UpdateLessonRequest struct {
	SubjectID   *int64  `json:"subject_id,omitempty"`
	CourseID    *int64  `json:"course_id,omitempty"`
	ProfessorID *int64  `json:"professor_id,omitempty"`
	LessonDate  *string `json:"lesson_date,omitempty" binding:"omitempty,dateonly"`
	StartTime   *string `json:"start_time,omitempty" binding:"omitempty,timeofday"`
	EndTime     *string `json:"end_time,omitempty" binding:"omitempty,timeofday"`
}
