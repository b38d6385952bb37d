package models

// Role defines the closed set of user roles recognized by the backend.
// Every page decides its view composition from this value exactly once.
type Role string

const (
	RoleAdmin     Role = "admin"
	RoleProfessor Role = "professor"
	RoleTutor     Role = "tutor"
	RoleStudent   Role = "student"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleProfessor, RoleTutor, RoleStudent:
		return true
	}
	return false
}

// Staff reports whether the role manages other people's data
// (exam sessions, grade entry, attendance confirmation).
func (r Role) Staff() bool {
	return r == RoleAdmin || r == RoleProfessor || r == RoleTutor
}

// AttendanceStatus is the state of a single attendance record.
type AttendanceStatus string

const (
	AttendancePresent   AttendanceStatus = "present"
	AttendanceAbsent    AttendanceStatus = "absent"
	AttendanceLate      AttendanceStatus = "late"
	AttendanceEarlyExit AttendanceStatus = "early_exit"
)

// StudentStatus is the enrollment state of a student.
type StudentStatus string

const (
	StudentActive    StudentStatus = "active"
	StudentGraduated StudentStatus = "graduated"
	StudentRetired   StudentStatus = "retired"
)
