package backend

// Services bundles every resource service over one shared client.
type Services struct {
	Auth        *AuthService
	Users       *UsersService
	Students    *StudentsService
	Professors  *ProfessorsService
	Courses     *CoursesService
	Subjects    *SubjectsService
	Lessons     *LessonsService
	Attendances *AttendancesService
	Exams       *ExamsService
	Reports     *ReportsService
	Dashboard   *DashboardService
}

// NewServices creates the resource services for a client.
func NewServices(client *Client) *Services {
	return &Services{
		Auth:        NewAuthService(client),
		Users:       NewUsersService(client),
		Students:    NewStudentsService(client),
		Professors:  NewProfessorsService(client),
		Courses:     NewCoursesService(client),
		Subjects:    NewSubjectsService(client),
		Lessons:     NewLessonsService(client),
		Attendances: NewAttendancesService(client),
		Exams:       NewExamsService(client),
		Reports:     NewReportsService(client),
		Dashboard:   NewDashboardService(client),
	}
}
