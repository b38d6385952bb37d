package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lyra-school/lyra-web/internal/app/controllers"
	"github.com/lyra-school/lyra-web/internal/app/models"
	"github.com/lyra-school/lyra-web/internal/middleware"
)

// SetupRouter configures all application routes. Role allow-lists mirror
// the sidebar permission table; the backend still authorizes every call on
// its own, so these gates only shape navigation.
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	userController *controllers.UserController,
	studentController *controllers.StudentController,
	professorController *controllers.ProfessorController,
	courseController *controllers.CourseController,
	subjectController *controllers.SubjectController,
	lessonController *controllers.LessonController,
	attendanceController *controllers.AttendanceController,
	examController *controllers.ExamController,
	reportController *controllers.ReportController,
	dashboardController *controllers.DashboardController,
	guard *middleware.Guard,
) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api/v1")

	// --- Public auth routes ---
	auth := api.Group("/auth")
	{
		auth.POST("/login", authController.Login)
	}

	// --- Authenticated routes ---
	authenticated := api.Group("")
	authenticated.Use(guard.RequireAuth())
	{
		authenticated.POST("/auth/logout", authController.Logout)
		authenticated.GET("/profile", authController.Profile)
		authenticated.GET("/home", dashboardController.Home)

		// User management, admin only
		users := authenticated.Group("/users")
		users.Use(guard.RequireRoles(models.RoleAdmin))
		{
			users.GET("", userController.ListUsers)
			users.GET("/roles", userController.ListRoles)
			users.GET("/:id", userController.GetUser)
			users.POST("", userController.CreateUser)
			users.PATCH("/:id", userController.UpdateUser)
			users.DELETE("/:id", userController.DeleteUser)
		}

		// Student management
		students := authenticated.Group("/students")
		students.Use(guard.RequireRoles(models.RoleAdmin, models.RoleProfessor, models.RoleTutor))
		{
			students.GET("", studentController.ListStudents)
			students.GET("/:id", studentController.GetStudent)

			studentsAdmin := students.Group("")
			studentsAdmin.Use(guard.RequireRoles(models.RoleAdmin))
			{
				studentsAdmin.POST("", studentController.CreateStudent)
				studentsAdmin.PATCH("/:id", studentController.UpdateStudent)
				studentsAdmin.DELETE("/:id", studentController.DeleteStudent)
			}
		}

		// Professor management, admin only
		professors := authenticated.Group("/professors")
		professors.Use(guard.RequireRoles(models.RoleAdmin))
		{
			professors.GET("", professorController.ListProfessors)
			professors.GET("/:id", professorController.GetProfessor)
			professors.POST("", professorController.CreateProfessor)
			professors.PATCH("/:id", professorController.UpdateProfessor)
			professors.DELETE("/:id", professorController.DeleteProfessor)
			professors.POST("/:id/courses/:courseId", professorController.AssignCourse)
			professors.DELETE("/:id/courses/:courseId", professorController.UnassignCourse)
		}

		// Course management
		courses := authenticated.Group("/courses")
		courses.Use(guard.RequireRoles(models.RoleAdmin, models.RoleTutor))
		{
			courses.GET("", courseController.ListCourses)
			courses.GET("/:id", courseController.GetCourse)
			courses.GET("/:id/students", courseController.ListCourseStudents)

			coursesAdmin := courses.Group("")
			coursesAdmin.Use(guard.RequireRoles(models.RoleAdmin))
			{
				coursesAdmin.POST("", courseController.CreateCourse)
				coursesAdmin.PATCH("/:id", courseController.UpdateCourse)
				coursesAdmin.DELETE("/:id", courseController.DeleteCourse)
			}
		}

		// Subject management, admin only
		subjects := authenticated.Group("/subjects")
		subjects.Use(guard.RequireRoles(models.RoleAdmin))
		{
			subjects.GET("", subjectController.ListSubjects)
			subjects.GET("/:id", subjectController.GetSubject)
			subjects.POST("", subjectController.CreateSubject)
			subjects.PATCH("/:id", subjectController.UpdateSubject)
			subjects.DELETE("/:id", subjectController.DeleteSubject)
			subjects.POST("/:id/professors/:professorId", subjectController.AssignProfessor)
			subjects.DELETE("/:id/professors/:professorId", subjectController.UnassignProfessor)
		}

		// Lesson schedule, readable by every role
		lessons := authenticated.Group("/lessons")
		{
			lessons.GET("", lessonController.ListLessons)
			lessons.GET("/:id", lessonController.GetLesson)

			lessonsAdmin := lessons.Group("")
			lessonsAdmin.Use(guard.RequireRoles(models.RoleAdmin))
			{
				lessonsAdmin.POST("", lessonController.CreateLesson)
				lessonsAdmin.PATCH("/:id", lessonController.UpdateLesson)
				lessonsAdmin.DELETE("/:id", lessonController.DeleteLesson)
			}
		}

		// Attendance: professor register plus the student calendar
		attendances := authenticated.Group("/attendances")
		{
			attendancesStaff := attendances.Group("")
			attendancesStaff.Use(guard.RequireRoles(models.RoleAdmin, models.RoleProfessor, models.RoleTutor))
			{
				attendancesStaff.GET("/lessons/:id", attendanceController.LessonAttendance)
				attendancesStaff.POST("/register", attendanceController.Register)
				attendancesStaff.POST("/:id/confirm", attendanceController.Confirm)
			}

			attendancesStudent := attendances.Group("")
			attendancesStudent.Use(guard.RequireRoles(models.RoleStudent))
			{
				attendancesStudent.GET("/calendar", attendanceController.Calendar)
				attendancesStudent.POST("/self-mark", attendanceController.SelfMark)
			}
		}

		// Exams: the page dispatches on role internally
		exams := authenticated.Group("/exams")
		{
			exams.GET("", examController.ExamsPage)

			examsStaff := exams.Group("")
			examsStaff.Use(guard.RequireRoles(models.RoleAdmin, models.RoleProfessor, models.RoleTutor))
			{
				examsStaff.POST("/sessions", examController.CreateSession)
				examsStaff.PATCH("/sessions/:id", examController.UpdateSession)
				examsStaff.DELETE("/sessions/:id", examController.DeleteSession)
				examsStaff.GET("/sessions/:id/grades", examController.GradeEditor)
				examsStaff.POST("/sessions/:id/grades", examController.SaveGrades)
			}
		}

		// Grade reports
		reports := authenticated.Group("/reports")
		reports.Use(guard.RequireRoles(models.RoleAdmin, models.RoleProfessor, models.RoleTutor))
		{
			reports.GET("/filters", reportController.Filters)
			reports.GET("/grades", reportController.ReportsPage)
			reports.GET("/grades/export/xlsx", reportController.ExportXLSX)
			reports.GET("/grades/export/pdf", reportController.ExportPDF)
		}
	}
}
