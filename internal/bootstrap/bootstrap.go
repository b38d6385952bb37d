package bootstrap

import (
	"path/filepath"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	appControllers "github.com/lyra-school/lyra-web/internal/app/controllers"
	appRoutes "github.com/lyra-school/lyra-web/internal/app/routes"
	appServices "github.com/lyra-school/lyra-web/internal/app/services"
	"github.com/lyra-school/lyra-web/internal/backend"
	"github.com/lyra-school/lyra-web/internal/config"
	appMiddleware "github.com/lyra-school/lyra-web/internal/middleware"
	"github.com/lyra-school/lyra-web/internal/pkg/logger"
	"github.com/lyra-school/lyra-web/internal/pkg/validation"
	"github.com/lyra-school/lyra-web/internal/session"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Backend              *backend.Services
	AuthService          *appServices.AuthService
	AttendanceService    *appServices.AttendanceService
	ExamService          *appServices.ExamService
	ReportService        *appServices.ReportService
	DashboardService     *appServices.DashboardService
	AuthController       *appControllers.AuthController
	UserController       *appControllers.UserController
	StudentController    *appControllers.StudentController
	ProfessorController  *appControllers.ProfessorController
	CourseController     *appControllers.CourseController
	SubjectController    *appControllers.SubjectController
	LessonController     *appControllers.LessonController
	AttendanceController *appControllers.AttendanceController
	ExamController       *appControllers.ExamController
	ReportController     *appControllers.ReportController
	DashboardController  *appControllers.DashboardController
	Guard                *appMiddleware.Guard
	Logger               zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	// A missing .env file is fine, env vars may come from the process.
	_ = godotenv.Load()

	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := logger.Base()
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// BuildDependencies initializes the backend client, services and
// controllers.
func BuildDependencies(cfg *config.Config, lgr zerolog.Logger) *Dependencies {
	deps := &Dependencies{Logger: lgr}

	client := backend.NewClient(cfg.Backend.BaseURL, cfg.BackendTimeout(), lgr)
	deps.Backend = backend.NewServices(client)

	deps.AuthService = appServices.NewAuthService(deps.Backend, lgr)
	deps.AttendanceService = appServices.NewAttendanceService(deps.Backend, lgr)
	deps.ExamService = appServices.NewExamService(deps.Backend, lgr)
	deps.ReportService = appServices.NewReportService(deps.Backend, lgr)
	deps.DashboardService = appServices.NewDashboardService(deps.Backend, lgr)

	deps.Guard = appMiddleware.NewGuard(lgr)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService)
	deps.UserController = appControllers.NewUserController(deps.Backend.Users)
	deps.StudentController = appControllers.NewStudentController(deps.Backend.Students)
	deps.ProfessorController = appControllers.NewProfessorController(deps.Backend.Professors)
	deps.CourseController = appControllers.NewCourseController(deps.Backend.Courses)
	deps.SubjectController = appControllers.NewSubjectController(deps.Backend.Subjects)
	deps.LessonController = appControllers.NewLessonController(deps.Backend.Lessons, deps.Backend.Professors)
	deps.AttendanceController = appControllers.NewAttendanceController(deps.AttendanceService)
	deps.ExamController = appControllers.NewExamController(deps.ExamService, deps.Backend.Exams)
	deps.ReportController = appControllers.NewReportController(deps.ReportService)
	deps.DashboardController = appControllers.NewDashboardController(deps.DashboardService)

	return deps
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	validation.Register()

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(appMiddleware.RequestID())
	router.Use(appMiddleware.AccessLog(lgr))

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{cfg.Server.BaseURL}
	corsConfig.AllowCredentials = true
	router.Use(cors.New(corsConfig))

	router.Use(session.Middleware(session.Options{
		Secret:     cfg.Session.Secret,
		CookieName: cfg.Session.CookieName,
		MaxAge:     int(cfg.SessionMaxAge().Seconds()),
		Secure:     cfg.Session.Secure,
	}))

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.UserController,
		deps.StudentController,
		deps.ProfessorController,
		deps.CourseController,
		deps.SubjectController,
		deps.LessonController,
		deps.AttendanceController,
		deps.ExamController,
		deps.ReportController,
		deps.DashboardController,
		deps.Guard,
	)

	return router
}
