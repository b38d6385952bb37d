package services

import (
	"context"
	"sort"
	"time"

	"github.com/rs/zerolog"

	"github.com/lyra-school/lyra-web/internal/app/models"
	"github.com/lyra-school/lyra-web/internal/app/models/dto"
	"github.com/lyra-school/lyra-web/internal/app/views"
	"github.com/lyra-school/lyra-web/internal/backend"
)

// DashboardService builds the role-dispatched home page. Every section
// degrades independently: a failing stat card or feed logs a warning and
// renders empty instead of failing the whole page.
type DashboardService struct {
	backend *backend.Services
	logger  zerolog.Logger
}

// NewDashboardService creates a new DashboardService
func NewDashboardService(b *backend.Services, logger zerolog.Logger) *DashboardService {
	return &DashboardService{backend: b, logger: logger}
}

// View assembles the dashboard for the given role.
func (s *DashboardService) View(ctx context.Context, role models.Role) dto.DashboardView {
	view := dto.DashboardView{
		Role:         role,
		Menu:         views.MenuFor(role),
		QuickActions: views.QuickActionsFor(role),
		Upcoming:     []models.Lesson{},
		Alerts:       []models.DashboardAlert{},
		Activities:   []models.DashboardActivity{},
	}

	switch role {
	case models.RoleAdmin:
		view.StatCards = s.adminCards(ctx)
	case models.RoleProfessor:
		view.StatCards = s.professorCards(ctx)
	case models.RoleTutor:
		view.StatCards = s.tutorCards(ctx)
	default:
		view.StatCards = s.studentCards(ctx)
	}

	if lessons, err := s.upcoming(ctx, role); err != nil {
		s.logger.Warn().Err(err).Msg("Dashboard upcoming lessons unavailable")
	} else if lessons != nil {
		view.Upcoming = lessons
	}
	if alerts, err := s.backend.Dashboard.Alerts(ctx); err != nil {
		s.logger.Warn().Err(err).Msg("Dashboard alerts unavailable")
	} else if alerts != nil {
		view.Alerts = alerts
	}
	if activities, err := s.backend.Dashboard.Activities(ctx); err != nil {
		s.logger.Warn().Err(err).Msg("Dashboard activities unavailable")
	} else if activities != nil {
		view.Activities = activities
	}

	return view
}

// upcoming prefers the dedicated feed and falls back to filtering the
// caller's lesson list when the feed is unavailable.
func (s *DashboardService) upcoming(ctx context.Context, role models.Role) ([]models.Lesson, error) {
	lessons, err := s.backend.Dashboard.UpcomingLessons(ctx)
	if err == nil {
		return lessons, nil
	}
	s.logger.Debug().Err(err).Msg("Upcoming lessons feed unavailable, filtering lesson list")

	if role == models.RoleProfessor {
		lessons, err = s.backend.Professors.MyLessons(ctx)
	} else {
		lessons, err = s.backend.Lessons.List(ctx)
	}
	if err != nil {
		return nil, err
	}

	today := time.Now().Format("2006-01-02")
	next := make([]models.Lesson, 0, upcomingLimit)
	for _, l := range lessons {
		if l.LessonDate >= today {
			next = append(next, l)
		}
	}
	sort.Slice(next, func(i, j int) bool {
		if next[i].LessonDate != next[j].LessonDate {
			return next[i].LessonDate < next[j].LessonDate
		}
		return next[i].StartTime < next[j].StartTime
	})
	if len(next) > upcomingLimit {
		next = next[:upcomingLimit]
	}
	return next, nil
}

const upcomingLimit = 5

func (s *DashboardService) adminCards(ctx context.Context) []dto.StatCardView {
	stats, err := s.backend.Dashboard.Stats(ctx)
	if err != nil {
		s.logger.Warn().Err(err).Msg("Dashboard stats unavailable")
	}
	return []dto.StatCardView{
		{Label: "Students", Value: stats.Students, Icon: "user-graduate", Href: "/students"},
		{Label: "Professors", Value: stats.Professors, Icon: "user-tie", Href: "/professors"},
		{Label: "Courses", Value: stats.Courses, Icon: "chalkboard-teacher", Href: "/courses"},
		{Label: "Subjects", Value: stats.Subjects, Icon: "book", Href: "/subjects"},
		{Label: "Lessons", Value: stats.Lessons, Icon: "calendar-alt", Href: "/lessons"},
		{Label: "Users", Value: stats.Users, Icon: "users", Href: "/users"},
	}
}

func (s *DashboardService) professorCards(ctx context.Context) []dto.StatCardView {
	lessons := s.count(func() (int, error) {
		items, err := s.backend.Professors.MyLessons(ctx)
		return len(items), err
	}, "professor lessons")
	subjects := s.count(func() (int, error) {
		items, err := s.backend.Professors.MySubjects(ctx)
		return len(items), err
	}, "professor subjects")
	return []dto.StatCardView{
		{Label: "My lessons", Value: lessons, Icon: "calendar-alt", Href: "/lessons"},
		{Label: "My subjects", Value: subjects, Icon: "book", Href: "/exams"},
	}
}

func (s *DashboardService) tutorCards(ctx context.Context) []dto.StatCardView {
	students := s.count(func() (int, error) {
		items, err := s.backend.Students.List(ctx)
		return len(items), err
	}, "tutor students")
	courses := s.count(func() (int, error) {
		items, err := s.backend.Courses.List(ctx)
		return len(items), err
	}, "tutor courses")
	return []dto.StatCardView{
		{Label: "Students", Value: students, Icon: "user-graduate", Href: "/students"},
		{Label: "Courses", Value: courses, Icon: "chalkboard-teacher", Href: "/courses"},
	}
}

func (s *DashboardService) studentCards(ctx context.Context) []dto.StatCardView {
	attendances := s.count(func() (int, error) {
		items, err := s.backend.Students.MyAttendances(ctx)
		return len(items), err
	}, "student attendances")
	grades := s.count(func() (int, error) {
		items, err := s.backend.Students.MyGrades(ctx)
		return len(items), err
	}, "student grades")
	return []dto.StatCardView{
		{Label: "Attendances", Value: attendances, Icon: "clipboard-check", Href: "/attendances"},
		{Label: "Grades", Value: grades, Icon: "graduation-cap", Href: "/exams"},
	}
}

// count runs one counting fetch, logging and returning zero on failure.
func (s *DashboardService) count(fetch func() (int, error), what string) int {
	n, err := fetch()
	if err != nil {
		s.logger.Warn().Err(err).Str("section", what).Msg("Dashboard stat unavailable")
		return 0
	}
	return n
}
