package services

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/lyra-school/lyra-web/internal/app/models"
)

func TestDashboardAdminCards(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("/dashboard/stats", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, models.DashboardStats{Students: 120, Professors: 8, Courses: 5, Subjects: 20, Lessons: 300, Users: 140})
	})
	mux.HandleFunc("/dashboard/upcoming-lessons", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, []models.Lesson{{ID: 1, LessonDate: "2025-03-11"}})
	})
	mux.HandleFunc("/dashboard/alerts", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, []models.DashboardAlert{{ID: 1, Severity: "warning", Message: "Attendance below threshold"}})
	})
	mux.HandleFunc("/dashboard/activities", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, []models.DashboardActivity{})
	})

	svc := NewDashboardService(testBackend(t, mux), zerolog.Nop())
	view := svc.View(context.Background(), models.RoleAdmin)

	if view.Role != models.RoleAdmin {
		t.Errorf("role: got %s", view.Role)
	}
	if len(view.StatCards) != 6 {
		t.Fatalf("stat cards: got %d, want 6", len(view.StatCards))
	}
	if view.StatCards[0].Label != "Students" || view.StatCards[0].Value != 120 {
		t.Errorf("first card: got %+v", view.StatCards[0])
	}
	if len(view.Upcoming) != 1 || len(view.Alerts) != 1 {
		t.Errorf("feeds: got %d upcoming, %d alerts", len(view.Upcoming), len(view.Alerts))
	}
	if len(view.Menu) == 0 || len(view.QuickActions) == 0 {
		t.Error("menu and quick actions must always be present")
	}
}

func TestDashboardUpcomingFallsBackToLessonList(t *testing.T) {
	t.Parallel()

	day := func(offset int) string {
		return time.Now().AddDate(0, 0, offset).Format("2006-01-02")
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/dashboard/upcoming-lessons", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	mux.HandleFunc("/lessons", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, []models.Lesson{
			{ID: 1, LessonDate: day(-1), StartTime: "09:00"},
			{ID: 2, LessonDate: day(2), StartTime: "11:00"},
			{ID: 3, LessonDate: day(1), StartTime: "14:00"},
			{ID: 4, LessonDate: day(1), StartTime: "09:00"},
		})
	})
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	svc := NewDashboardService(testBackend(t, mux), zerolog.Nop())
	view := svc.View(context.Background(), models.RoleAdmin)

	want := []int64{4, 3, 2}
	if len(view.Upcoming) != len(want) {
		t.Fatalf("upcoming: got %d lessons, want %d", len(view.Upcoming), len(want))
	}
	for i, id := range want {
		if view.Upcoming[i].ID != id {
			t.Errorf("upcoming[%d]: got lesson %d, want %d", i, view.Upcoming[i].ID, id)
		}
	}
}

func TestDashboardSectionsDegradeIndependently(t *testing.T) {
	t.Parallel()

	// Every backend call fails; the page must still come back with the
	// menu, zeroed cards and empty feeds.
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	svc := NewDashboardService(testBackend(t, mux), zerolog.Nop())
	view := svc.View(context.Background(), models.RoleStudent)

	if len(view.StatCards) != 2 {
		t.Fatalf("stat cards: got %d, want 2", len(view.StatCards))
	}
	for _, card := range view.StatCards {
		if card.Value != 0 {
			t.Errorf("card %s: got %d, want 0", card.Label, card.Value)
		}
	}
	if len(view.Upcoming) != 0 || len(view.Alerts) != 0 || len(view.Activities) != 0 {
		t.Error("failing feeds must degrade to empty")
	}
	if len(view.Menu) == 0 {
		t.Error("menu must not depend on the backend")
	}
}
