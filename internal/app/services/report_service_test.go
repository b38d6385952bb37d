package services

import (
	"context"
	"net/http"
	"testing"

	"github.com/rs/zerolog"

	"github.com/lyra-school/lyra-web/internal/app/models"
	"github.com/lyra-school/lyra-web/internal/app/models/dto"
)

func reportMux(t *testing.T) *http.ServeMux {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/reports/grades", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("course_id") != "1" {
			t.Errorf("course_id: got %q, want 1", r.URL.Query().Get("course_id"))
		}
		writeJSON(t, w, models.GradeReport{Grades: []models.ReportRow{
			{StudentName: "Ada", ExamDate: "2025-03-10", Grade: models.NumericGrade(18), Passed: false},
			{StudentName: "Bruno", ExamDate: "2025-03-10", Grade: models.NumericGrade(26), Passed: true},
			{StudentName: "Carla", ExamDate: "2025-03-17", Grade: models.NumericGrade(26), Passed: true},
		}})
	})
	return mux
}

func TestReportBuildComputesChartSeries(t *testing.T) {
	t.Parallel()

	svc := NewReportService(testBackend(t, reportMux(t)), zerolog.Nop())
	view, err := svc.Build(context.Background(), dto.ReportFilter{CourseID: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(view.Rows) != 3 {
		t.Fatalf("rows: got %d, want 3", len(view.Rows))
	}
	if view.Stats.Count != 3 || view.Stats.PassedCount != 2 {
		t.Errorf("stats: got %+v", view.Stats)
	}

	// Distribution buckets become the bar series, ascending by grade.
	if len(view.BarData) != 2 || view.BarData[0].Label != "18" || view.BarData[1].Value != 2 {
		t.Errorf("bar data: got %+v", view.BarData)
	}
	// Per-date means become the line series, ascending by date.
	if len(view.LineData) != 2 || view.LineData[0].Value != 22 || view.LineData[1].Label != "2025-03-17" {
		t.Errorf("line data: got %+v", view.LineData)
	}
	if len(view.PieData) != 2 || view.PieData[0].Value != 2 || view.PieData[1].Value != 1 {
		t.Errorf("pie data: got %+v", view.PieData)
	}
}

func TestReportFiltersNarrowByCourse(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("/courses", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, []models.Course{{ID: 1, Name: "Mathematics"}, {ID: 2, Name: "Physics"}})
	})
	mux.HandleFunc("/courses/1", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, models.Course{
			ID:       1,
			Name:     "Mathematics",
			Subjects: []models.Subject{{ID: 10, Name: "Algebra", CourseID: 1}},
			Students: []models.Student{{ID: 7, CourseID: 1}},
		})
	})

	svc := NewReportService(testBackend(t, mux), zerolog.Nop())

	all, err := svc.Filters(context.Background(), 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(all.Courses) != 2 || all.Subjects != nil || all.Students != nil {
		t.Errorf("unscoped filters: got %+v", all)
	}

	scoped, err := svc.Filters(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(scoped.Subjects) != 1 || len(scoped.Students) != 1 {
		t.Errorf("scoped filters: got %+v", scoped)
	}
}
