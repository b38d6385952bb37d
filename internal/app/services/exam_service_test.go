package services

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"sync"
	"testing"

	"github.com/rs/zerolog"

	"github.com/lyra-school/lyra-web/internal/app/models"
	"github.com/lyra-school/lyra-web/internal/app/models/dto"
	"github.com/lyra-school/lyra-web/internal/backend"
	"github.com/lyra-school/lyra-web/internal/pkg/apperrors"
)

func gradePtr(v float64) *float64 { return &v }

func TestStudentViewDerivesOutcomes(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("/students/me/grades", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, []models.ExamResult{
			{ID: 1, StudentID: 9, Grade: gradePtr(28), Passed: true},
			{ID: 2, StudentID: 9, Grade: gradePtr(12), Passed: false},
			{ID: 3, StudentID: 9},
		})
	})

	svc := NewExamService(testBackend(t, mux), zerolog.Nop())
	view, err := svc.View(context.Background(), models.RoleStudent)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"passed", "failed", "pending"}
	if len(view.MyResults) != len(want) {
		t.Fatalf("results: got %d, want %d", len(view.MyResults), len(want))
	}
	for i, row := range view.MyResults {
		if row.Outcome != want[i] {
			t.Errorf("row %d outcome: got %s, want %s", i, row.Outcome, want[i])
		}
	}
	if view.Sessions != nil {
		t.Error("the student view must not carry the staff section")
	}
}

func TestStaffViewDegradesPendingQueue(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("/exam-sessions", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, []models.ExamSession{{ID: 4, CourseID: 1, SubjectID: 2, ExamDate: "2025-04-01"}})
	})
	mux.HandleFunc("/subjects", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, []models.Subject{{ID: 2, Name: "Algebra", CourseID: 1}})
	})
	mux.HandleFunc("/courses", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, []models.Course{{ID: 1, Name: "Mathematics"}})
	})
	mux.HandleFunc("/exam-results", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	svc := NewExamService(testBackend(t, mux), zerolog.Nop())
	view, err := svc.View(context.Background(), models.RoleProfessor)
	if err != nil {
		t.Fatalf("a failing pending queue must not fail the page: %v", err)
	}
	if len(view.Sessions) != 1 || len(view.Subjects) != 1 || len(view.Courses) != 1 {
		t.Errorf("view sections: got %+v", view)
	}
	if view.Pending != nil {
		t.Error("pending queue must degrade to empty")
	}
}

func TestStaffViewCarriesCallerRole(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("/exam-sessions", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, []models.ExamSession{})
	})
	mux.HandleFunc("/subjects", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, []models.Subject{})
	})
	mux.HandleFunc("/courses", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, []models.Course{})
	})
	mux.HandleFunc("/exam-results", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, []models.ExamResult{})
	})

	svc := NewExamService(testBackend(t, mux), zerolog.Nop())
	for _, role := range []models.Role{models.RoleAdmin, models.RoleProfessor, models.RoleTutor} {
		view, err := svc.View(context.Background(), role)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", role, err)
		}
		if view.Role != role {
			t.Errorf("view role: got %s, want %s", view.Role, role)
		}
	}
}

func TestEditorRejectsEmptyRoster(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("/exam-sessions/4", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, models.ExamSession{ID: 4, CourseID: 1, SubjectID: 2, ExamDate: "2025-04-01"})
	})
	mux.HandleFunc("/courses/1/students", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, []models.Student{})
	})

	svc := NewExamService(testBackend(t, mux), zerolog.Nop())
	_, err := svc.Editor(context.Background(), 4)
	if !errors.Is(err, apperrors.ErrEmptyRoster) {
		t.Fatalf("error: got %v, want ErrEmptyRoster", err)
	}
}

func TestEditorMergesResultsIntoRoster(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("/exam-sessions/4", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, models.ExamSession{ID: 4, CourseID: 1, SubjectID: 2, ExamDate: "2025-04-01"})
	})
	mux.HandleFunc("/courses/1/students", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, []models.Student{{ID: 1, CourseID: 1}, {ID: 2, CourseID: 1}})
	})
	mux.HandleFunc("/exam-results", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("session") != "4" {
			t.Errorf("session query: got %q, want 4", r.URL.Query().Get("session"))
		}
		writeJSON(t, w, []models.ExamResult{
			{ID: 100, ExamSessionID: 4, StudentID: 1, Grade: gradePtr(27.5), Passed: true},
		})
	})

	svc := NewExamService(testBackend(t, mux), zerolog.Nop())
	view, err := svc.Editor(context.Background(), 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(view.Rows) != 2 {
		t.Fatalf("rows: got %d, want the whole roster", len(view.Rows))
	}
	graded := view.Rows[0]
	if graded.Grade != "27.5" || graded.Outcome != "passed" || graded.ResultID != 100 {
		t.Errorf("graded row: got %+v", graded)
	}
	blank := view.Rows[1]
	if blank.Grade != "" || blank.Outcome != "" || blank.ResultID != 0 {
		t.Errorf("ungraded row must stay blank: got %+v", blank)
	}
}

func TestSaveGradesUpsertsBestEffort(t *testing.T) {
	t.Parallel()

	var mu sync.Mutex
	var patched, posted []int64

	mux := http.NewServeMux()
	mux.HandleFunc("/exam-results", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			writeJSON(t, w, []models.ExamResult{
				{ID: 100, ExamSessionID: 4, StudentID: 1, Grade: gradePtr(20), Passed: true},
			})
		case http.MethodPost:
			var input backend.UpsertResultInput
			json.NewDecoder(r.Body).Decode(&input)
			if input.StudentID == 2 && input.Grade != nil {
				t.Error("an empty editor cell must clear the grade to null")
			}
			mu.Lock()
			posted = append(posted, input.StudentID)
			mu.Unlock()
			w.WriteHeader(http.StatusCreated)
			writeJSON(t, w, models.ExamResult{ID: 200, ExamSessionID: 4, StudentID: input.StudentID})
		}
	})
	mux.HandleFunc("/exam-results/100", func(w http.ResponseWriter, r *http.Request) {
		var input backend.UpsertResultInput
		json.NewDecoder(r.Body).Decode(&input)
		if input.Grade == nil || *input.Grade != 30 {
			t.Errorf("patched grade: got %v, want 30", input.Grade)
		}
		mu.Lock()
		patched = append(patched, input.StudentID)
		mu.Unlock()
		writeJSON(t, w, models.ExamResult{ID: 100, ExamSessionID: 4, StudentID: input.StudentID, Grade: input.Grade})
	})

	svc := NewExamService(testBackend(t, mux), zerolog.Nop())
	result := svc.SaveGrades(context.Background(), 4, dto.SaveGradesRequest{
		Entries: []dto.GradeEntry{
			{StudentID: 1, Grade: "30"},   // existing result, patched
			{StudentID: 2, Grade: ""},     // new result, cleared grade
			{StudentID: 3, Grade: "oops"}, // unparsable, fails locally
		},
	})

	if result.Attempted != 3 || result.Succeeded != 2 {
		t.Errorf("result: got %d/%d, want 2 of 3 succeeded", result.Succeeded, result.Attempted)
	}
	if len(result.Failed) != 1 || result.Failed[0].StudentID != 3 {
		t.Fatalf("failed: got %+v, want the entry for student 3", result.Failed)
	}
	if len(patched) != 1 || patched[0] != 1 {
		t.Errorf("patched: got %v, want [1]", patched)
	}
	if len(posted) != 1 || posted[0] != 2 {
		t.Errorf("posted: got %v, want [2]", posted)
	}
}
