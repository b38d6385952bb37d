package models

import (
	"encoding/json"
	"testing"
)

func TestGradeUnmarshalAcceptsAllWireForms(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    Grade
		numeric bool
	}{
		{"number", `27.5`, Grade{Raw: "27.5", Present: true}, true},
		{"integer", `18`, Grade{Raw: "18", Present: true}, true},
		{"numeric string", `"24"`, Grade{Raw: "24", Present: true}, true},
		{"textual string", `"withdrawn"`, Grade{Raw: "withdrawn", Present: true}, false},
		{"null", `null`, Grade{}, false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var g Grade
			if err := json.Unmarshal([]byte(tt.input), &g); err != nil {
				t.Fatalf("unmarshal %s: %v", tt.input, err)
			}
			if g != tt.want {
				t.Errorf("got %+v, want %+v", g, tt.want)
			}
			if _, ok := g.Number(); ok != tt.numeric {
				t.Errorf("Number() ok: got %v, want %v", ok, tt.numeric)
			}
		})
	}
}

func TestGradeMarshal(t *testing.T) {
	t.Parallel()

	tests := []struct {
		grade Grade
		want  string
	}{
		{NumericGrade(27.5), `27.5`},
		{Grade{Raw: "absent", Present: true}, `"absent"`},
		{Grade{}, `null`},
	}

	for _, tt := range tests {
		data, err := json.Marshal(tt.grade)
		if err != nil {
			t.Fatalf("marshal %+v: %v", tt.grade, err)
		}
		if string(data) != tt.want {
			t.Errorf("got %s, want %s", data, tt.want)
		}
	}
}

func TestExamResultOutcome(t *testing.T) {
	t.Parallel()

	g := 24.0
	tests := []struct {
		name   string
		result ExamResult
		want   string
	}{
		{"no grade", ExamResult{}, "pending"},
		{"passed", ExamResult{Grade: &g, Passed: true}, "passed"},
		{"failed", ExamResult{Grade: &g, Passed: false}, "failed"},
	}

	for _, tt := range tests {
		if got := tt.result.Outcome(); got != tt.want {
			t.Errorf("%s: got %s, want %s", tt.name, got, tt.want)
		}
	}
}

func TestUserFullName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		user User
		want string
	}{
		{User{FirstName: "Ada", LastName: "Rossi"}, "Ada Rossi"},
		{User{FirstName: "Ada"}, "Ada"},
		{User{LastName: "Rossi"}, "Rossi"},
		{User{Email: "a@b.c"}, "a@b.c"},
	}

	for _, tt := range tests {
		if got := tt.user.FullName(); got != tt.want {
			t.Errorf("FullName(%+v): got %q, want %q", tt.user, got, tt.want)
		}
	}
}
