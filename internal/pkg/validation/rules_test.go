package validation

import (
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

func engine(t *testing.T) *validator.Validate {
	t.Helper()
	Register()
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		t.Fatal("gin binding engine is not the expected validator")
	}
	return v
}

func TestCustomRules(t *testing.T) {
	v := engine(t)

	tests := []struct {
		tag   string
		value string
		valid bool
	}{
		{"phone", "+391234567890", true},
		{"phone", "123456", true},
		{"phone", "12-34", false},
		{"phone", "12345", false},

		{"enrollment", "MAT2021A", true},
		{"enrollment", "ab1", false},
		{"enrollment", "has space", false},

		{"year4", "2024", true},
		{"year4", "24", false},
		{"year4", "20245", false},

		{"timeofday", "09:30", true},
		{"timeofday", "23:59", true},
		{"timeofday", "24:00", false},
		{"timeofday", "9:30", false},

		{"dateonly", "2025-03-10", true},
		{"dateonly", "2025-3-10", false},
		{"dateonly", "10/03/2025", false},

		{"gradevalue", "27.5", true},
		{"gradevalue", "30", true},
		{"gradevalue", "excellent", false},
	}

	for _, tt := range tests {
		err := v.Var(tt.value, tt.tag)
		if (err == nil) != tt.valid {
			t.Errorf("%s(%q): got err=%v, want valid=%v", tt.tag, tt.value, err, tt.valid)
		}
	}
}

func TestRegisterIsIdempotent(t *testing.T) {
	// Bootstrap and tests may both call Register; re-registering the same
	// tags must not panic.
	Register()
	Register()
}
