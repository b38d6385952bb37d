// Package validation registers the custom form rules used by the binding
// tags on request DTOs.
package validation

import (
	"regexp"
	"strconv"
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Validation rule patterns
var (
	// Phone: optional +, 6 to 15 digits
	PhonePattern = `^\+?\d{6,15}$`

	// Enrollment number: letters and digits, 4 to 20 chars
	EnrollmentPattern = `^[A-Za-z0-9]{4,20}$`

	// Four digit year, e.g. enrollment_year
	YearPattern = `^\d{4}$`

	// Time of day as HH:MM
	TimeOfDayPattern = `^([01]\d|2[0-3]):[0-5]\d$`
)

// CompiledPatterns caches compiled regex patterns
var CompiledPatterns = struct {
	Phone      *regexp.Regexp
	Enrollment *regexp.Regexp
	Year       *regexp.Regexp
	TimeOfDay  *regexp.Regexp
}{
	Phone:      regexp.MustCompile(PhonePattern),
	Enrollment: regexp.MustCompile(EnrollmentPattern),
	Year:       regexp.MustCompile(YearPattern),
	TimeOfDay:  regexp.MustCompile(TimeOfDayPattern),
}

// Register attaches the custom rules to Gin's binding validator. Called
// once at bootstrap; registration errors are programming errors and panic.
func Register() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}

	mustRegister(v, "phone", func(fl validator.FieldLevel) bool {
		return CompiledPatterns.Phone.MatchString(fl.Field().String())
	})

	mustRegister(v, "enrollment", func(fl validator.FieldLevel) bool {
		return CompiledPatterns.Enrollment.MatchString(fl.Field().String())
	})

	mustRegister(v, "year4", func(fl validator.FieldLevel) bool {
		return CompiledPatterns.Year.MatchString(fl.Field().String())
	})

	mustRegister(v, "timeofday", func(fl validator.FieldLevel) bool {
		return CompiledPatterns.TimeOfDay.MatchString(fl.Field().String())
	})

	mustRegister(v, "dateonly", func(fl validator.FieldLevel) bool {
		_, err := time.Parse("2006-01-02", fl.Field().String())
		return err == nil
	})

	// gradevalue: a decimal number. The 0-30 range is a form hint, not a
	// constraint; the backend owns pass/fail semantics.
	mustRegister(v, "gradevalue", func(fl validator.FieldLevel) bool {
		_, err := strconv.ParseFloat(fl.Field().String(), 64)
		return err == nil
	})
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(err)
	}
}
