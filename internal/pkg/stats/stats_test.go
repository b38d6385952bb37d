package stats

import (
	"math"
	"testing"

	"github.com/lyra-school/lyra-web/internal/app/models"
)

func row(grade models.Grade, passed bool, date string) models.ReportRow {
	return models.ReportRow{Grade: grade, Passed: passed, ExamDate: date}
}

func numRow(v float64, passed bool, date string) models.ReportRow {
	return row(models.NumericGrade(v), passed, date)
}

func approx(t *testing.T, name string, got *float64, want float64) {
	t.Helper()
	if got == nil {
		t.Fatalf("%s: got nil, want %v", name, want)
	}
	if math.Abs(*got-want) > 1e-9 {
		t.Errorf("%s: got %v, want %v", name, *got, want)
	}
}

func TestComputeEmpty(t *testing.T) {
	t.Parallel()

	s := Compute(nil)
	if s.Count != 0 {
		t.Errorf("count: got %d, want 0", s.Count)
	}
	if s.Average != nil || s.Variance != nil || s.Min != nil || s.Max != nil || s.PassRate != nil {
		t.Error("aggregates of an empty row set should be nil")
	}
	if len(s.Distribution) != 0 || len(s.Trend) != 0 {
		t.Error("distribution and trend of an empty row set should be empty")
	}
}

func TestComputeSingleGrade(t *testing.T) {
	t.Parallel()

	s := Compute([]models.ReportRow{numRow(27, true, "2025-03-10")})
	if s.Count != 1 {
		t.Fatalf("count: got %d, want 1", s.Count)
	}
	approx(t, "average", s.Average, 27)
	approx(t, "min", s.Min, 27)
	approx(t, "max", s.Max, 27)
	if s.Variance != nil {
		t.Errorf("variance of a single grade should be nil, got %v", *s.Variance)
	}
	approx(t, "passRate", s.PassRate, 1)
}

func TestComputeAggregates(t *testing.T) {
	t.Parallel()

	rows := []models.ReportRow{
		numRow(18, true, "2025-03-10"),
		numRow(22, true, "2025-03-10"),
		numRow(30, true, "2025-03-17"),
	}
	s := Compute(rows)

	if s.Count != 3 {
		t.Fatalf("count: got %d, want 3", s.Count)
	}
	approx(t, "average", s.Average, 70.0/3)
	approx(t, "min", s.Min, 18)
	approx(t, "max", s.Max, 30)

	// Population variance, denominator 3 rather than 2.
	mean := 70.0 / 3
	want := ((18-mean)*(18-mean) + (22-mean)*(22-mean) + (30-mean)*(30-mean)) / 3
	approx(t, "variance", s.Variance, want)
}

func TestComputePassCountsIncludeNonNumericGrades(t *testing.T) {
	t.Parallel()

	// A non-numeric grade is excluded from the numeric aggregates but its
	// passed flag still counts, and PassRate keeps the numeric count as
	// denominator.
	rows := []models.ReportRow{
		numRow(25, true, "2025-03-10"),
		numRow(12, false, "2025-03-10"),
		row(models.Grade{Raw: "withdrawn", Present: true}, false, "2025-03-10"),
		row(models.Grade{}, false, "2025-03-10"), // null grade, ignored everywhere
	}
	s := Compute(rows)

	if s.Count != 2 {
		t.Fatalf("count: got %d, want 2", s.Count)
	}
	if s.PassedCount != 1 {
		t.Errorf("passedCount: got %d, want 1", s.PassedCount)
	}
	if s.FailedCount != 2 {
		t.Errorf("failedCount: got %d, want 2", s.FailedCount)
	}
	approx(t, "passRate", s.PassRate, 0.5)
}

func TestComputePassRateNilWithoutNumericGrades(t *testing.T) {
	t.Parallel()

	rows := []models.ReportRow{
		row(models.Grade{Raw: "absent", Present: true}, false, "2025-03-10"),
	}
	s := Compute(rows)

	if s.Count != 0 {
		t.Fatalf("count: got %d, want 0", s.Count)
	}
	if s.FailedCount != 1 {
		t.Errorf("failedCount: got %d, want 1", s.FailedCount)
	}
	if s.PassRate != nil {
		t.Errorf("passRate without numeric grades should be nil, got %v", *s.PassRate)
	}
}

func TestDistributionBucketsByExactValueAscending(t *testing.T) {
	t.Parallel()

	rows := []models.ReportRow{
		numRow(24, true, ""),
		numRow(18, false, ""),
		numRow(18, false, ""),
		numRow(28.5, true, ""),
		row(models.Grade{Raw: "absent", Present: true}, false, ""),
	}
	s := Compute(rows)

	want := []DistributionBucket{
		{Grade: "18", Count: 2},
		{Grade: "24", Count: 1},
		{Grade: "28.5", Count: 1},
	}
	if len(s.Distribution) != len(want) {
		t.Fatalf("distribution length: got %d, want %d", len(s.Distribution), len(want))
	}
	for i, b := range s.Distribution {
		if b.Grade != want[i].Grade || b.Count != want[i].Count {
			t.Errorf("bucket %d: got {%s %d}, want {%s %d}", i, b.Grade, b.Count, want[i].Grade, want[i].Count)
		}
	}
}

func TestTrendAveragesPerDateAscending(t *testing.T) {
	t.Parallel()

	rows := []models.ReportRow{
		numRow(26, true, "2025-03-17"),
		numRow(18, false, "2025-03-10"),
		numRow(26, true, "2025-03-10"),
		row(models.Grade{}, false, "2025-03-17"), // null grade does not drag the mean
		numRow(30, true, ""),                     // dateless rows are skipped
	}
	s := Compute(rows)

	want := []TrendPoint{
		{Date: "2025-03-10", Average: 22},
		{Date: "2025-03-17", Average: 26},
	}
	if len(s.Trend) != len(want) {
		t.Fatalf("trend length: got %d, want %d", len(s.Trend), len(want))
	}
	for i, p := range s.Trend {
		if p.Date != want[i].Date || math.Abs(p.Average-want[i].Average) > 1e-9 {
			t.Errorf("point %d: got {%s %v}, want {%s %v}", i, p.Date, p.Average, want[i].Date, want[i].Average)
		}
	}
}
