// Package stats computes the descriptive statistics of a grade report
// row set. All aggregates are derived locally from the raw rows; the
// backend's own aggregate block is ignored.
package stats

import (
	"sort"

	"github.com/lyra-school/lyra-web/internal/app/models"
)

// DistributionBucket counts one distinct numeric grade value. Buckets are
// keyed by the exact value, not by ranges.
type DistributionBucket struct {
	Grade string  `json:"grade"`
	Count int     `json:"count"`
	value float64 // numeric form, for ordering
}

// TrendPoint is the mean grade of one exam date.
type TrendPoint struct {
	Date    string  `json:"date"` // YYYY-MM-DD
	Average float64 `json:"average"`
}

// GradeStats is the full statistics block of the reports page.
//
// Count and the numeric aggregates cover only rows whose grade parses as a
// number. PassedCount and FailedCount cover every row with a non-null
// grade, numeric or not, using the backend-supplied passed flag; the two
// populations differ on purpose and PassRate keeps the numeric Count as
// its denominator.
type GradeStats struct {
	Count        int                  `json:"count"`
	Average      *float64             `json:"average"`
	Variance     *float64             `json:"variance"`
	Min          *float64             `json:"min"`
	Max          *float64             `json:"max"`
	PassedCount  int                  `json:"passedCount"`
	FailedCount  int                  `json:"failedCount"`
	PassRate     *float64             `json:"passRate"`
	Distribution []DistributionBucket `json:"distribution"`
	Trend        []TrendPoint         `json:"trend"`
}

// Compute derives the statistics block from report rows.
func Compute(rows []models.ReportRow) GradeStats {
	var numeric []float64
	for _, r := range rows {
		if v, ok := r.Grade.Number(); ok {
			numeric = append(numeric, v)
		}
	}

	s := GradeStats{
		Count:        len(numeric),
		Distribution: []DistributionBucket{},
		Trend:        []TrendPoint{},
	}

	if s.Count > 0 {
		sum := 0.0
		min, max := numeric[0], numeric[0]
		for _, v := range numeric {
			sum += v
			if v < min {
				min = v
			}
			if v > max {
				max = v
			}
		}
		avg := sum / float64(s.Count)
		s.Average = &avg
		s.Min = &min
		s.Max = &max

		// Population variance: squared deviations over count, not
		// count-1. Left null for a single grade.
		if s.Count > 1 {
			sq := 0.0
			for _, v := range numeric {
				d := v - avg
				sq += d * d
			}
			variance := sq / float64(s.Count)
			s.Variance = &variance
		}
	}

	// Pass/fail counts span every row with a non-null grade, including
	// grades that did not parse as numbers.
	for _, r := range rows {
		if !r.Grade.Present {
			continue
		}
		if r.Passed {
			s.PassedCount++
		} else {
			s.FailedCount++
		}
	}

	if s.Count > 0 {
		rate := float64(s.PassedCount) / float64(s.Count)
		s.PassRate = &rate
	}

	s.Distribution = distribution(rows)
	s.Trend = trend(rows)
	return s
}

// distribution buckets numeric grades by exact value, ascending.
func distribution(rows []models.ReportRow) []DistributionBucket {
	counts := map[string]*DistributionBucket{}
	for _, r := range rows {
		v, ok := r.Grade.Number()
		if !ok {
			continue
		}
		key := models.NumericGrade(v).Raw
		b, exists := counts[key]
		if !exists {
			b = &DistributionBucket{Grade: key, value: v}
			counts[key] = b
		}
		b.Count++
	}

	out := make([]DistributionBucket, 0, len(counts))
	for _, b := range counts {
		out = append(out, *b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].value < out[j].value })
	return out
}

// trend averages numeric grades per exam date, ascending by date. Dates are
// ISO strings, so lexical order is chronological order.
func trend(rows []models.ReportRow) []TrendPoint {
	type acc struct {
		sum   float64
		count int
	}
	byDate := map[string]*acc{}
	for _, r := range rows {
		if r.ExamDate == "" {
			continue
		}
		v, ok := r.Grade.Number()
		if !ok {
			continue
		}
		a, exists := byDate[r.ExamDate]
		if !exists {
			a = &acc{}
			byDate[r.ExamDate] = a
		}
		a.sum += v
		a.count++
	}

	out := make([]TrendPoint, 0, len(byDate))
	for date, a := range byDate {
		out = append(out, TrendPoint{Date: date, Average: a.sum / float64(a.count)})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}
