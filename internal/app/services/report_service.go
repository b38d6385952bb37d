package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/lyra-school/lyra-web/internal/app/models/dto"
	"github.com/lyra-school/lyra-web/internal/backend"
	"github.com/lyra-school/lyra-web/internal/export"
	"github.com/lyra-school/lyra-web/internal/pkg/stats"
)

// ReportService composes the grade report: dependent filter options, the
// statistics view, and the two export formats.
type ReportService struct {
	backend *backend.Services
	logger  zerolog.Logger
}

// NewReportService creates a new ReportService
func NewReportService(b *backend.Services, logger zerolog.Logger) *ReportService {
	return &ReportService{backend: b, logger: logger}
}

// Filters builds the filter option lists. Choosing a course narrows the
// subject and student lists to that course.
func (s *ReportService) Filters(ctx context.Context, courseID int64) (dto.ReportFiltersView, error) {
	courses, err := s.backend.Courses.List(ctx)
	if err != nil {
		return dto.ReportFiltersView{}, err
	}

	view := dto.ReportFiltersView{Courses: courses}
	if courseID == 0 {
		return view, nil
	}

	course, err := s.backend.Courses.Get(ctx, courseID)
	if err != nil {
		return dto.ReportFiltersView{}, err
	}
	view.Subjects = course.Subjects
	view.Students = course.Students
	return view, nil
}

// Build fetches the filtered rows and computes the statistics and
// chart-ready series locally.
func (s *ReportService) Build(ctx context.Context, filter dto.ReportFilter) (dto.ReportView, error) {
	report, err := s.backend.Reports.Grades(ctx, filter)
	if err != nil {
		return dto.ReportView{}, err
	}

	gradeStats := stats.Compute(report.Grades)

	view := dto.ReportView{
		Rows:  report.Grades,
		Stats: gradeStats,
	}

	for _, b := range gradeStats.Distribution {
		view.BarData = append(view.BarData, dto.ChartPoint{Label: b.Grade, Value: float64(b.Count)})
	}
	for _, p := range gradeStats.Trend {
		view.LineData = append(view.LineData, dto.ChartPoint{Label: p.Date, Value: p.Average})
	}
	view.PieData = []dto.ChartPoint{
		{Label: "Passed", Value: float64(gradeStats.PassedCount)},
		{Label: "Failed", Value: float64(gradeStats.FailedCount)},
	}
	return view, nil
}

// ExportXLSX renders the filtered report as a two-sheet workbook.
func (s *ReportService) ExportXLSX(ctx context.Context, filter dto.ReportFilter) ([]byte, error) {
	report, err := s.backend.Reports.Grades(ctx, filter)
	if err != nil {
		return nil, err
	}
	return export.GradeReportXLSX(report.Grades, stats.Compute(report.Grades))
}

// ExportPDF renders the filtered report as a printable PDF.
func (s *ReportService) ExportPDF(ctx context.Context, filter dto.ReportFilter) ([]byte, error) {
	report, err := s.backend.Reports.Grades(ctx, filter)
	if err != nil {
		return nil, err
	}
	return export.GradeReportPDF(report.Grades, stats.Compute(report.Grades))
}
