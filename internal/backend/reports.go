package backend

import (
	"context"
	"net/url"
	"strconv"

	"github.com/lyra-school/lyra-web/internal/app/models"
	"github.com/lyra-school/lyra-web/internal/app/models/dto"
)

// ReportsService wraps the /reports endpoints.
type ReportsService struct {
	client *Client
}

// NewReportsService creates a new ReportsService
func NewReportsService(client *Client) *ReportsService {
	return &ReportsService{client: client}
}

// Grades fetches the grade report rows matching the filter. Zero-valued
// filter fields are omitted from the query.
func (s *ReportsService) Grades(ctx context.Context, filter dto.ReportFilter) (models.GradeReport, error) {
	query := url.Values{}
	if filter.CourseID > 0 {
		query.Set("course_id", strconv.FormatInt(filter.CourseID, 10))
	}
	if filter.SubjectID > 0 {
		query.Set("subject_id", strconv.FormatInt(filter.SubjectID, 10))
	}
	if filter.StudentID > 0 {
		query.Set("student_id", strconv.FormatInt(filter.StudentID, 10))
	}
	if filter.FromDate != "" {
		query.Set("from_date", filter.FromDate)
	}
	if filter.ToDate != "" {
		query.Set("to_date", filter.ToDate)
	}

	var report models.GradeReport
	err := s.client.Get(ctx, "/reports/grades", query, &report)
	return report, err
}
