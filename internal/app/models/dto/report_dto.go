package dto

import (
	"github.com/lyra-school/lyra-web/internal/app/models"
	"github.com/lyra-school/lyra-web/internal/pkg/stats"
)

// ReportFilter is the reports filter form, bound from query parameters.
type ReportFilter struct {
	CourseID  int64  `form:"course_id"`
	SubjectID int64  `form:"subject_id"`
	StudentID int64  `form:"student_id"`
	FromDate  string `form:"from_date" binding:"omitempty,dateonly"`
	ToDate    string `form:"to_date" binding:"omitempty,dateonly"`
}

// ChartPoint is one point of a chart-ready series.
type ChartPoint struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// ReportView is the reports page payload: raw rows, the locally computed
// statistics, and chart-ready series for distribution, trend and pass/fail.
type ReportView struct {
	Rows     []models.ReportRow `json:"rows"`
	Stats    stats.GradeStats   `json:"stats"`
	BarData  []ChartPoint       `json:"bar_data"`
	LineData []ChartPoint       `json:"line_data"`
	PieData  []ChartPoint       `json:"pie_data"`
}

// ReportFiltersView carries the dependent filter option lists: subjects and
// students narrow once a course is chosen.
type ReportFiltersView struct {
	Courses  []models.Course  `json:"courses"`
	Subjects []models.Subject `json:"subjects,omitempty"`
	Students []models.Student `json:"students,omitempty"`
}
