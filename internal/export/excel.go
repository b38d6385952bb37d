// Package export renders the grade report for download: a two-sheet
// spreadsheet and a tabular PDF.
package export

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/lyra-school/lyra-web/internal/app/models"
	"github.com/lyra-school/lyra-web/internal/pkg/stats"
)

// gradeCell renders a grade for export: the raw value, "" when pending.
func gradeCell(g models.Grade) string {
	if !g.Present {
		return ""
	}
	return g.Raw
}

func outcomeCell(r models.ReportRow) string {
	if !r.Grade.Present {
		return "Pending"
	}
	if r.Passed {
		return "Passed"
	}
	return "Failed"
}

// GradeReportXLSX builds the spreadsheet: a "Grades" sheet with the raw
// rows and a "Statistics" sheet with the aggregate block and the grade
// distribution.
func GradeReportXLSX(rows []models.ReportRow, s stats.GradeStats) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	const gradesSheet = "Grades"
	if err := f.SetSheetName("Sheet1", gradesSheet); err != nil {
		return nil, fmt.Errorf("failed to name grades sheet: %w", err)
	}

	header := []interface{}{"Student", "Course", "Subject", "Date", "Grade", "Outcome"}
	if err := f.SetSheetRow(gradesSheet, "A1", &header); err != nil {
		return nil, fmt.Errorf("failed to write header: %w", err)
	}

	for i, r := range rows {
		row := []interface{}{
			r.StudentName,
			r.CourseName,
			r.SubjectName,
			r.ExamDate,
			gradeCell(r.Grade),
			outcomeCell(r),
		}
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(gradesSheet, cell, &row); err != nil {
			return nil, fmt.Errorf("failed to write row %d: %w", i+1, err)
		}
	}

	const statsSheet = "Statistics"
	if _, err := f.NewSheet(statsSheet); err != nil {
		return nil, fmt.Errorf("failed to create statistics sheet: %w", err)
	}

	statRows := [][]interface{}{
		{"Grade count", s.Count},
		{"Average", floatCell(s.Average)},
		{"Variance", floatCell(s.Variance)},
		{"Min", floatCell(s.Min)},
		{"Max", floatCell(s.Max)},
		{"Pass rate (%)", percentCell(s.PassRate)},
		{"Passed", s.PassedCount},
		{"Failed", s.FailedCount},
		{},
		{"Grade distribution"},
		{"Grade", "Count"},
	}
	for _, b := range s.Distribution {
		statRows = append(statRows, []interface{}{b.Grade, b.Count})
	}

	for i := range statRows {
		cell := fmt.Sprintf("A%d", i+1)
		if err := f.SetSheetRow(statsSheet, cell, &statRows[i]); err != nil {
			return nil, fmt.Errorf("failed to write statistics row %d: %w", i+1, err)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to serialize workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// floatCell renders an optional statistic, blank when absent.
func floatCell(v *float64) interface{} {
	if v == nil {
		return ""
	}
	return *v
}

// percentCell renders an optional rate as a percentage, blank when absent.
func percentCell(v *float64) interface{} {
	if v == nil {
		return ""
	}
	return *v * 100
}
