package export

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"

	"github.com/lyra-school/lyra-web/internal/app/models"
	"github.com/lyra-school/lyra-web/internal/pkg/stats"
)

// GradeReportPDF builds the printable report: title, statistics block,
// then the row table. Long row sets flow across pages.
func GradeReportPDF(rows []models.ReportRow, s stats.GradeStats) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, "Grade Report", "", 1, "L", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(0, 7, "Statistics", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)

	statLine := func(label string, value string) {
		pdf.CellFormat(45, 6, label, "", 0, "L", false, 0, "")
		pdf.CellFormat(0, 6, value, "", 1, "L", false, 0, "")
	}
	statLine("Grade count", fmt.Sprintf("%d", s.Count))
	statLine("Average", floatText(s.Average))
	statLine("Variance", floatText(s.Variance))
	statLine("Min", floatText(s.Min))
	statLine("Max", floatText(s.Max))
	statLine("Pass rate", percentText(s.PassRate))
	statLine("Passed / Failed", fmt.Sprintf("%d / %d", s.PassedCount, s.FailedCount))
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 10)
	widths := []float64{50, 35, 35, 25, 20, 25}
	headers := []string{"Student", "Course", "Subject", "Date", "Grade", "Outcome"}
	for i, h := range headers {
		pdf.CellFormat(widths[i], 7, h, "1", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	for _, r := range rows {
		cells := []string{
			r.StudentName,
			r.CourseName,
			r.SubjectName,
			r.ExamDate,
			gradeCell(r.Grade),
			outcomeCell(r),
		}
		for i, cell := range cells {
			pdf.CellFormat(widths[i], 6, cell, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to serialize pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func floatText(v *float64) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%.2f", *v)
}

func percentText(v *float64) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%.1f%%", *v*100)
}
