package export

import (
	"bytes"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/lyra-school/lyra-web/internal/app/models"
	"github.com/lyra-school/lyra-web/internal/pkg/stats"
)

func sampleReport() ([]models.ReportRow, stats.GradeStats) {
	rows := []models.ReportRow{
		{StudentName: "Ada Rossi", CourseName: "Mathematics", SubjectName: "Algebra",
			ExamDate: "2025-03-10", Grade: models.NumericGrade(28), Passed: true},
		{StudentName: "Bruno Bianchi", CourseName: "Mathematics", SubjectName: "Algebra",
			ExamDate: "2025-03-10", Grade: models.NumericGrade(14), Passed: false},
		{StudentName: "Carla Verdi", CourseName: "Mathematics", SubjectName: "Algebra",
			ExamDate: "2025-03-17", Grade: models.Grade{}, Passed: false},
	}
	return rows, stats.Compute(rows)
}

func TestGradeReportXLSX(t *testing.T) {
	t.Parallel()

	rows, s := sampleReport()
	data, err := GradeReportXLSX(rows, s)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("output is not a readable workbook: %v", err)
	}
	defer f.Close()

	for _, sheet := range []string{"Grades", "Statistics"} {
		if idx, err := f.GetSheetIndex(sheet); err != nil || idx < 0 {
			t.Errorf("missing sheet %q", sheet)
		}
	}

	grades, err := f.GetRows("Grades")
	if err != nil {
		t.Fatalf("read Grades sheet: %v", err)
	}
	// Header plus one row per report row.
	if len(grades) != len(rows)+1 {
		t.Errorf("Grades rows: got %d, want %d", len(grades), len(rows)+1)
	}
}

func TestGradeReportPDF(t *testing.T) {
	t.Parallel()

	rows, s := sampleReport()
	data, err := GradeReportPDF(rows, s)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Error("output does not start with the PDF magic bytes")
	}
}

func TestExportsHandleEmptyReport(t *testing.T) {
	t.Parallel()

	empty := stats.Compute(nil)
	if _, err := GradeReportXLSX(nil, empty); err != nil {
		t.Errorf("empty workbook export failed: %v", err)
	}
	if _, err := GradeReportPDF(nil, empty); err != nil {
		t.Errorf("empty PDF export failed: %v", err)
	}
}
