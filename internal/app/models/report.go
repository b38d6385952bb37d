package models

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// Grade is a grade value as it arrives on the report wire: the backend may
// send a JSON number, a string, or null. Numeric parsing is deferred so
// non-numeric strings can still take part in pass/fail counting.
type Grade struct {
	Raw     string // textual form of the value, "" when null
	Present bool   // false when the wire value was null (or absent)
}

// UnmarshalJSON accepts numbers, strings and null.
func (g *Grade) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*g = Grade{}
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*g = Grade{Raw: s, Present: true}
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*g = Grade{Raw: n.String(), Present: true}
	return nil
}

// MarshalJSON writes the numeric form when the value parses as a number,
// the original string otherwise, and null when absent.
func (g Grade) MarshalJSON() ([]byte, error) {
	if !g.Present {
		return []byte("null"), nil
	}
	if _, ok := g.Number(); ok {
		return []byte(g.Raw), nil
	}
	return json.Marshal(g.Raw)
}

// Number returns the parsed numeric value, false when the grade is null or
// not a parsable number.
func (g Grade) Number() (float64, bool) {
	if !g.Present {
		return 0, false
	}
	v, err := strconv.ParseFloat(g.Raw, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// NumericGrade builds a present Grade from a float, mainly for tests and
// export round-trips.
func NumericGrade(v float64) Grade {
	return Grade{Raw: strconv.FormatFloat(v, 'f', -1, 64), Present: true}
}

// ReportRow is one row of the grade report aggregate returned by
// GET /reports/grades.
type ReportRow struct {
	ID            int64  `json:"id"`
	StudentID     int64  `json:"student_id"`
	StudentName   string `json:"student_name"`
	CourseID      int64  `json:"course_id,omitempty"`
	CourseName    string `json:"course_name,omitempty"`
	SubjectID     int64  `json:"subject_id,omitempty"`
	SubjectName   string `json:"subject_name,omitempty"`
	ExamSessionID int64  `json:"exam_session_id"`
	ExamDate      string `json:"exam_date,omitempty"` // YYYY-MM-DD
	ExamTime      string `json:"exam_time,omitempty"`
	Grade         Grade  `json:"grade"`
	Passed        bool   `json:"passed"`
	Status        string `json:"status,omitempty"`
}

// GradeReport is the payload of GET /reports/grades: the rows plus whatever
// aggregate block the backend computed. Client-side statistics are always
// recomputed locally from the rows.
type GradeReport struct {
	Grades []ReportRow     `json:"grades"`
	Stats  json.RawMessage `json:"stats,omitempty"`
}
