package models

// DashboardAlert is one alert item from GET /dashboard/alerts. Alert
// computation belongs to the backend; the client never derives alerts from
// counts it happens to have in hand.
type DashboardAlert struct {
	ID       int64  `json:"id"`
	Severity string `json:"severity"` // info, warning, critical
	Message  string `json:"message"`
	Link     string `json:"link,omitempty"`
}

// DashboardActivity is one entry of GET /dashboard/activities.
type DashboardActivity struct {
	ID        int64  `json:"id"`
	Kind      string `json:"kind"` // e.g. exam_result, attendance, lesson
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

// DashboardStats is the aggregate block of GET /dashboard/stats.
type DashboardStats struct {
	Students   int `json:"students"`
	Professors int `json:"professors"`
	Courses    int `json:"courses"`
	Subjects   int `json:"subjects"`
	Lessons    int `json:"lessons"`
	Users      int `json:"users"`
}
