package dto

import "time"

// APIResponse is the standard success envelope for page and action
// endpoints.
type APIResponse struct {
	Data      interface{}  `json:"data,omitempty"`
	Error     *ErrorDetail `json:"error,omitempty"`
	Timestamp time.Time    `json:"timestamp"`
}

// SuccessResponse represents a plain acknowledgment with a message
type SuccessResponse struct {
	Message string `json:"message"`
}

// PaginationInfo describes the page window of a table response.
type PaginationInfo struct {
	CurrentPage int `json:"currentPage"`
	TotalPages  int `json:"totalPages"`
	PageSize    int `json:"pageSize"`
	TotalItems  int `json:"totalItems"`
}

// BatchItemError reports a single failed item of a best-effort batch write.
type BatchItemError struct {
	StudentID int64  `json:"student_id"`
	Message   string `json:"message"`
}

// BatchResult summarizes a best-effort fan-out: how many calls succeeded
// and which ones failed. Successes are never rolled back.
type BatchResult struct {
	Attempted int              `json:"attempted"`
	Succeeded int              `json:"succeeded"`
	Failed    []BatchItemError `json:"failed,omitempty"`
}

// Ok reports whether every item of the batch went through.
func (r BatchResult) Ok() bool {
	return len(r.Failed) == 0
}
