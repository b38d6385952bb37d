package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lyra-school/lyra-web/internal/app/models/dto"
	"github.com/lyra-school/lyra-web/internal/app/services"
	"github.com/lyra-school/lyra-web/internal/backend"
	"github.com/lyra-school/lyra-web/internal/middleware"
	"github.com/lyra-school/lyra-web/internal/session"
)

// ExamController handles the exams page: the role-dispatched view, exam
// session management and the per-session grade editor.
type ExamController struct {
	examService *services.ExamService
	exams       *backend.ExamsService
}

// NewExamController creates a new ExamController
func NewExamController(examService *services.ExamService, exams *backend.ExamsService) *ExamController {
	return &ExamController{examService: examService, exams: exams}
}

// ExamsPage returns the exams view for the caller's role: students get
// their own results, staff get the session management view.
func (ec *ExamController) ExamsPage(c *gin.Context) {
	role := session.FromContext(c).Role()

	view, err := ec.examService.View(c.Request.Context(), role)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	respond(c, http.StatusOK, view)
}

// CreateSession schedules an exam session.
func (ec *ExamController) CreateSession(c *gin.Context) {
	var req dto.CreateExamSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.BindError(c, err)
		return
	}

	sess, err := ec.exams.CreateSession(c.Request.Context(), req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	respond(c, http.StatusCreated, sess)
}

// UpdateSession patches an exam session.
func (ec *ExamController) UpdateSession(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req dto.UpdateExamSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.BindError(c, err)
		return
	}

	sess, err := ec.exams.UpdateSession(c.Request.Context(), id, req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	respond(c, http.StatusOK, sess)
}

// DeleteSession removes an exam session.
func (ec *ExamController) DeleteSession(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := ec.exams.DeleteSession(c.Request.Context(), id); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	respond(c, http.StatusOK, dto.SuccessResponse{Message: "Exam session deleted"})
}

// GradeEditor returns the per-session editor: the course roster with each
// student's current grade merged in.
func (ec *ExamController) GradeEditor(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	view, err := ec.examService.Editor(c.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	respond(c, http.StatusOK, view)
}

// SaveGrades upserts the submitted editor cells, one backend call each. A
// partial failure reports the failed rows; the saved ones stand.
func (ec *ExamController) SaveGrades(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req dto.SaveGradesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.BindError(c, err)
		return
	}

	result := ec.examService.SaveGrades(c.Request.Context(), id, req)
	if !result.Ok() {
		partialFailure(c, result)
		return
	}
	respond(c, http.StatusOK, result)
}
