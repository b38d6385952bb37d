package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/lyra-school/lyra-web/internal/app/models/dto"
	"github.com/lyra-school/lyra-web/internal/backend"
	"github.com/lyra-school/lyra-web/internal/middleware"
	"github.com/lyra-school/lyra-web/internal/pkg/table"
)

// SubjectController handles the subject management page.
type SubjectController struct {
	subjects *backend.SubjectsService
}

// NewSubjectController creates a new SubjectController
func NewSubjectController(subjects *backend.SubjectsService) *SubjectController {
	return &SubjectController{subjects: subjects}
}

// ListSubjects returns the filtered, paginated subject table.
func (sc *SubjectController) ListSubjects(c *gin.Context) {
	subjects, err := sc.subjects.List(c.Request.Context())
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	query, page, size := tableQuery(c)
	respond(c, http.StatusOK, table.Apply(subjects, query, page, size))
}

// GetSubject returns one subject with its course and professors.
func (sc *SubjectController) GetSubject(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	subject, err := sc.subjects.Get(c.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	respond(c, http.StatusOK, subject)
}

// CreateSubject adds a subject to a course.
func (sc *SubjectController) CreateSubject(c *gin.Context) {
	var req dto.CreateSubjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.BindError(c, err)
		return
	}

	subject, err := sc.subjects.Create(c.Request.Context(), req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	respond(c, http.StatusCreated, subject)
}

// UpdateSubject patches a subject.
func (sc *SubjectController) UpdateSubject(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req dto.UpdateSubjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.BindError(c, err)
		return
	}

	subject, err := sc.subjects.Update(c.Request.Context(), id, req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	respond(c, http.StatusOK, subject)
}

// DeleteSubject removes a subject.
func (sc *SubjectController) DeleteSubject(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := sc.subjects.Delete(c.Request.Context(), id); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	respond(c, http.StatusOK, dto.SuccessResponse{Message: "Subject deleted"})
}

// AssignProfessor links a professor to the subject.
func (sc *SubjectController) AssignProfessor(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	professorID, ok := professorIDParam(c)
	if !ok {
		return
	}

	if err := sc.subjects.AssignProfessor(c.Request.Context(), id, professorID); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	respond(c, http.StatusOK, dto.SuccessResponse{Message: "Professor assigned"})
}

// UnassignProfessor removes a professor from the subject.
func (sc *SubjectController) UnassignProfessor(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	professorID, ok := professorIDParam(c)
	if !ok {
		return
	}

	if err := sc.subjects.UnassignProfessor(c.Request.Context(), id, professorID); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	respond(c, http.StatusOK, dto.SuccessResponse{Message: "Professor unassigned"})
}

// professorIDParam parses the :professorId path parameter.
func professorIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("professorId"), 10, 64)
	if err != nil || id <= 0 {
		detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid professor ID")
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(detail))
		return 0, false
	}
	return id, true
}
