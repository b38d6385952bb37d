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

// ProfessorController handles the professor management page.
type ProfessorController struct {
	professors *backend.ProfessorsService
}

// NewProfessorController creates a new ProfessorController
func NewProfessorController(professors *backend.ProfessorsService) *ProfessorController {
	return &ProfessorController{professors: professors}
}

// ListProfessors returns the filtered, paginated professor table.
func (pc *ProfessorController) ListProfessors(c *gin.Context) {
	professors, err := pc.professors.List(c.Request.Context())
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	query, page, size := tableQuery(c)
	respond(c, http.StatusOK, table.Apply(professors, query, page, size))
}

// GetProfessor returns one professor with relations.
func (pc *ProfessorController) GetProfessor(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	professor, err := pc.professors.Get(c.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	respond(c, http.StatusOK, professor)
}

// CreateProfessor registers a professor.
func (pc *ProfessorController) CreateProfessor(c *gin.Context) {
	var req dto.CreateProfessorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.BindError(c, err)
		return
	}

	professor, err := pc.professors.Create(c.Request.Context(), req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	respond(c, http.StatusCreated, professor)
}

// UpdateProfessor patches a professor record.
func (pc *ProfessorController) UpdateProfessor(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req dto.UpdateProfessorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.BindError(c, err)
		return
	}

	professor, err := pc.professors.Update(c.Request.Context(), id, req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	respond(c, http.StatusOK, professor)
}

// DeleteProfessor removes a professor record.
func (pc *ProfessorController) DeleteProfessor(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := pc.professors.Delete(c.Request.Context(), id); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	respond(c, http.StatusOK, dto.SuccessResponse{Message: "Professor deleted"})
}

// AssignCourse links the professor to a course.
func (pc *ProfessorController) AssignCourse(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	courseID, ok := courseIDParam(c)
	if !ok {
		return
	}

	if err := pc.professors.AssignCourse(c.Request.Context(), id, courseID); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	respond(c, http.StatusOK, dto.SuccessResponse{Message: "Course assigned"})
}

// UnassignCourse removes the professor from a course.
func (pc *ProfessorController) UnassignCourse(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	courseID, ok := courseIDParam(c)
	if !ok {
		return
	}

	if err := pc.professors.UnassignCourse(c.Request.Context(), id, courseID); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	respond(c, http.StatusOK, dto.SuccessResponse{Message: "Course unassigned"})
}

// courseIDParam parses the :courseId path parameter.
func courseIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("courseId"), 10, 64)
	if err != nil || id <= 0 {
		detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid course ID")
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(detail))
		return 0, false
	}
	return id, true
}
