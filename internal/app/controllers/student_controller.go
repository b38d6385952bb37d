package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lyra-school/lyra-web/internal/app/models/dto"
	"github.com/lyra-school/lyra-web/internal/backend"
	"github.com/lyra-school/lyra-web/internal/middleware"
	"github.com/lyra-school/lyra-web/internal/pkg/table"
)

// StudentController handles the student management page.
type StudentController struct {
	students *backend.StudentsService
}

// NewStudentController creates a new StudentController
func NewStudentController(students *backend.StudentsService) *StudentController {
	return &StudentController{students: students}
}

// ListStudents returns the filtered, paginated student table.
func (sc *StudentController) ListStudents(c *gin.Context) {
	students, err := sc.students.List(c.Request.Context())
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	query, page, size := tableQuery(c)
	respond(c, http.StatusOK, table.Apply(students, query, page, size))
}

// GetStudent returns one student with relations.
func (sc *StudentController) GetStudent(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	student, err := sc.students.Get(c.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	respond(c, http.StatusOK, student)
}

// CreateStudent enrolls a student into a course.
func (sc *StudentController) CreateStudent(c *gin.Context) {
	var req dto.CreateStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.BindError(c, err)
		return
	}

	student, err := sc.students.Create(c.Request.Context(), req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	respond(c, http.StatusCreated, student)
}

// UpdateStudent patches a student record.
func (sc *StudentController) UpdateStudent(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req dto.UpdateStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.BindError(c, err)
		return
	}

	student, err := sc.students.Update(c.Request.Context(), id, req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	respond(c, http.StatusOK, student)
}

// DeleteStudent removes a student record.
func (sc *StudentController) DeleteStudent(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := sc.students.Delete(c.Request.Context(), id); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	respond(c, http.StatusOK, dto.SuccessResponse{Message: "Student deleted"})
}
