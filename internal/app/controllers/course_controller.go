package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lyra-school/lyra-web/internal/app/models/dto"
	"github.com/lyra-school/lyra-web/internal/backend"
	"github.com/lyra-school/lyra-web/internal/middleware"
	"github.com/lyra-school/lyra-web/internal/pkg/table"
)

// CourseController handles the course management page.
type CourseController struct {
	courses *backend.CoursesService
}

// NewCourseController creates a new CourseController
func NewCourseController(courses *backend.CoursesService) *CourseController {
	return &CourseController{courses: courses}
}

// ListCourses returns the filtered, paginated course table.
func (cc *CourseController) ListCourses(c *gin.Context) {
	courses, err := cc.courses.List(c.Request.Context())
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	query, page, size := tableQuery(c)
	respond(c, http.StatusOK, table.Apply(courses, query, page, size))
}

// GetCourse returns one course with its subjects and students.
func (cc *CourseController) GetCourse(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	course, err := cc.courses.Get(c.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	respond(c, http.StatusOK, course)
}

// CreateCourse adds a course.
func (cc *CourseController) CreateCourse(c *gin.Context) {
	var req dto.CreateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.BindError(c, err)
		return
	}

	course, err := cc.courses.Create(c.Request.Context(), req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	respond(c, http.StatusCreated, course)
}

// UpdateCourse patches a course.
func (cc *CourseController) UpdateCourse(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req dto.UpdateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.BindError(c, err)
		return
	}

	course, err := cc.courses.Update(c.Request.Context(), id, req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	respond(c, http.StatusOK, course)
}

// DeleteCourse removes a course.
func (cc *CourseController) DeleteCourse(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := cc.courses.Delete(c.Request.Context(), id); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	respond(c, http.StatusOK, dto.SuccessResponse{Message: "Course deleted"})
}

// ListCourseStudents returns the roster of a course.
func (cc *CourseController) ListCourseStudents(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	students, err := cc.courses.Students(c.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	respond(c, http.StatusOK, students)
}
