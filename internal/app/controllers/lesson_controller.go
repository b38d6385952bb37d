package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lyra-school/lyra-web/internal/app/models"
	"github.com/lyra-school/lyra-web/internal/app/models/dto"
	"github.com/lyra-school/lyra-web/internal/backend"
	"github.com/lyra-school/lyra-web/internal/middleware"
	"github.com/lyra-school/lyra-web/internal/pkg/table"
	"github.com/lyra-school/lyra-web/internal/session"
)

// LessonController handles the lesson schedule page. Professors see only
// their own lessons; every other role sees the full schedule.
type LessonController struct {
	lessons    *backend.LessonsService
	professors *backend.ProfessorsService
}

// NewLessonController creates a new LessonController
func NewLessonController(lessons *backend.LessonsService, professors *backend.ProfessorsService) *LessonController {
	return &LessonController{lessons: lessons, professors: professors}
}

// ListLessons returns the filtered, paginated lesson table for the
// caller's role.
func (lc *LessonController) ListLessons(c *gin.Context) {
	var (
		lessons []models.Lesson
		err     error
	)
	if session.FromContext(c).Role() == models.RoleProfessor {
		lessons, err = lc.professors.MyLessons(c.Request.Context())
	} else {
		lessons, err = lc.lessons.List(c.Request.Context())
	}
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	query, page, size := tableQuery(c)
	respond(c, http.StatusOK, table.Apply(lessons, query, page, size))
}

// GetLesson returns one lesson with relations.
func (lc *LessonController) GetLesson(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	lesson, err := lc.lessons.Get(c.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	respond(c, http.StatusOK, lesson)
}

// CreateLesson schedules a lesson.
func (lc *LessonController) CreateLesson(c *gin.Context) {
	var req dto.CreateLessonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.BindError(c, err)
		return
	}

	lesson, err := lc.lessons.Create(c.Request.Context(), req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	respond(c, http.StatusCreated, lesson)
}

// UpdateLesson patches a scheduled lesson.
func (lc *LessonController) UpdateLesson(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req dto.UpdateLessonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.BindError(c, err)
		return
	}

	lesson, err := lc.lessons.Update(c.Request.Context(), id, req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	respond(c, http.StatusOK, lesson)
}

// DeleteLesson removes a scheduled lesson.
func (lc *LessonController) DeleteLesson(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := lc.lessons.Delete(c.Request.Context(), id); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	respond(c, http.StatusOK, dto.SuccessResponse{Message: "Lesson deleted"})
}
