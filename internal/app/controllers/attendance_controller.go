package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/lyra-school/lyra-web/internal/app/models/dto"
	"github.com/lyra-school/lyra-web/internal/app/services"
	"github.com/lyra-school/lyra-web/internal/middleware"
)

// AttendanceController handles the attendance pages: the professor
// per-lesson register and the student self-mark calendar.
type AttendanceController struct {
	attendanceService *services.AttendanceService
}

// NewAttendanceController creates a new AttendanceController
func NewAttendanceController(attendanceService *services.AttendanceService) *AttendanceController {
	return &AttendanceController{attendanceService: attendanceService}
}

// LessonAttendance returns the per-lesson page: the registration roster
// when no records exist yet, the recorded rows otherwise.
func (ac *AttendanceController) LessonAttendance(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	view, err := ac.attendanceService.LessonView(c.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	respond(c, http.StatusOK, view)
}

// Register records the submitted per-student attendance rows, one backend
// call each. A partial failure reports the failed rows; the saved ones
// stand.
func (ac *AttendanceController) Register(c *gin.Context) {
	var req dto.RegisterAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.BindError(c, err)
		return
	}

	result := ac.attendanceService.Register(c.Request.Context(), req)
	if !result.Ok() {
		partialFailure(c, result)
		return
	}
	respond(c, http.StatusCreated, result)
}

// Confirm locks one recorded attendance row.
func (ac *AttendanceController) Confirm(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := ac.attendanceService.Confirm(c.Request.Context(), id); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	respond(c, http.StatusOK, dto.SuccessResponse{Message: "Attendance confirmed"})
}

// Calendar returns the student's month view. The month query parameter is
// YYYY-MM, defaulting to the current month.
func (ac *AttendanceController) Calendar(c *gin.Context) {
	month := c.DefaultQuery("month", time.Now().Format("2006-01"))

	view, err := ac.attendanceService.Calendar(c.Request.Context(), month)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	respond(c, http.StatusOK, view)
}

// SelfMark records the student's own presence for a lesson occurring
// today.
func (ac *AttendanceController) SelfMark(c *gin.Context) {
	var req dto.SelfMarkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.BindError(c, err)
		return
	}

	if err := ac.attendanceService.SelfMark(c.Request.Context(), req); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	respond(c, http.StatusCreated, dto.SuccessResponse{Message: "Presence recorded"})
}

// partialFailure reports a batch write that only partly went through. The
// result detail tells the caller which rows to re-submit.
func partialFailure(c *gin.Context, result dto.BatchResult) {
	detail := dto.NewErrorDetail(dto.ErrorCodePartialFailure, "Some records could not be saved")
	detail = detail.WithDetails(result)
	c.JSON(http.StatusBadGateway, dto.NewErrorResponse(detail))
}
