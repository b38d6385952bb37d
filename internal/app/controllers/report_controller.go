package controllers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/lyra-school/lyra-web/internal/app/models/dto"
	"github.com/lyra-school/lyra-web/internal/app/services"
	"github.com/lyra-school/lyra-web/internal/middleware"
)

// ReportController handles the grade report page and its exports.
type ReportController struct {
	reportService *services.ReportService
}

// NewReportController creates a new ReportController
func NewReportController(reportService *services.ReportService) *ReportController {
	return &ReportController{reportService: reportService}
}

// Filters returns the filter option lists. A course_id query parameter
// narrows the subject and student options to that course.
func (rc *ReportController) Filters(c *gin.Context) {
	courseID, _ := strconv.ParseInt(c.Query("course_id"), 10, 64)

	view, err := rc.reportService.Filters(c.Request.Context(), courseID)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	respond(c, http.StatusOK, view)
}

// ReportsPage returns the filtered rows with statistics and chart series.
func (rc *ReportController) ReportsPage(c *gin.Context) {
	var filter dto.ReportFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		middleware.BindError(c, err)
		return
	}

	view, err := rc.reportService.Build(c.Request.Context(), filter)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	respond(c, http.StatusOK, view)
}

// ExportXLSX downloads the filtered report as a workbook.
func (rc *ReportController) ExportXLSX(c *gin.Context) {
	var filter dto.ReportFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		middleware.BindError(c, err)
		return
	}

	data, err := rc.reportService.ExportXLSX(c.Request.Context(), filter)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	download(c, exportFilename("xlsx"), "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}

// ExportPDF downloads the filtered report as a PDF.
func (rc *ReportController) ExportPDF(c *gin.Context) {
	var filter dto.ReportFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		middleware.BindError(c, err)
		return
	}

	data, err := rc.reportService.ExportPDF(c.Request.Context(), filter)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	download(c, exportFilename("pdf"), "application/pdf", data)
}

// download writes a file response with an attachment disposition.
func download(c *gin.Context, filename, contentType string, data []byte) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, contentType, data)
}

// exportFilename stamps the export with the generation date.
func exportFilename(ext string) string {
	return fmt.Sprintf("grade-report-%s.%s", time.Now().Format("2006-01-02"), ext)
}
