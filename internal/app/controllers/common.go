// Package controllers holds the gin handlers for every page and action
// endpoint. Controllers bind and validate input, delegate to the backend
// or composition services, and shape the standard response envelope.
package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/lyra-school/lyra-web/internal/app/models/dto"
	"github.com/lyra-school/lyra-web/internal/pkg/table"
)

// pathID parses the :id path parameter, responding 400 itself on failure.
func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid ID")
		detail = detail.WithDetails("ID must be a positive number")
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(detail))
		return 0, false
	}
	return id, true
}

// tableQuery reads the list-page query parameters: free-text filter, page
// number and page size. Out-of-range values are normalized by table.Apply.
func tableQuery(c *gin.Context) (query string, page, size int) {
	query = c.Query("q")
	page, _ = strconv.Atoi(c.DefaultQuery("page", strconv.Itoa(table.DefaultPage)))
	size, _ = strconv.Atoi(c.DefaultQuery("size", strconv.Itoa(table.DefaultPageSize)))
	return query, page, size
}

// respond writes the standard success envelope.
func respond(c *gin.Context, status int, data interface{}) {
	c.JSON(status, dto.APIResponse{
		Data:      data,
		Timestamp: time.Now(),
	})
}
