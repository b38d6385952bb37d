package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lyra-school/lyra-web/internal/app/services"
	"github.com/lyra-school/lyra-web/internal/session"
)

// DashboardController handles the role-dispatched home page.
type DashboardController struct {
	dashboardService *services.DashboardService
}

// NewDashboardController creates a new DashboardController
func NewDashboardController(dashboardService *services.DashboardService) *DashboardController {
	return &DashboardController{dashboardService: dashboardService}
}

// Home returns the dashboard for the caller's role. Sections degrade
// independently, so this never fails outright.
func (dc *DashboardController) Home(c *gin.Context) {
	role := session.FromContext(c).Role()
	respond(c, http.StatusOK, dc.dashboardService.View(c.Request.Context(), role))
}
