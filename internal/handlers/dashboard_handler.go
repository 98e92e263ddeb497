package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/primevest/backend/internal/services/dashboard"
)

// DashboardHandler handles dashboard requests
type DashboardHandler struct {
	dashboardService *dashboard.DashboardService
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService *dashboard.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// Get returns the authenticated user's dashboard
func (h *DashboardHandler) Get(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	data, err := h.dashboardService.GetUserDashboard(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get dashboard"})
		return
	}

	c.JSON(http.StatusOK, data)
}
