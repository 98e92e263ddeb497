package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/primevest/backend/internal/apperrors"
	"github.com/primevest/backend/internal/models"
	"github.com/primevest/backend/internal/services/settings"
)

// AdminHandler handles level configuration requests
type AdminHandler struct {
	settingsService *settings.SettingsService
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(settingsService *settings.SettingsService) *AdminHandler {
	return &AdminHandler{settingsService: settingsService}
}

// GetLevels returns the active commission rate table
func (h *AdminHandler) GetLevels(c *gin.Context) {
	levels, err := h.settingsService.GetLevelConfig()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get level configuration"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"levels": levels})
}

type setLevelsRequest struct {
	Levels models.LevelEntries `json:"levels" binding:"required"`
}

// SetLevels validates and replaces the active commission rate table
func (h *AdminHandler) SetLevels(c *gin.Context) {
	var req setLevelsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	setting, err := h.settingsService.SetLevelConfig(req.Levels, c.GetString("email"))
	if err != nil {
		c.JSON(apperrors.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"levels": setting.Levels})
}
