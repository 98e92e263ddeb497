package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/primevest/backend/internal/apperrors"
	"github.com/primevest/backend/internal/services/roi"
)

// RoiHandler handles ROI requests
type RoiHandler struct {
	roiService *roi.RoiService
}

// NewRoiHandler creates a new ROI handler
func NewRoiHandler(roiService *roi.RoiService) *RoiHandler {
	return &RoiHandler{roiService: roiService}
}

// ProcessDaily manually triggers the daily cycle. Safe to call repeatedly:
// already-processed investments are skipped by the idempotency guard.
func (h *RoiHandler) ProcessDaily(c *gin.Context) {
	summary, err := h.roiService.ProcessDailyCycle(c.Request.Context())
	if err != nil {
		var appErr *apperrors.AppError
		if errors.As(err, &appErr) && appErr.Kind == apperrors.KindFatal {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "daily ROI processing failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Daily ROI processing completed",
		"summary": summary,
	})
}

// History returns the authenticated user's interest entries
func (h *RoiHandler) History(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	entries, total, err := h.roiService.History(userID, page, pageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get ROI history"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"entries": entries,
		"total":   total,
		"page":    page,
	})
}
