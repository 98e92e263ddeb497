package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/primevest/backend/internal/services/referral"
)

// ReferralHandler handles referral tree requests
type ReferralHandler struct {
	referralService *referral.ReferralService
}

// NewReferralHandler creates a new referral handler
func NewReferralHandler(referralService *referral.ReferralService) *ReferralHandler {
	return &ReferralHandler{referralService: referralService}
}

// GetTree returns the authenticated user's downline tree and level summary.
// The requested depth is clamped server-side.
func (h *ReferralHandler) GetTree(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	maxLevel, err := strconv.Atoi(c.DefaultQuery("maxLevel", "3"))
	if err != nil || maxLevel < 1 {
		maxLevel = 3
	}

	data, err := h.referralService.GetReferralTree(c.Request.Context(), userID, maxLevel)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get referral tree"})
		return
	}

	c.JSON(http.StatusOK, data)
}
