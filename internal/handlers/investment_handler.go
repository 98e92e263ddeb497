package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/primevest/backend/internal/apperrors"
	"github.com/primevest/backend/internal/models"
	"github.com/primevest/backend/internal/services/investment"
)

// InvestmentHandler handles investment requests
type InvestmentHandler struct {
	investmentService *investment.InvestmentService
}

// NewInvestmentHandler creates a new investment handler
func NewInvestmentHandler(investmentService *investment.InvestmentService) *InvestmentHandler {
	return &InvestmentHandler{investmentService: investmentService}
}

type createInvestmentRequest struct {
	Amount float64 `json:"amount" binding:"required"`
	Plan   string  `json:"plan" binding:"required"`
}

// Create places a new investment for the authenticated user
func (h *InvestmentHandler) Create(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req createInvestmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	inv, err := h.investmentService.CreateInvestment(userID, req.Amount, models.Plan(req.Plan))
	if err != nil {
		c.JSON(apperrors.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"investment": inv})
}

// List returns the authenticated user's investments
func (h *InvestmentHandler) List(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	investments, err := h.investmentService.ListByUser(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get investments"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"investments": investments})
}

// currentUserID resolves the authenticated user from the request context
func currentUserID(c *gin.Context) (uuid.UUID, bool) {
	userIDStr := c.GetString("user_id")
	if userIDStr == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return uuid.Nil, false
	}
	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user ID"})
		return uuid.Nil, false
	}
	return userID, true
}
