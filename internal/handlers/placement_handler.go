package handlers

import (
	"net/http"

	"learning-service/internal/models"
	"learning-service/internal/selection"

	"github.com/gin-gonic/gin"
)

// PlacementHandler serves the uncategorized onboarding pool used to place a
// new user at a difficulty level.
type PlacementHandler struct {
	Pools   *selection.PoolLoader
	Sampler *selection.LevelSampler
}

func NewPlacementHandler(pools *selection.PoolLoader, sampler *selection.LevelSampler) *PlacementHandler {
	return &PlacementHandler{Pools: pools, Sampler: sampler}
}

// GetPlacementQuestions returns the whole placement pool, correct flags
// included, as the placement flow is scored client-side.
func (h *PlacementHandler) GetPlacementQuestions(c *gin.Context) {
	questions, err := h.Pools.PlacementPool(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if questions == nil {
		questions = []models.Question{}
	}
	c.JSON(http.StatusOK, questions)
}

type samplePlacementRequest struct {
	Quantity int `json:"quantity" binding:"required"`
}

// SamplePlacement draws a difficulty-balanced subset of the placement pool
// for the authenticated user.
func (h *PlacementHandler) SamplePlacement(c *gin.Context) {
	userID := c.GetHeader("X-User-ID")
	var req samplePlacementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing parameters"})
		return
	}

	ctx := c.Request.Context()
	pool, err := h.Pools.PlacementPool(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	excluded, err := h.Pools.Exclusions(ctx, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	selected := h.Sampler.Select(pool, excluded, req.Quantity)
	if selected == nil {
		selected = []models.Question{}
	}
	c.JSON(http.StatusOK, selected)
}
