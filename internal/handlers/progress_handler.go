package handlers

import (
	"net/http"

	"learning-service/internal/models"
	"learning-service/internal/service"

	"github.com/gin-gonic/gin"
)

type ProgressHandler struct {
	Service *service.ProgressService
}

func NewProgressHandler(s *service.ProgressService) *ProgressHandler {
	return &ProgressHandler{Service: s}
}

// GetUserProgress lists every progress row of the authenticated user,
// category records and module rollups alike.
func (h *ProgressHandler) GetUserProgress(c *gin.Context) {
	records, err := h.Service.ListUserProgress(c.Request.Context(), c.GetHeader("X-User-ID"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if records == nil {
		records = []models.UserProgress{}
	}
	c.JSON(http.StatusOK, records)
}
