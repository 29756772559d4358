package handlers

import (
	"net/http"
	"time"

	"learning-service/internal/service"

	"github.com/gin-gonic/gin"
)

type StreakHandler struct {
	Service *service.StreakService
}

func NewStreakHandler(s *service.StreakService) *StreakHandler {
	return &StreakHandler{Service: s}
}

func (h *StreakHandler) GetStreak(c *gin.Context) {
	snapshot, err := h.Service.GetStreak(c.Request.Context(), c.GetHeader("X-User-ID"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, snapshot)
}

func (h *StreakHandler) UpdateStreak(c *gin.Context) {
	snapshot, err := h.Service.RecordActivity(c.Request.Context(), c.GetHeader("X-User-ID"), time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, snapshot)
}
