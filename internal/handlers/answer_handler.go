package handlers

import (
	"net/http"

	"learning-service/internal/models"
	"learning-service/internal/service"

	"github.com/gin-gonic/gin"
)

type AnswerHandler struct {
	Service *service.AnswerService
}

func NewAnswerHandler(s *service.AnswerService) *AnswerHandler {
	return &AnswerHandler{Service: s}
}

// ListUserAnswers returns the authenticated user's full answer history.
func (h *AnswerHandler) ListUserAnswers(c *gin.Context) {
	answers, err := h.Service.ListUserAnswers(c.Request.Context(), c.GetHeader("X-User-ID"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if answers == nil {
		answers = []models.UserAnswer{}
	}
	c.JSON(http.StatusOK, answers)
}

func (h *AnswerHandler) GetUserStats(c *gin.Context) {
	stats, err := h.Service.UserStats(c.Request.Context(), c.GetHeader("X-User-ID"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, stats)
}
