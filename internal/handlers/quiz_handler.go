package handlers

import (
	"log"
	"net/http"
	"time"

	"learning-service/internal/models"
	"learning-service/internal/selection"
	"learning-service/internal/service"

	"github.com/gin-gonic/gin"
)

type QuizHandler struct {
	Quiz    *service.QuizService
	Streaks *service.StreakService
	Pools   *selection.PoolLoader
	Sampler *selection.LevelSampler
}

func NewQuizHandler(quiz *service.QuizService, streaks *service.StreakService, pools *selection.PoolLoader, sampler *selection.LevelSampler) *QuizHandler {
	return &QuizHandler{Quiz: quiz, Streaks: streaks, Pools: pools, Sampler: sampler}
}

type submitQuizRequest struct {
	Answers    []models.Submission `json:"answers" binding:"required"`
	ModuleID   string              `json:"moduleId"`
	CategoryID string              `json:"categoryId"`
}

// SubmitQuiz scores a batch of answers for the authenticated user. A scored
// batch is a qualifying activity, so the user's streak is updated after the
// batch commits.
func (h *QuizHandler) SubmitQuiz(c *gin.Context) {
	userID := c.GetHeader("X-User-ID")
	var req submitQuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No answers provided"})
		return
	}

	report, err := h.Quiz.EvaluateQuiz(c.Request.Context(), userID, req.ModuleID, req.CategoryID, req.Answers)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if report.Total > 0 {
		if _, err := h.Streaks.RecordActivity(c.Request.Context(), userID, time.Now()); err != nil {
			// The batch is already committed; a streak hiccup must not
			// fail the submission.
			log.Printf("error recording streak activity for %s: %v", userID, err)
		}
	}

	c.JSON(http.StatusOK, report)
}

type byLevelRequest struct {
	ModuleID   string `json:"module_id"`
	CategoryID string `json:"category_id"`
	Quantity   int    `json:"quantity" binding:"required"`
}

// QuestionsByLevel samples a difficulty-balanced question set from a module
// or category pool, excluding questions the user already answered correctly.
// The response carries the correct flags; the quiz runs client-side.
func (h *QuizHandler) QuestionsByLevel(c *gin.Context) {
	userID := c.GetHeader("X-User-ID")
	var req byLevelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing parameters"})
		return
	}
	if req.ModuleID == "" && req.CategoryID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing parameters"})
		return
	}

	ctx := c.Request.Context()
	var (
		pool []models.Question
		err  error
	)
	if req.CategoryID != "" {
		pool, err = h.Pools.CategoryPool(ctx, req.CategoryID)
	} else {
		pool, err = h.Pools.ModulePool(ctx, req.ModuleID)
	}
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
