package handlers

import (
	"net/http"

	"learning-service/internal/models"
	"learning-service/internal/service"

	"github.com/gin-gonic/gin"
)

type QuestionHandler struct {
	Service *service.QuestionService
}

func NewQuestionHandler(s *service.QuestionService) *QuestionHandler {
	return &QuestionHandler{Service: s}
}

// ListQuestions serves quiz questions filtered by topic, moduleId or
// categoryId. Correct-answer flags are stripped; the client only learns them
// by submitting.
func (h *QuestionHandler) ListQuestions(c *gin.Context) {
	questions, err := h.Service.ListQuestions(c.Request.Context(), c.Query("topic"), c.Query("moduleId"), c.Query("categoryId"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	sanitized := make([]models.Question, 0, len(questions))
	for _, q := range questions {
		sanitized = append(sanitized, q.Sanitized())
	}
	c.JSON(http.StatusOK, sanitized)
}

func (h *QuestionHandler) GetQuestion(c *gin.Context) {
	question, err := h.Service.GetQuestion(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Question not found"})
		return
	}
	c.JSON(http.StatusOK, question.Sanitized())
}

// GetQuestionsByCategory returns a category's questions with their
// correctness-bearing options, for review flows.
func (h *QuestionHandler) GetQuestionsByCategory(c *gin.Context) {
	questions, err := h.Service.ListQuestions(c.Request.Context(), "", "", c.Param("categoryId"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if len(questions) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "No questions found for this category"})
		return
	}
	c.JSON(http.StatusOK, questions)
}

func (h *QuestionHandler) CreateQuestion(c *gin.Context) {
	var question models.Question
	if err := c.ShouldBindJSON(&question); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.Service.CreateQuestion(c.Request.Context(), &question); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, question)
}

func (h *QuestionHandler) UpdateQuestion(c *gin.Context) {
	var update map[string]interface{}
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.Service.UpdateQuestion(c.Request.Context(), c.Param("id"), update); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "updated"})
}

func (h *QuestionHandler) DeleteQuestion(c *gin.Context) {
	if err := h.Service.DeleteQuestion(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}
