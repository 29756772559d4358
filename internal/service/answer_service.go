package service

import (
	"context"
	"fmt"

	"learning-service/internal/models"
)

// AnswerService exposes a user's answer history. Answers are written by quiz
// evaluation only; this service just reads them back.
type AnswerService struct {
	answers   AnswerStore
	questions QuestionStore
}

func NewAnswerService(answers AnswerStore, questions QuestionStore) *AnswerService {
	return &AnswerService{answers: answers, questions: questions}
}

func (s *AnswerService) ListUserAnswers(ctx context.Context, userID string) ([]models.UserAnswer, error) {
	return s.answers.FindByUser(ctx, userID)
}

// UserStats counts the user's correct answers against the size of the whole
// question catalog.
func (s *AnswerService) UserStats(ctx context.Context, userID string) (*models.AnswerStats, error) {
	total, err := s.questions.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count questions: %w", err)
	}
	answers, err := s.answers.FindByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load answer history: %w", err)
	}

	correct := 0
	for _, answer := range answers {
		if answer.IsCorrect {
			correct++
		}
	}
	return &models.AnswerStats{Total: total, Correct: correct}, nil
}
