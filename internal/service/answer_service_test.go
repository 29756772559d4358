package service

import (
	"context"
	"testing"

	"learning-service/internal/models"
)

func TestUserStats(t *testing.T) {
	questions := &fakeQuestionStore{questions: map[string]models.Question{
		"q1": mcq("q1", strPtr("c1"), "a"),
		"q2": mcq("q2", strPtr("c1"), "a"),
		"q3": mcq("q3", strPtr("c1"), "a"),
	}}
	answers := &fakeAnswerStore{answers: []models.UserAnswer{
		{UserID: "u1", QuestionID: "q1", IsCorrect: true},
		{UserID: "u1", QuestionID: "q2", IsCorrect: false},
		{UserID: "u1", QuestionID: "q3", IsCorrect: true},
		{UserID: "other", QuestionID: "q1", IsCorrect: true},
	}}
	service := NewAnswerService(answers, questions)

	stats, err := service.UserStats(context.Background(), "u1")
	if err != nil {
		t.Fatalf("UserStats failed: %v", err)
	}
	if stats.Total != 3 {
		t.Errorf("total = %d, want the catalog size 3", stats.Total)
	}
	if stats.Correct != 2 {
		t.Errorf("correct = %d, want 2", stats.Correct)
	}
}

func TestUserStatsWithoutHistory(t *testing.T) {
	service := NewAnswerService(&fakeAnswerStore{}, &fakeQuestionStore{questions: map[string]models.Question{}})

	stats, err := service.UserStats(context.Background(), "fresh-user")
	if err != nil {
		t.Fatalf("UserStats failed: %v", err)
	}
	if stats.Total != 0 || stats.Correct != 0 {
		t.Errorf("expected zero stats, got %+v", stats)
	}
}

func TestListUserAnswersScopedToUser(t *testing.T) {
	answers := &fakeAnswerStore{answers: []models.UserAnswer{
		{UserID: "u1", QuestionID: "q1", Answer: "a", IsCorrect: true},
		{UserID: "u2", QuestionID: "q1", Answer: "b", IsCorrect: false},
	}}
	service := NewAnswerService(answers, &fakeQuestionStore{questions: map[string]models.Question{}})

	history, err := service.ListUserAnswers(context.Background(), "u1")
	if err != nil {
		t.Fatalf("ListUserAnswers failed: %v", err)
	}
	if len(history) != 1 || history[0].UserID != "u1" {
		t.Errorf("expected only u1's answers, got %+v", history)
	}
}
