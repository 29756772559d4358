package service

import (
	"context"

	"learning-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
)

// Store interfaces consumed by the services. The mongo repositories satisfy
// them; tests substitute in-memory fakes.

type QuestionFinder interface {
	FindByID(ctx context.Context, id string) (*models.Question, error)
}

type QuestionStore interface {
	QuestionFinder
	FindAll(ctx context.Context) ([]models.Question, error)
	FindByCategory(ctx context.Context, categoryID string) ([]models.Question, error)
	FindByCategories(ctx context.Context, categoryIDs []string) ([]models.Question, error)
	Count(ctx context.Context) (int, error)
	Create(ctx context.Context, question *models.Question) error
	Update(ctx context.Context, id string, update bson.M) error
	Delete(ctx context.Context, id string) error
}

type CategoryStore interface {
	FindByID(ctx context.Context, id string) (*models.Category, error)
	FindByModule(ctx context.Context, moduleID string) ([]models.Category, error)
}

type ModuleStore interface {
	FindByID(ctx context.Context, id string) (*models.Module, error)
	FindAll(ctx context.Context) ([]models.Module, error)
}

type AnswerStore interface {
	Create(ctx context.Context, answer *models.UserAnswer) error
	FindByUser(ctx context.Context, userID string) ([]models.UserAnswer, error)
}

type ProgressStore interface {
	Find(ctx context.Context, userID, moduleID string, categoryID *string) (*models.UserProgress, error)
	Upsert(ctx context.Context, progress *models.UserProgress) error
	FindByUser(ctx context.Context, userID string) ([]models.UserProgress, error)
}

type StreakStore interface {
	Find(ctx context.Context, userID string) (*models.UserStreak, error)
	Upsert(ctx context.Context, streak *models.UserStreak) error
}
