package service

import (
	"context"
	"time"

	"learning-service/internal/models"
	"learning-service/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
)

// In-memory fakes for the store interfaces.

type fakeQuestionStore struct {
	questions map[string]models.Question
}

func (f *fakeQuestionStore) FindByID(_ context.Context, id string) (*models.Question, error) {
	q, ok := f.questions[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &q, nil
}

func (f *fakeQuestionStore) FindAll(_ context.Context) ([]models.Question, error) {
	var out []models.Question
	for _, q := range f.questions {
		out = append(out, q)
	}
	return out, nil
}

func (f *fakeQuestionStore) FindByCategory(_ context.Context, categoryID string) ([]models.Question, error) {
	var out []models.Question
	for _, q := range f.questions {
		if q.CategoryID != nil && *q.CategoryID == categoryID {
			out = append(out, q)
		}
	}
	return out, nil
}

func (f *fakeQuestionStore) FindByCategories(_ context.Context, categoryIDs []string) ([]models.Question, error) {
	wanted := make(map[string]bool, len(categoryIDs))
	for _, id := range categoryIDs {
		wanted[id] = true
	}
	var out []models.Question
	for _, q := range f.questions {
		if q.CategoryID != nil && wanted[*q.CategoryID] {
			out = append(out, q)
		}
	}
	return out, nil
}

func (f *fakeQuestionStore) Count(_ context.Context) (int, error) {
	return len(f.questions), nil
}

func (f *fakeQuestionStore) Create(_ context.Context, question *models.Question) error {
	f.questions[question.ID] = *question
	return nil
}

func (f *fakeQuestionStore) Update(_ context.Context, id string, _ bson.M) error {
	if _, ok := f.questions[id]; !ok {
		return repository.ErrNotFound
	}
	return nil
}

func (f *fakeQuestionStore) Delete(_ context.Context, id string) error {
	delete(f.questions, id)
	return nil
}

type fakeCategoryStore struct {
	categories map[string]models.Category
}

func (f *fakeCategoryStore) FindByID(_ context.Context, id string) (*models.Category, error) {
	c, ok := f.categories[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &c, nil
}

func (f *fakeCategoryStore) FindByModule(_ context.Context, moduleID string) ([]models.Category, error) {
	var out []models.Category
	for _, c := range f.categories {
		if c.ModuleID == moduleID {
			out = append(out, c)
		}
	}
	return out, nil
}

type fakeAnswerStore struct {
	answers []models.UserAnswer
	failErr error
}

func (f *fakeAnswerStore) Create(_ context.Context, answer *models.UserAnswer) error {
	if f.failErr != nil {
		return f.failErr
	}
	f.answers = append(f.answers, *answer)
	return nil
}

func (f *fakeAnswerStore) FindByUser(_ context.Context, userID string) ([]models.UserAnswer, error) {
	var out []models.UserAnswer
	for _, a := range f.answers {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	return out, nil
}

type fakeModuleStore struct {
	modules map[string]models.Module
}

func (f *fakeModuleStore) FindByID(_ context.Context, id string) (*models.Module, error) {
	m, ok := f.modules[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &m, nil
}

func (f *fakeModuleStore) FindAll(_ context.Context) ([]models.Module, error) {
	var out []models.Module
	for _, m := range f.modules {
		out = append(out, m)
	}
	return out, nil
}

type fakeProgressStore struct {
	records map[string]models.UserProgress
}

func newFakeProgressStore() *fakeProgressStore {
	return &fakeProgressStore{records: make(map[string]models.UserProgress)}
}

func progressKey(userID, moduleID string, categoryID *string) string {
	key := userID + "|" + moduleID + "|"
	if categoryID != nil {
		key += *categoryID
	}
	return key
}

func (f *fakeProgressStore) Find(_ context.Context, userID, moduleID string, categoryID *string) (*models.UserProgress, error) {
	record, ok := f.records[progressKey(userID, moduleID, categoryID)]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &record, nil
}

func (f *fakeProgressStore) Upsert(_ context.Context, progress *models.UserProgress) error {
	f.records[progressKey(progress.UserID, progress.ModuleID, progress.CategoryID)] = *progress
	return nil
}

func (f *fakeProgressStore) FindByUser(_ context.Context, userID string) ([]models.UserProgress, error) {
	var out []models.UserProgress
	for _, record := range f.records {
		if record.UserID == userID {
			out = append(out, record)
		}
	}
	return out, nil
}

type fakeStreakStore struct {
	streaks map[string]models.UserStreak
}

func newFakeStreakStore() *fakeStreakStore {
	return &fakeStreakStore{streaks: make(map[string]models.UserStreak)}
}

func (f *fakeStreakStore) Find(_ context.Context, userID string) (*models.UserStreak, error) {
	streak, ok := f.streaks[userID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &streak, nil
}

func (f *fakeStreakStore) Upsert(_ context.Context, streak *models.UserStreak) error {
	f.streaks[streak.UserID] = *streak
	return nil
}

type fakeTxRunner struct {
	calls      int
	rolledBack bool
}

func (f *fakeTxRunner) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	if err := fn(ctx); err != nil {
		f.rolledBack = true
		return err
	}
	return nil
}

type fakeLocker struct {
	acquired []string
}

func (f *fakeLocker) Acquire(_ context.Context, key string, _ time.Duration) (func(), error) {
	f.acquired = append(f.acquired, key)
	return func() {}, nil
}
