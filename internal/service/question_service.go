package service

import (
	"context"
	"fmt"
	"strings"

	"learning-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
)

// QuestionService covers question listing and content management. Questions
// are seeded content; the core never mutates them during scoring.
type QuestionService struct {
	questions  QuestionStore
	categories CategoryStore
	modules    ModuleStore
}

func NewQuestionService(questions QuestionStore, categories CategoryStore, modules ModuleStore) *QuestionService {
	return &QuestionService{questions: questions, categories: categories, modules: modules}
}

// ListQuestions filters by category when given, otherwise by module (all of
// its categories), otherwise by topic (a case-insensitive substring of module
// titles), otherwise returns everything.
func (s *QuestionService) ListQuestions(ctx context.Context, topic, moduleID, categoryID string) ([]models.Question, error) {
	switch {
	case categoryID != "":
		return s.questions.FindByCategory(ctx, categoryID)
	case moduleID != "":
		ids, err := s.categoryIDs(ctx, moduleID)
		if err != nil {
			return nil, err
		}
		return s.questions.FindByCategories(ctx, ids)
	case topic != "":
		return s.findByTopic(ctx, topic)
	default:
		return s.questions.FindAll(ctx)
	}
}

// findByTopic matches modules whose title contains the topic and pools the
// questions of their categories.
func (s *QuestionService) findByTopic(ctx context.Context, topic string) ([]models.Question, error) {
	modules, err := s.modules.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list modules: %w", err)
	}
	needle := strings.ToLower(topic)
	var ids []string
	for _, module := range modules {
		if !strings.Contains(strings.ToLower(module.Title), needle) {
			continue
		}
		moduleIDs, err := s.categoryIDs(ctx, module.ID)
		if err != nil {
			return nil, err
		}
		ids = append(ids, moduleIDs...)
	}
	return s.questions.FindByCategories(ctx, ids)
}

func (s *QuestionService) categoryIDs(ctx context.Context, moduleID string) ([]string, error) {
	categories, err := s.categories.FindByModule(ctx, moduleID)
	if err != nil {
		return nil, fmt.Errorf("failed to load module categories: %w", err)
	}
	ids := make([]string, 0, len(categories))
	for _, c := range categories {
		ids = append(ids, c.ID)
	}
	return ids, nil
}

func (s *QuestionService) GetQuestion(ctx context.Context, id string) (*models.Question, error) {
	return s.questions.FindByID(ctx, id)
}

func (s *QuestionService) CreateQuestion(ctx context.Context, question *models.Question) error {
	return s.questions.Create(ctx, question)
}

func (s *QuestionService) UpdateQuestion(ctx context.Context, id string, update map[string]interface{}) error {
	return s.questions.Update(ctx, id, bson.M(update))
}

func (s *QuestionService) DeleteQuestion(ctx context.Context, id string) error {
	return s.questions.Delete(ctx, id)
}
