package selection

import (
	"context"
	"fmt"

	"learning-service/internal/models"
	"learning-service/internal/repository"
)

// PoolLoader assembles candidate pools for the sampler from the content
// store, and the per-user exclusion set of already-mastered questions.
type PoolLoader struct {
	questions  *repository.QuestionRepository
	categories *repository.CategoryRepository
	answers    *repository.AnswerRepository
}

func NewPoolLoader(
	questions *repository.QuestionRepository,
	categories *repository.CategoryRepository,
	answers *repository.AnswerRepository,
) *PoolLoader {
	return &PoolLoader{questions: questions, categories: categories, answers: answers}
}

// ModulePool returns every question of the module's categories.
func (p *PoolLoader) ModulePool(ctx context.Context, moduleID string) ([]models.Question, error) {
	categories, err := p.categories.FindByModule(ctx, moduleID)
	if err != nil {
		return nil, fmt.Errorf("failed to load module categories: %w", err)
	}
	ids := make([]string, 0, len(categories))
	for _, c := range categories {
		ids = append(ids, c.ID)
	}
	return p.questions.FindByCategories(ctx, ids)
}

func (p *PoolLoader) CategoryPool(ctx context.Context, categoryID string) ([]models.Question, error) {
	return p.questions.FindByCategory(ctx, categoryID)
}

// PlacementPool returns the uncategorized onboarding questions.
func (p *PoolLoader) PlacementPool(ctx context.Context) ([]models.Question, error) {
	return p.questions.FindUncategorized(ctx)
}

// Exclusions returns the question ids the user already answered correctly;
// the sampler never serves those again.
func (p *PoolLoader) Exclusions(ctx context.Context, userID string) (map[string]bool, error) {
	return p.answers.CorrectQuestionIDs(ctx, userID)
}
