package service

import (
	"context"
	"fmt"

	"learning-service/internal/models"
)

// ModuleService assembles module/category listings together with the
// requesting user's progress percentages. With an empty userID all progress
// reads back as zero.
type ModuleService struct {
	modules    ModuleStore
	categories CategoryStore
	progress   *ProgressService
}

func NewModuleService(modules ModuleStore, categories CategoryStore, progress *ProgressService) *ModuleService {
	return &ModuleService{modules: modules, categories: categories, progress: progress}
}

func (s *ModuleService) ListModules(ctx context.Context, userID string) ([]models.ModuleView, error) {
	modules, err := s.modules.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list modules: %w", err)
	}
	views := make([]models.ModuleView, 0, len(modules))
	for _, module := range modules {
		view, err := s.buildView(ctx, module, userID)
		if err != nil {
			return nil, err
		}
		views = append(views, *view)
	}
	return views, nil
}

func (s *ModuleService) GetModule(ctx context.Context, moduleID, userID string) (*models.ModuleView, error) {
	module, err := s.modules.FindByID(ctx, moduleID)
	if err != nil {
		return nil, err
	}
	return s.buildView(ctx, *module, userID)
}

func (s *ModuleService) buildView(ctx context.Context, module models.Module, userID string) (*models.ModuleView, error) {
	view := &models.ModuleView{
		ID:          module.ID,
		Title:       module.Title,
		Description: module.Description,
		Categories:  []models.CategoryView{},
	}

	categories, err := s.categories.FindByModule(ctx, module.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load categories of module %s: %w", module.ID, err)
	}
	for _, category := range categories {
		cv := models.CategoryView{ID: category.ID, Name: category.Name}
		if userID != "" {
			id := category.ID
			cv.Progress, err = s.progress.GetModuleProgress(ctx, userID, module.ID, &id)
			if err != nil {
				return nil, err
			}
		}
		view.Categories = append(view.Categories, cv)
	}

	if userID != "" {
		view.Progress, err = s.progress.GetModuleProgress(ctx, userID, module.ID, nil)
		if err != nil {
			return nil, err
		}
	}
	return view, nil
}
