package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"learning-service/internal/models"
	"learning-service/internal/repository"
)

// ProgressService owns every mutation of user_progress rows. Category rows
// keep a running mean over all attempts; the module row is recomputed from
// its categories after each category update.
type ProgressService struct {
	progress   ProgressStore
	categories CategoryStore
}

func NewProgressService(progress ProgressStore, categories CategoryStore) *ProgressService {
	return &ProgressService{progress: progress, categories: categories}
}

// UpdateCategoryProgress folds one quiz percentage into the category's
// running mean. Each past attempt carries equal weight:
// new = round((old*total + percentage) / (total+1)).
func (s *ProgressService) UpdateCategoryProgress(ctx context.Context, userID, moduleID, categoryID string, percentage int) (*models.UserProgress, error) {
	record, err := s.progress.Find(ctx, userID, moduleID, &categoryID)
	switch {
	case err == nil:
		total := record.TotalQuizzes + 1
		record.Progress = roundDiv(record.Progress*record.TotalQuizzes+percentage, total)
		record.TotalQuizzes = total
	case errors.Is(err, repository.ErrNotFound):
		record = &models.UserProgress{
			UserID:       userID,
			ModuleID:     moduleID,
			CategoryID:   &categoryID,
			Progress:     percentage,
			TotalQuizzes: 1,
		}
	default:
		return nil, fmt.Errorf("failed to load progress: %w", err)
	}

	record.LastUpdated = time.Now().UTC()
	if err := s.progress.Upsert(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to save category progress: %w", err)
	}
	if err := s.rollupModule(ctx, userID, moduleID); err != nil {
		return nil, err
	}
	return record, nil
}

// rollupModule writes the module row as the plain mean of the current
// percentages of all its categories. Categories without attempts count as 0
// and the mean is not weighted by attempt counts. A module with no
// categories is a no-op.
func (s *ProgressService) rollupModule(ctx context.Context, userID, moduleID string) error {
	categories, err := s.categories.FindByModule(ctx, moduleID)
	if err != nil {
		return fmt.Errorf("failed to load module categories: %w", err)
	}
	if len(categories) == 0 {
		return nil
	}

	total := 0
	for _, category := range categories {
		id := category.ID
		record, err := s.progress.Find(ctx, userID, moduleID, &id)
		if errors.Is(err, repository.ErrNotFound) {
			continue
		}
		if err != nil {
			return fmt.Errorf("failed to load sibling progress: %w", err)
		}
		total += record.Progress
	}
	average := total / len(categories)

	rollup, err := s.progress.Find(ctx, userID, moduleID, nil)
	if errors.Is(err, repository.ErrNotFound) {
		rollup = &models.UserProgress{UserID: userID, ModuleID: moduleID}
	} else if err != nil {
		return fmt.Errorf("failed to load module progress: %w", err)
	}
	rollup.Progress = average
	rollup.LastUpdated = time.Now().UTC()
	if err := s.progress.Upsert(ctx, rollup); err != nil {
		return fmt.Errorf("failed to save module progress: %w", err)
	}
	return nil
}

// ListUserProgress returns every progress row of a user, category rows and
// module rollups alike.
func (s *ProgressService) ListUserProgress(ctx context.Context, userID string) ([]models.UserProgress, error) {
	return s.progress.FindByUser(ctx, userID)
}

// GetModuleProgress reads one key; a missing row reads as zero progress.
func (s *ProgressService) GetModuleProgress(ctx context.Context, userID, moduleID string, categoryID *string) (int, error) {
	record, err := s.progress.Find(ctx, userID, moduleID, categoryID)
	if errors.Is(err, repository.ErrNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return record.Progress, nil
}

// roundDiv divides with round-half-up, which is safe here because both
// arguments are non-negative.
func roundDiv(numerator, denominator int) int {
	return int(math.Round(float64(numerator) / float64(denominator)))
}
