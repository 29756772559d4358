package service

import (
	"context"
	"testing"

	"learning-service/internal/models"
)

func newProgressFixture(categories map[string]models.Category) (*ProgressService, *fakeProgressStore) {
	store := newFakeProgressStore()
	return NewProgressService(store, &fakeCategoryStore{categories: categories}), store
}

func TestUpdateCategoryProgressRunningMean(t *testing.T) {
	service, _ := newProgressFixture(map[string]models.Category{
		"c1": {ID: "c1", ModuleID: "m1"},
	})
	ctx := context.Background()

	steps := []struct {
		name         string
		percentage   int
		wantProgress int
		wantTotal    int
	}{
		{"first attempt", 100, 100, 1},
		{"mean of 100 and 50", 50, 75, 2},
		{"round((75*2+50)/3)", 50, 67, 3},
		{"round((67*3+100)/4)", 100, 75, 4},
	}
	for _, step := range steps {
		record, err := service.UpdateCategoryProgress(ctx, "u1", "m1", "c1", step.percentage)
		if err != nil {
			t.Fatalf("%s: %v", step.name, err)
		}
		if record.Progress != step.wantProgress {
			t.Errorf("%s: progress = %d, want %d", step.name, record.Progress, step.wantProgress)
		}
		if record.TotalQuizzes != step.wantTotal {
			t.Errorf("%s: total_quizzes = %d, want %d", step.name, record.TotalQuizzes, step.wantTotal)
		}
	}
}

func TestModuleRollupFloorsMeanOverAllCategories(t *testing.T) {
	service, store := newProgressFixture(map[string]models.Category{
		"c1": {ID: "c1", ModuleID: "m1"},
		"c2": {ID: "c2", ModuleID: "m1"},
		"c3": {ID: "c3", ModuleID: "m1"},
	})
	ctx := context.Background()

	// Untouched categories weigh in as 0: floor(80/3) = 26.
	if _, err := service.UpdateCategoryProgress(ctx, "u1", "m1", "c1", 80); err != nil {
		t.Fatal(err)
	}
	rollup, err := store.Find(ctx, "u1", "m1", nil)
	if err != nil {
		t.Fatalf("missing module rollup: %v", err)
	}
	if rollup.Progress != 26 {
		t.Errorf("rollup after one category = %d, want 26", rollup.Progress)
	}

	// floor((80+50+0)/3) = 43.
	if _, err := service.UpdateCategoryProgress(ctx, "u1", "m1", "c2", 50); err != nil {
		t.Fatal(err)
	}
	rollup, err = store.Find(ctx, "u1", "m1", nil)
	if err != nil {
		t.Fatal(err)
	}
	if rollup.Progress != 43 {
		t.Errorf("rollup after two categories = %d, want 43", rollup.Progress)
	}
	if rollup.TotalQuizzes != 0 {
		t.Errorf("rollup row should not count quizzes, got %d", rollup.TotalQuizzes)
	}
}

func TestRollupSkippedWhenModuleHasNoCategories(t *testing.T) {
	service, store := newProgressFixture(map[string]models.Category{})
	ctx := context.Background()

	if _, err := service.UpdateCategoryProgress(ctx, "u1", "m9", "c-unlisted", 90); err != nil {
		t.Fatal(err)
	}
	if _, err := store.Find(ctx, "u1", "m9", nil); err == nil {
		t.Error("expected no module rollup row for a module without categories")
	}
}

func TestGetModuleProgressMissingRowReadsZero(t *testing.T) {
	service, _ := newProgressFixture(map[string]models.Category{})

	progress, err := service.GetModuleProgress(context.Background(), "u1", "m1", nil)
	if err != nil {
		t.Fatalf("GetModuleProgress failed: %v", err)
	}
	if progress != 0 {
		t.Errorf("expected 0 for a missing row, got %d", progress)
	}
}
