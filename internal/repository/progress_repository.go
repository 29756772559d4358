package repository

import (
	"context"

	"learning-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ProgressRepository struct {
	Col *mongo.Collection
}

func NewProgressRepository(db *mongo.Database) *ProgressRepository {
	return &ProgressRepository{Col: db.Collection("user_progress")}
}

// Find loads the progress row for one (user, module, category) key. A nil
// categoryID addresses the module-level rollup row.
func (r *ProgressRepository) Find(ctx context.Context, userID, moduleID string, categoryID *string) (*models.UserProgress, error) {
	var progress models.UserProgress
	err := r.Col.FindOne(ctx, keyFilter(userID, moduleID, categoryID)).Decode(&progress)
	if err != nil {
		return nil, mapErr(err)
	}
	return &progress, nil
}

// Upsert writes the row for the record's key, creating it on first
// contribution.
func (r *ProgressRepository) Upsert(ctx context.Context, progress *models.UserProgress) error {
	update := bson.M{"$set": bson.M{
		"progress":      progress.Progress,
		"total_quizzes": progress.TotalQuizzes,
		"last_updated":  progress.LastUpdated,
	}}
	_, err := r.Col.UpdateOne(ctx,
		keyFilter(progress.UserID, progress.ModuleID, progress.CategoryID),
		update, options.Update().SetUpsert(true))
	return err
}

func (r *ProgressRepository) FindByUser(ctx context.Context, userID string) ([]models.UserProgress, error) {
	cur, err := r.Col.Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var records []models.UserProgress
	for cur.Next(ctx) {
		var p models.UserProgress
		if err := cur.Decode(&p); err != nil {
			return nil, err
		}
		records = append(records, p)
	}
	return records, cur.Err()
}

func keyFilter(userID, moduleID string, categoryID *string) bson.M {
	filter := bson.M{"user_id": userID, "module_id": moduleID}
	if categoryID != nil {
		filter["category_id"] = *categoryID
	} else {
		filter["category_id"] = nil
	}
	return filter
}
