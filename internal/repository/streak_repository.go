package repository

import (
	"context"

	"learning-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type StreakRepository struct {
	Col *mongo.Collection
}

func NewStreakRepository(db *mongo.Database) *StreakRepository {
	return &StreakRepository{Col: db.Collection("user_streaks")}
}

func (r *StreakRepository) Find(ctx context.Context, userID string) (*models.UserStreak, error) {
	var streak models.UserStreak
	err := r.Col.FindOne(ctx, bson.M{"user_id": userID}).Decode(&streak)
	if err != nil {
		return nil, mapErr(err)
	}
	return &streak, nil
}

func (r *StreakRepository) Upsert(ctx context.Context, streak *models.UserStreak) error {
	update := bson.M{"$set": bson.M{
		"current_streak":  streak.CurrentStreak,
		"record_streak":   streak.RecordStreak,
		"last_activity":   streak.LastActivity,
		"weekly_progress": streak.WeeklyProgress,
	}}
	_, err := r.Col.UpdateOne(ctx, bson.M{"user_id": streak.UserID},
		update, options.Update().SetUpsert(true))
	return err
}
