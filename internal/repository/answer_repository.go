package repository

import (
	"context"

	"learning-service/internal/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type AnswerRepository struct {
	Col *mongo.Collection
}

func NewAnswerRepository(db *mongo.Database) *AnswerRepository {
	return &AnswerRepository{Col: db.Collection("user_answers")}
}

// Create appends one answer record. The collection is append-only; nothing
// ever updates these rows.
func (r *AnswerRepository) Create(ctx context.Context, answer *models.UserAnswer) error {
	if answer.ID == "" {
		answer.ID = uuid.NewString()
	}
	_, err := r.Col.InsertOne(ctx, answer)
	return err
}

func (r *AnswerRepository) FindByUser(ctx context.Context, userID string) ([]models.UserAnswer, error) {
	cur, err := r.Col.Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var answers []models.UserAnswer
	for cur.Next(ctx) {
		var a models.UserAnswer
		if err := cur.Decode(&a); err != nil {
			return nil, err
		}
		answers = append(answers, a)
	}
	return answers, cur.Err()
}

// CorrectQuestionIDs returns the set of question ids the user has already
// answered correctly, used to exclude them from sampled pools.
func (r *AnswerRepository) CorrectQuestionIDs(ctx context.Context, userID string) (map[string]bool, error) {
	values, err := r.Col.Distinct(ctx, "question_id", bson.M{"user_id": userID, "is_correct": true})
	if err != nil {
		return nil, err
	}
	ids := make(map[string]bool, len(values))
	for _, v := range values {
		if id, ok := v.(string); ok {
			ids[id] = true
		}
	}
	return ids, nil
}
