package repository

import (
	"context"

	"learning-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type QuestionRepository struct {
	Col *mongo.Collection
}

func NewQuestionRepository(db *mongo.Database) *QuestionRepository {
	return &QuestionRepository{Col: db.Collection("questions")}
}

func (r *QuestionRepository) FindByID(ctx context.Context, id string) (*models.Question, error) {
	var question models.Question
	err := r.Col.FindOne(ctx, bson.M{"_id": id}).Decode(&question)
	if err != nil {
		return nil, mapErr(err)
	}
	return &question, nil
}

func (r *QuestionRepository) FindAll(ctx context.Context) ([]models.Question, error) {
	return r.find(ctx, bson.M{})
}

func (r *QuestionRepository) FindByCategory(ctx context.Context, categoryID string) ([]models.Question, error) {
	return r.find(ctx, bson.M{"category_id": categoryID})
}

// FindByCategories returns the questions of every listed category, which is
// how a module's pool is assembled.
func (r *QuestionRepository) FindByCategories(ctx context.Context, categoryIDs []string) ([]models.Question, error) {
	if len(categoryIDs) == 0 {
		return nil, nil
	}
	return r.find(ctx, bson.M{"category_id": bson.M{"$in": categoryIDs}})
}

// FindUncategorized returns the placement pool: questions seeded without a
// module or category.
func (r *QuestionRepository) FindUncategorized(ctx context.Context) ([]models.Question, error) {
	return r.find(ctx, bson.M{"module_id": nil, "category_id": nil})
}

// Count returns the size of the whole question catalog.
func (r *QuestionRepository) Count(ctx context.Context) (int, error) {
	n, err := r.Col.CountDocuments(ctx, bson.M{})
	return int(n), err
}

func (r *QuestionRepository) Create(ctx context.Context, question *models.Question) error {
	_, err := r.Col.InsertOne(ctx, question)
	return err
}

func (r *QuestionRepository) Update(ctx context.Context, id string, update bson.M) error {
	_, err := r.Col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": update})
	return err
}

func (r *QuestionRepository) Delete(ctx context.Context, id string) error {
	_, err := r.Col.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

func (r *QuestionRepository) find(ctx context.Context, filter bson.M) ([]models.Question, error) {
	cur, err := r.Col.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var questions []models.Question
	for cur.Next(ctx) {
		var q models.Question
		if err := cur.Decode(&q); err != nil {
			return nil, err
		}
		questions = append(questions, q)
	}
	return questions, cur.Err()
}
