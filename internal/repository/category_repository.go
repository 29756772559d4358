package repository

import (
	"context"

	"learning-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type CategoryRepository struct {
	Col *mongo.Collection
}

func NewCategoryRepository(db *mongo.Database) *CategoryRepository {
	return &CategoryRepository{Col: db.Collection("categories")}
}

func (r *CategoryRepository) FindByID(ctx context.Context, id string) (*models.Category, error) {
	var category models.Category
	err := r.Col.FindOne(ctx, bson.M{"_id": id}).Decode(&category)
	if err != nil {
		return nil, mapErr(err)
	}
	return &category, nil
}

func (r *CategoryRepository) FindByModule(ctx context.Context, moduleID string) ([]models.Category, error) {
	cur, err := r.Col.Find(ctx, bson.M{"module_id": moduleID})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var categories []models.Category
	for cur.Next(ctx) {
		var c models.Category
		if err := cur.Decode(&c); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, cur.Err()
}
