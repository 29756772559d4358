package repository

import (
	"context"

	"learning-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type ModuleRepository struct {
	Col *mongo.Collection
}

func NewModuleRepository(db *mongo.Database) *ModuleRepository {
	return &ModuleRepository{Col: db.Collection("modules")}
}

func (r *ModuleRepository) FindByID(ctx context.Context, id string) (*models.Module, error) {
	var module models.Module
	err := r.Col.FindOne(ctx, bson.M{"_id": id}).Decode(&module)
	if err != nil {
		return nil, mapErr(err)
	}
	return &module, nil
}

func (r *ModuleRepository) FindAll(ctx context.Context) ([]models.Module, error) {
	cur, err := r.Col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var modules []models.Module
	for cur.Next(ctx) {
		var m models.Module
		if err := cur.Decode(&m); err != nil {
			return nil, err
		}
		modules = append(modules, m)
	}
	return modules, cur.Err()
}
