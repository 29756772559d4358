package repository

import (
	"errors"

	"go.mongodb.org/mongo-driver/mongo"
)

// ErrNotFound is returned instead of the driver's sentinel so that services
// do not have to import mongo to distinguish a miss from a store failure.
var ErrNotFound = errors.New("repository: not found")

func mapErr(err error) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNotFound
	}
	return err
}
