package db

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
)

// TxRunner runs a unit of work atomically. Every write a quiz batch performs
// goes through the context the runner hands to fn; if fn returns an error the
// whole batch is rolled back.
type TxRunner interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type MongoTxRunner struct {
	client *mongo.Client
}

func NewTxRunner(client *mongo.Client) *MongoTxRunner {
	return &MongoTxRunner{client: client}
}

func (r *MongoTxRunner) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	session, err := r.client.StartSession()
	if err != nil {
		return err
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		return nil, fn(sc)
	})
	return err
}
