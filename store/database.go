package store

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
)

func NewDatabase(client *mongo.Client, cfg *Config) (*mongo.Database, error) {
	return client.Database(cfg.DatabaseName), nil
}

func NewMongoPinger(db *mongo.Database) Pinger {
	return PingerFunc(func(ctx context.Context) error {
		return db.Client().Ping(ctx, nil)
	})
}
