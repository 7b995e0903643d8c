package database

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/fakoredeDamilola/mongodb-eduhub-project/internal/storeerr"
)

// ConnectMongoDB dials the store and verifies it is reachable. The caller
// owns the returned client and is responsible for Disconnect.
func ConnectMongoDB(ctx context.Context, uri string) (*mongo.Client, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", storeerr.ErrConnectivity, err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("%w: %v", storeerr.ErrConnectivity, err)
	}

	return client, nil
}
