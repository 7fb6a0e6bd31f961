package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/florist-store/florist-api/internal/config"
)

// ErrNotConfigured is returned by Open when DATABASE_URL or DATABASE_NAME is unset.
var ErrNotConfigured = errors.New("DATABASE_URL and DATABASE_NAME must both be set")

const defaultTimeout = 10 * time.Second

// ConnectMongo opens a connection and returns the client. Caller should call client.Disconnect(ctx).
func ConnectMongo(ctx context.Context, uri string, timeout time.Duration) (*mongo.Client, error) {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	clientOpts := options.Client().ApplyURI(uri).SetAppName("florist-api")
	client, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("mongo ping: %w", err)
	}
	return client, nil
}

// Open connects using the database section of the config and returns the
// client together with the selected database handle.
func Open(ctx context.Context, cfg config.DatabaseConfig) (*mongo.Client, *mongo.Database, error) {
	if !cfg.Configured() {
		return nil, nil, ErrNotConfigured
	}
	client, err := ConnectMongo(ctx, cfg.URL, cfg.Timeout)
	if err != nil {
		return nil, nil, err
	}
	return client, client.Database(cfg.Name), nil
}
