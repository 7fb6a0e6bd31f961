package database

import (
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/florist-store/florist-api/internal/config"
	"github.com/florist-store/florist-api/internal/docstore"
	"github.com/florist-store/florist-api/pkg/logger"
)

// MemoryURL selects the in-process gateway instead of MongoDB.
const MemoryURL = "memory://"

// OpenGateway connects once and returns the instrumented gateway. It never
// fails: on any connection error the degraded gateway is returned and the
// error is logged. The returned client is nil unless MongoDB is in use.
func OpenGateway(ctx context.Context, cfg config.DatabaseConfig) (docstore.Gateway, *mongo.Client) {
	if strings.HasPrefix(cfg.URL, MemoryURL) {
		logger.Warnf("database: using in-memory document store, data is lost on exit")
		return docstore.Instrument(docstore.NewMemoryGateway()), nil
	}
	client, db, err := Open(ctx, cfg)
	if err != nil {
		logger.Warnf("database: running without document store: %v", err)
		if errors.Is(err, ErrNotConfigured) {
			err = nil
		}
		return docstore.Instrument(docstore.Unavailable(err)), nil
	}
	logger.Infof("database: connected to %s", cfg.Name)
	return docstore.Instrument(docstore.NewMongoGateway(db)), client
}
