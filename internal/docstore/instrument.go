package docstore

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/florist-store/florist-api/pkg/metrics"
)

type instrumented struct {
	next Gateway
}

// Instrument wraps g so every Insert and Query is counted and timed.
func Instrument(g Gateway) Gateway {
	return &instrumented{next: g}
}

func observe(op, collection string, start time.Time, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	metrics.StoreOperations.WithLabelValues(op, collection, result).Inc()
	metrics.StoreDuration.WithLabelValues(op, collection).Observe(time.Since(start).Seconds())
}

func (i *instrumented) Insert(ctx context.Context, collection string, doc any) (string, error) {
	start := time.Now()
	id, err := i.next.Insert(ctx, collection, doc)
	observe("insert", collection, start, err)
	return id, err
}

func (i *instrumented) Query(ctx context.Context, collection string, filter bson.M, limit int64) ([]bson.Raw, error) {
	start := time.Now()
	docs, err := i.next.Query(ctx, collection, filter, limit)
	observe("query", collection, start, err)
	return docs, err
}

func (i *instrumented) Status(ctx context.Context) Status {
	return i.next.Status(ctx)
}
