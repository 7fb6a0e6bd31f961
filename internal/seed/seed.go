// Package seed inserts the demo catalog into an empty product collection.
package seed

import (
	"context"
	"time"

	"github.com/florist-store/florist-api/internal/docstore"
	"github.com/florist-store/florist-api/internal/storefront"
	"github.com/florist-store/florist-api/internal/storefront/service"
	"github.com/florist-store/florist-api/pkg/logger"
	"github.com/florist-store/florist-api/pkg/metrics"
)

const (
	lockKey = "florist:seed:product"
	lockTTL = time.Minute
)

// Result is the outcome of inserting one seed product.
type Result struct {
	Title string
	ID    string
	Err   error
}

// Report summarizes one seeding run. Skipped runs carry a Reason and no Results.
type Report struct {
	Skipped bool
	Reason  string
	Results []Result
}

// Inserted counts successful inserts.
func (r Report) Inserted() int {
	n := 0
	for _, res := range r.Results {
		if res.Err == nil {
			n++
		}
	}
	return n
}

// EnsureProducts inserts items when the product collection is empty.
// Per-item failures are logged and recorded in the report, never returned.
// locker may be nil.
func EnsureProducts(ctx context.Context, gw docstore.Gateway, locker Locker, items []storefront.Product) Report {
	if docstore.IsUnavailable(gw) {
		return skipped("document store unavailable")
	}

	if locker != nil {
		token, ok, err := locker.TryLock(ctx, lockKey, lockTTL)
		if err != nil {
			logger.Warnf("seed: lock %s: %v", lockKey, err)
			return skipped("lock error: " + err.Error())
		}
		if !ok {
			return skipped("another instance is seeding")
		}
		defer func() {
			if err := locker.Release(context.Background(), lockKey, token); err != nil {
				logger.Warnf("seed: release %s: %v", lockKey, err)
			}
		}()
	}

	svc := service.New(gw)
	existing, err := svc.ListProducts(ctx, service.ProductFilter{Limit: 1})
	if err != nil {
		logger.Warnf("seed: check product collection: %v", err)
		return skipped("check failed: " + err.Error())
	}
	if len(existing) > 0 {
		return skipped("product collection not empty")
	}

	report := Report{Results: make([]Result, 0, len(items))}
	for _, p := range items {
		id, err := svc.CreateProduct(ctx, p)
		report.Results = append(report.Results, Result{Title: p.Title, ID: id, Err: err})
		if err != nil {
			metrics.SeedItems.WithLabelValues("failed").Inc()
			logger.Warnf("seed: insert %q: %v", p.Title, err)
			continue
		}
		metrics.SeedItems.WithLabelValues("inserted").Inc()
	}
	logger.Infof("seed: inserted %d/%d demo products", report.Inserted(), len(items))
	return report
}

func skipped(reason string) Report {
	logger.Debugf("seed: skipped (%s)", reason)
	return Report{Skipped: true, Reason: reason}
}
