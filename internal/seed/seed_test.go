package seed

import (
	"context"
	"errors"
	"testing"
	"time"

	mr "github.com/alicebob/miniredis/v2"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"github.com/florist-store/florist-api/internal/docstore"
	"github.com/florist-store/florist-api/internal/storefront"
	"github.com/florist-store/florist-api/internal/storefront/service"
	"github.com/florist-store/florist-api/pkg/metrics"
)

func TestEnsureProductsSeedsEmptyCollectionOnce(t *testing.T) {
	ctx := context.Background()
	gw := docstore.NewMemoryGateway()
	items := DemoProducts()

	report := EnsureProducts(ctx, gw, nil, items)
	require.False(t, report.Skipped)
	require.Equal(t, len(items), report.Inserted())
	require.Equal(t, len(items), gw.Len(storefront.ProductCollection))

	listed, err := service.New(gw).ListProducts(ctx, service.ProductFilter{})
	require.NoError(t, err)
	for i, p := range listed {
		require.Equal(t, items[i].Title, p.Title)
		require.Equal(t, report.Results[i].ID, p.ID)
	}

	again := EnsureProducts(ctx, gw, nil, items)
	require.True(t, again.Skipped)
	require.Empty(t, again.Results)
	require.Equal(t, len(items), gw.Len(storefront.ProductCollection))
}

func TestEnsureProductsSkipsNonEmptyCollection(t *testing.T) {
	ctx := context.Background()
	gw := docstore.NewMemoryGateway()
	_, err := service.New(gw).CreateProduct(ctx, storefront.Product{Title: "Existing", Category: "Plants"})
	require.NoError(t, err)

	report := EnsureProducts(ctx, gw, nil, DemoProducts())
	require.True(t, report.Skipped)
	require.Equal(t, 1, gw.Len(storefront.ProductCollection))
}

func TestEnsureProductsSkipsUnavailableStore(t *testing.T) {
	report := EnsureProducts(context.Background(), docstore.Instrument(docstore.Unavailable(nil)), nil, DemoProducts())
	require.True(t, report.Skipped)
	require.Contains(t, report.Reason, "unavailable")
}

// failingGateway accepts reads but rejects every other insert.
type failingGateway struct {
	*docstore.MemoryGateway
	calls int
}

func (f *failingGateway) Insert(ctx context.Context, collection string, doc any) (string, error) {
	f.calls++
	if f.calls%2 == 0 {
		return "", errors.New("write conflict")
	}
	return f.MemoryGateway.Insert(ctx, collection, doc)
}

func TestEnsureProductsSwallowsItemFailures(t *testing.T) {
	gw := &failingGateway{MemoryGateway: docstore.NewMemoryGateway()}
	items := DemoProducts()[:4]
	before := testutil.ToFloat64(metrics.SeedItems.WithLabelValues("failed"))

	report := EnsureProducts(context.Background(), gw, nil, items)
	require.False(t, report.Skipped)
	require.Len(t, report.Results, 4)
	require.Equal(t, 2, report.Inserted())
	require.Error(t, report.Results[1].Err)
	require.Empty(t, report.Results[1].ID)
	require.Equal(t, 2, gw.Len(storefront.ProductCollection))
	require.Equal(t, before+2, testutil.ToFloat64(metrics.SeedItems.WithLabelValues("failed")))
}

func TestEnsureProductsRespectsRedisLock(t *testing.T) {
	m, err := mr.Run()
	require.NoError(t, err)
	defer m.Close()

	ctx := context.Background()
	client := redis.NewClient(&redis.Options{Addr: m.Addr()})
	locker := NewRedisLocker(client)

	// someone else holds the lock
	require.NoError(t, m.Set(lockKey, "other-replica"))
	gw := docstore.NewMemoryGateway()
	report := EnsureProducts(ctx, gw, locker, DemoProducts())
	require.True(t, report.Skipped)
	require.Equal(t, 0, gw.Len(storefront.ProductCollection))

	// lock expires; this replica seeds and releases its own lock
	m.Del(lockKey)
	report = EnsureProducts(ctx, gw, locker, DemoProducts())
	require.False(t, report.Skipped)
	require.False(t, m.Exists(lockKey))
}

func TestRedisLockerTokenCheckedRelease(t *testing.T) {
	m, err := mr.Run()
	require.NoError(t, err)
	defer m.Close()

	ctx := context.Background()
	locker := NewRedisLocker(redis.NewClient(&redis.Options{Addr: m.Addr()}))
	require.Nil(t, NewRedisLocker(nil))

	token, ok, err := locker.TryLock(ctx, "k", time.Second)
	require.NoError(t, err)
	require.True(t, ok)

	_, ok, err = locker.TryLock(ctx, "k", time.Second)
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, locker.Release(ctx, "k", "wrong-token"))
	require.True(t, m.Exists("k"))
	require.NoError(t, locker.Release(ctx, "k", token))
	require.False(t, m.Exists("k"))

	_, _, err = locker.TryLock(ctx, "", time.Second)
	require.Error(t, err)
}
