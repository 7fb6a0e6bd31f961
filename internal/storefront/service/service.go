package service

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/florist-store/florist-api/internal/docstore"
	"github.com/florist-store/florist-api/internal/storefront"
)

const (
	DefaultProductLimit int64 = 100
	DefaultOrderLimit   int64 = 50
)

// ProductFilter narrows a product listing. Zero values mean "no constraint".
type ProductFilter struct {
	Category string
	Query    string
	Limit    int64
}

// BSON renders the filter as a store query: exact category match AND a
// case-insensitive literal substring match on title, description or any tag.
func (f ProductFilter) BSON() bson.M {
	filter := bson.M{}
	if f.Category != "" {
		filter["category"] = f.Category
	}
	if f.Query != "" {
		pattern := regexp.QuoteMeta(f.Query)
		ci := func() bson.M { return bson.M{"$regex": pattern, "$options": "i"} }
		filter["$or"] = bson.A{
			bson.M{"title": ci()},
			bson.M{"description": ci()},
			bson.M{"tags": bson.M{"$elemMatch": ci()}},
		}
	}
	return filter
}

// Service defines the catalog and order operations used by the handler layer.
type Service interface {
	CreateProduct(ctx context.Context, p storefront.Product) (string, error)
	ListProducts(ctx context.Context, f ProductFilter) ([]storefront.Product, error)
	CreateOrder(ctx context.Context, o storefront.Order) (string, error)
	ListOrders(ctx context.Context, limit int64) ([]storefront.Order, error)
}

// New returns a Service backed by the given document store gateway.
func New(store docstore.Gateway) Service {
	return &storeService{store: store, now: func() time.Time { return time.Now().UTC() }}
}

type storeService struct {
	store docstore.Gateway
	now   func() time.Time
}

func (s *storeService) CreateProduct(ctx context.Context, p storefront.Product) (string, error) {
	return s.store.Insert(ctx, storefront.ProductCollection, toProductDocument(p, s.now()))
}

func (s *storeService) ListProducts(ctx context.Context, f ProductFilter) ([]storefront.Product, error) {
	raws, err := s.store.Query(ctx, storefront.ProductCollection, f.BSON(), f.Limit)
	if err != nil {
		return nil, err
	}
	out := make([]storefront.Product, 0, len(raws))
	for _, raw := range raws {
		var d productDocument
		if err := bson.Unmarshal(raw, &d); err != nil {
			return nil, fmt.Errorf("decode product: %w: %w", docstore.ErrRead, err)
		}
		out = append(out, toProduct(d))
	}
	return out, nil
}

func (s *storeService) CreateOrder(ctx context.Context, o storefront.Order) (string, error) {
	if o.Status == "" {
		o.Status = storefront.DefaultOrderStatus
	}
	return s.store.Insert(ctx, storefront.OrderCollection, toOrderDocument(o, s.now()))
}

func (s *storeService) ListOrders(ctx context.Context, limit int64) ([]storefront.Order, error) {
	raws, err := s.store.Query(ctx, storefront.OrderCollection, bson.M{}, limit)
	if err != nil {
		return nil, err
	}
	out := make([]storefront.Order, 0, len(raws))
	for _, raw := range raws {
		var d orderDocument
		if err := bson.Unmarshal(raw, &d); err != nil {
			return nil, fmt.Errorf("decode order: %w: %w", docstore.ErrRead, err)
		}
		out = append(out, toOrder(d))
	}
	return out, nil
}
