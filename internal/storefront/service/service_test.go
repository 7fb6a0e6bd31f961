package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/florist-store/florist-api/internal/docstore"
	"github.com/florist-store/florist-api/internal/storefront"
)

func strp(s string) *string { return &s }

func seedCatalog(t *testing.T, svc Service) map[string]string {
	t.Helper()
	ids := map[string]string{}
	for _, p := range []storefront.Product{
		{Title: "Classic Red Roses", Description: strp("Twelve long-stem roses"), Price: 59, Category: "Bestsellers", Tags: []string{"romance"}, InStock: true},
		{Title: "Sunflower Smile", Price: 42, Category: "Bouquets", Tags: []string{"summer"}, InStock: true},
		{Title: "Blush Garden", Price: 64, Category: "Bestsellers", Tags: []string{"Rosebud", "pastel"}, InStock: true},
		{Title: "Snake Plant", Description: strp("Low-maintenance greenery"), Price: 35, Category: "Plants", InStock: true},
	} {
		id, err := svc.CreateProduct(context.Background(), p)
		require.NoError(t, err)
		ids[p.Title] = id
	}
	return ids
}

func titles(ps []storefront.Product) []string {
	out := make([]string, 0, len(ps))
	for _, p := range ps {
		out = append(out, p.Title)
	}
	return out
}

func TestProductFilterBSON(t *testing.T) {
	require.Equal(t, bson.M{}, ProductFilter{}.BSON())

	f := ProductFilter{Category: "Plants", Query: "a.b"}.BSON()
	require.Equal(t, "Plants", f["category"])
	or, ok := f["$or"].(bson.A)
	require.True(t, ok)
	require.Len(t, or, 3)
	require.Equal(t, bson.M{"title": bson.M{"$regex": `a\.b`, "$options": "i"}}, or[0])
}

func TestCreateAndListProducts(t *testing.T) {
	svc := New(docstore.NewMemoryGateway())
	ids := seedCatalog(t, svc)

	all, err := svc.ListProducts(context.Background(), ProductFilter{Limit: DefaultProductLimit})
	require.NoError(t, err)
	require.Len(t, all, 4)

	first := all[0]
	require.Equal(t, ids["Classic Red Roses"], first.ID)
	require.Equal(t, 59.0, first.Price)
	require.Equal(t, "Twelve long-stem roses", *first.Description)
	require.Equal(t, []string{"romance"}, first.Tags)
	require.True(t, first.InStock)
	require.False(t, first.CreatedAt.IsZero())
	require.WithinDuration(t, time.Now(), first.CreatedAt, time.Minute)

	snake := all[3]
	require.NotNil(t, snake.Tags)
	require.Empty(t, snake.Tags)
}

func TestListProductsByCategory(t *testing.T) {
	svc := New(docstore.NewMemoryGateway())
	seedCatalog(t, svc)

	got, err := svc.ListProducts(context.Background(), ProductFilter{Category: "Bestsellers"})
	require.NoError(t, err)
	require.Equal(t, []string{"Classic Red Roses", "Blush Garden"}, titles(got))

	got, err = svc.ListProducts(context.Background(), ProductFilter{Category: "bestsellers"})
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestListProductsSearch(t *testing.T) {
	svc := New(docstore.NewMemoryGateway())
	seedCatalog(t, svc)

	got, err := svc.ListProducts(context.Background(), ProductFilter{Query: "rose"})
	require.NoError(t, err)
	require.Equal(t, []string{"Classic Red Roses", "Blush Garden"}, titles(got))

	got, err = svc.ListProducts(context.Background(), ProductFilter{Query: "GREENERY"})
	require.NoError(t, err)
	require.Equal(t, []string{"Snake Plant"}, titles(got))

	got, err = svc.ListProducts(context.Background(), ProductFilter{Query: "rose", Category: "Bouquets"})
	require.NoError(t, err)
	require.Empty(t, got)

	// metacharacters are matched literally
	got, err = svc.ListProducts(context.Background(), ProductFilter{Query: "(roses"})
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestListProductsLimit(t *testing.T) {
	svc := New(docstore.NewMemoryGateway())
	seedCatalog(t, svc)

	got, err := svc.ListProducts(context.Background(), ProductFilter{Limit: 2})
	require.NoError(t, err)
	require.Len(t, got, 2)
}

func TestCreateAndListOrders(t *testing.T) {
	svc := New(docstore.NewMemoryGateway())
	order := storefront.Order{
		Items: []storefront.OrderItem{
			{ProductID: "p1", Title: "Classic Red Roses", Price: 24, Quantity: 1},
			{ProductID: "p2", Title: "Card", Price: 24, Quantity: 1, ImageURL: strp("https://cdn.example.com/card.jpg")},
		},
		Customer: storefront.CustomerInfo{
			Name: "Ada Lovelace", Email: "ada@example.com", AddressLine1: "12 Bloom St",
			AddressLine2: strp("Apt 4"), City: "Portland", State: "OR", PostalCode: "97201",
		},
		Notes:       strp("Leave at the door"),
		Subtotal:    48,
		DeliveryFee: 5,
		Total:       53,
	}

	id, err := svc.CreateOrder(context.Background(), order)
	require.NoError(t, err)

	got, err := svc.ListOrders(context.Background(), DefaultOrderLimit)
	require.NoError(t, err)
	require.Len(t, got, 1)

	o := got[0]
	require.Equal(t, id, o.ID)
	require.Equal(t, storefront.DefaultOrderStatus, o.Status)
	require.Equal(t, 48.0, o.Subtotal)
	require.Equal(t, 5.0, o.DeliveryFee)
	require.Equal(t, 53.0, o.Total)
	require.Equal(t, order.Items, o.Items)
	require.Equal(t, order.Customer, o.Customer)
	require.Equal(t, "Leave at the door", *o.Notes)
}

func TestOrderTotalsAreNotRecomputed(t *testing.T) {
	svc := New(docstore.NewMemoryGateway())
	_, err := svc.CreateOrder(context.Background(), storefront.Order{Items: []storefront.OrderItem{}, Status: "gift-wrapped", Subtotal: 10, DeliveryFee: 5, Total: 1})
	require.NoError(t, err)

	got, err := svc.ListOrders(context.Background(), 0)
	require.NoError(t, err)
	require.Equal(t, 1.0, got[0].Total)
	require.Equal(t, "gift-wrapped", got[0].Status)
	require.NotNil(t, got[0].Items)
}

func TestServicePropagatesStoreErrors(t *testing.T) {
	svc := New(docstore.Unavailable(nil))
	_, err := svc.CreateProduct(context.Background(), storefront.Product{Title: "x"})
	require.True(t, errors.Is(err, docstore.ErrUnavailable))

	_, err = svc.ListOrders(context.Background(), 10)
	require.True(t, errors.Is(err, docstore.ErrUnavailable))

	mem := docstore.NewMemoryGateway()
	mem.FailReads = errors.New("cursor killed")
	_, err = New(mem).ListProducts(context.Background(), ProductFilter{})
	require.ErrorIs(t, err, docstore.ErrRead)
}
