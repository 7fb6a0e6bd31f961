package service

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/florist-store/florist-api/internal/storefront"
)

// BSON representations of the storefront records. Optional fields are
// stored as null when absent; sku and stock_qty are omitted entirely.

type productDocument struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Title       string             `bson:"title"`
	Description *string            `bson:"description"`
	Price       float64            `bson:"price"`
	Category    string             `bson:"category"`
	ImageURL    *string            `bson:"image_url"`
	Tags        []string           `bson:"tags"`
	InStock     bool               `bson:"in_stock"`
	SKU         *string            `bson:"sku,omitempty"`
	StockQty    *int               `bson:"stock_qty,omitempty"`
	CreatedAt   time.Time          `bson:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at"`
}

type orderItemDocument struct {
	ProductID string  `bson:"product_id"`
	Title     string  `bson:"title"`
	Price     float64 `bson:"price"`
	Quantity  int     `bson:"quantity"`
	ImageURL  *string `bson:"image_url"`
}

type customerDocument struct {
	Name         string  `bson:"name"`
	Email        string  `bson:"email"`
	Phone        *string `bson:"phone"`
	AddressLine1 string  `bson:"address_line1"`
	AddressLine2 *string `bson:"address_line2"`
	City         string  `bson:"city"`
	State        string  `bson:"state"`
	PostalCode   string  `bson:"postal_code"`
}

type orderDocument struct {
	ID          primitive.ObjectID  `bson:"_id,omitempty"`
	Items       []orderItemDocument `bson:"items"`
	Customer    customerDocument    `bson:"customer"`
	Notes       *string             `bson:"notes"`
	Status      string              `bson:"status"`
	Subtotal    float64             `bson:"subtotal"`
	DeliveryFee float64             `bson:"delivery_fee"`
	Total       float64             `bson:"total"`
	CreatedAt   time.Time           `bson:"created_at"`
	UpdatedAt   time.Time           `bson:"updated_at"`
}

func toProductDocument(p storefront.Product, now time.Time) productDocument {
	tags := p.Tags
	if tags == nil {
		tags = []string{}
	}
	return productDocument{
		Title:       p.Title,
		Description: p.Description,
		Price:       p.Price,
		Category:    p.Category,
		ImageURL:    p.ImageURL,
		Tags:        tags,
		InStock:     p.InStock,
		SKU:         p.SKU,
		StockQty:    p.StockQty,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func toProduct(d productDocument) storefront.Product {
	tags := d.Tags
	if tags == nil {
		tags = []string{}
	}
	return storefront.Product{
		ID:          d.ID.Hex(),
		Title:       d.Title,
		Description: d.Description,
		Price:       d.Price,
		Category:    d.Category,
		ImageURL:    d.ImageURL,
		Tags:        tags,
		InStock:     d.InStock,
		SKU:         d.SKU,
		StockQty:    d.StockQty,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

func toOrderDocument(o storefront.Order, now time.Time) orderDocument {
	doc := orderDocument{
		Items: make([]orderItemDocument, len(o.Items)),
		Customer: customerDocument{
			Name:         o.Customer.Name,
			Email:        o.Customer.Email,
			Phone:        o.Customer.Phone,
			AddressLine1: o.Customer.AddressLine1,
			AddressLine2: o.Customer.AddressLine2,
			City:         o.Customer.City,
			State:        o.Customer.State,
			PostalCode:   o.Customer.PostalCode,
		},
		Notes:       o.Notes,
		Status:      o.Status,
		Subtotal:    o.Subtotal,
		DeliveryFee: o.DeliveryFee,
		Total:       o.Total,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	for i, it := range o.Items {
		doc.Items[i] = orderItemDocument{
			ProductID: it.ProductID,
			Title:     it.Title,
			Price:     it.Price,
			Quantity:  it.Quantity,
			ImageURL:  it.ImageURL,
		}
	}
	return doc
}

func toOrder(d orderDocument) storefront.Order {
	items := make([]storefront.OrderItem, len(d.Items))
	for i, it := range d.Items {
		items[i] = storefront.OrderItem{
			ProductID: it.ProductID,
			Title:     it.Title,
			Price:     it.Price,
			Quantity:  it.Quantity,
			ImageURL:  it.ImageURL,
		}
	}
	return storefront.Order{
		ID:    d.ID.Hex(),
		Items: items,
		Customer: storefront.CustomerInfo{
			Name:         d.Customer.Name,
			Email:        d.Customer.Email,
			Phone:        d.Customer.Phone,
			AddressLine1: d.Customer.AddressLine1,
			AddressLine2: d.Customer.AddressLine2,
			City:         d.Customer.City,
			State:        d.Customer.State,
			PostalCode:   d.Customer.PostalCode,
		},
		Notes:       d.Notes,
		Status:      d.Status,
		Subtotal:    d.Subtotal,
		DeliveryFee: d.DeliveryFee,
		Total:       d.Total,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}
