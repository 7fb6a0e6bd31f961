// Package storefront defines the florist catalog and order records and the
// request shapes the API accepts for them.
package storefront

import "time"

// Collection names. Each record type is stored in the collection named after it.
const (
	ProductCollection = "product"
	OrderCollection   = "order"
)

// DefaultOrderStatus is assigned when a new order does not name a status.
const DefaultOrderStatus = "pending"

// Product is a catalog entry as returned by the API.
type Product struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	Price       float64   `json:"price"`
	Category    string    `json:"category"`
	ImageURL    *string   `json:"image_url"`
	Tags        []string  `json:"tags"`
	InStock     bool      `json:"in_stock"`
	SKU         *string   `json:"sku,omitempty"`
	StockQty    *int      `json:"stock_qty,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// OrderItem snapshots the product title and price at order time so that
// later catalog changes do not alter historical orders.
type OrderItem struct {
	ProductID string  `json:"product_id"`
	Title     string  `json:"title"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	ImageURL  *string `json:"image_url"`
}

type CustomerInfo struct {
	Name         string  `json:"name"`
	Email        string  `json:"email"`
	Phone        *string `json:"phone"`
	AddressLine1 string  `json:"address_line1"`
	AddressLine2 *string `json:"address_line2"`
	City         string  `json:"city"`
	State        string  `json:"state"`
	PostalCode   string  `json:"postal_code"`
}

// Order is a placed order. Totals are stored exactly as submitted.
type Order struct {
	ID          string       `json:"id"`
	Items       []OrderItem  `json:"items"`
	Customer    CustomerInfo `json:"customer"`
	Notes       *string      `json:"notes"`
	Status      string       `json:"status"`
	Subtotal    float64      `json:"subtotal"`
	DeliveryFee float64      `json:"delivery_fee"`
	Total       float64      `json:"total"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}
