package storefront

// Request bodies. Fields that may legitimately be zero are pointers so that
// "required" means "present". Unknown fields are ignored.

type ProductRequest struct {
	Title       string   `json:"title" binding:"required"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price" binding:"required,gte=0"`
	Category    string   `json:"category" binding:"required"`
	ImageURL    *string  `json:"image_url"`
	Tags        []string `json:"tags"`
	InStock     *bool    `json:"in_stock"`
	SKU         *string  `json:"sku"`
	StockQty    *int     `json:"stock_qty" binding:"omitempty,gte=0"`
}

// Product applies defaults: empty tag list and in_stock=true.
func (r ProductRequest) Product() Product {
	p := Product{
		Title:       r.Title,
		Description: r.Description,
		Category:    r.Category,
		ImageURL:    r.ImageURL,
		Tags:        r.Tags,
		InStock:     true,
		SKU:         r.SKU,
		StockQty:    r.StockQty,
	}
	if r.Price != nil {
		p.Price = *r.Price
	}
	if p.Tags == nil {
		p.Tags = []string{}
	}
	if r.InStock != nil {
		p.InStock = *r.InStock
	}
	return p
}

type OrderItemRequest struct {
	ProductID string   `json:"product_id" binding:"required"`
	Title     string   `json:"title" binding:"required"`
	Price     *float64 `json:"price" binding:"required,gte=0"`
	Quantity  int      `json:"quantity" binding:"required,gte=1"`
	ImageURL  *string  `json:"image_url"`
}

type CustomerRequest struct {
	Name         string  `json:"name" binding:"required"`
	Email        string  `json:"email" binding:"required"`
	Phone        *string `json:"phone"`
	AddressLine1 string  `json:"address_line1" binding:"required"`
	AddressLine2 *string `json:"address_line2"`
	City         string  `json:"city" binding:"required"`
	State        string  `json:"state" binding:"required"`
	PostalCode   string  `json:"postal_code" binding:"required"`
}

// OrderRequest requires the items list to be present; it may be empty.
type OrderRequest struct {
	Items       []OrderItemRequest `json:"items" binding:"required,dive"`
	Customer    *CustomerRequest   `json:"customer" binding:"required"`
	Notes       *string            `json:"notes"`
	Status      string             `json:"status"`
	Subtotal    *float64           `json:"subtotal" binding:"required,gte=0"`
	DeliveryFee *float64           `json:"delivery_fee" binding:"omitempty,gte=0"`
	Total       *float64           `json:"total" binding:"required,gte=0"`
}

// Order copies the request into an Order, applying the pending status and
// zero delivery fee defaults. Totals are not recomputed.
func (r OrderRequest) Order() Order {
	o := Order{
		Items:  make([]OrderItem, 0, len(r.Items)),
		Notes:  r.Notes,
		Status: r.Status,
	}
	for _, it := range r.Items {
		item := OrderItem{
			ProductID: it.ProductID,
			Title:     it.Title,
			Quantity:  it.Quantity,
			ImageURL:  it.ImageURL,
		}
		if it.Price != nil {
			item.Price = *it.Price
		}
		o.Items = append(o.Items, item)
	}
	if r.Customer != nil {
		c := r.Customer
		o.Customer = CustomerInfo{
			Name:         c.Name,
			Email:        c.Email,
			Phone:        c.Phone,
			AddressLine1: c.AddressLine1,
			AddressLine2: c.AddressLine2,
			City:         c.City,
			State:        c.State,
			PostalCode:   c.PostalCode,
		}
	}
	if o.Status == "" {
		o.Status = DefaultOrderStatus
	}
	if r.Subtotal != nil {
		o.Subtotal = *r.Subtotal
	}
	if r.DeliveryFee != nil {
		o.DeliveryFee = *r.DeliveryFee
	}
	if r.Total != nil {
		o.Total = *r.Total
	}
	return o
}
