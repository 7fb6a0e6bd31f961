package seed

import "github.com/florist-store/florist-api/internal/storefront"

func text(s string) *string { return &s }

// DemoProducts is the catalog inserted into an empty product collection.
func DemoProducts() []storefront.Product {
	return []storefront.Product{
		{
			Title:       "Classic Red Rose Bouquet",
			Description: text("Twelve long-stem red roses hand-tied with seasonal greenery."),
			Price:       59.99,
			Category:    "Bestsellers",
			ImageURL:    text("https://images.unsplash.com/photo-1518895949257-7621c3c786d7"),
			Tags:        []string{"roses", "romance", "anniversary"},
			InStock:     true,
		},
		{
			Title:       "Sunshine Sunflower Bunch",
			Description: text("Bright sunflowers paired with chamomile daisies."),
			Price:       44.5,
			Category:    "Bouquets",
			ImageURL:    text("https://images.unsplash.com/photo-1470509037663-253afd7f0f51"),
			Tags:        []string{"sunflowers", "birthday", "cheerful"},
			InStock:     true,
		},
		{
			Title:       "Blush Peony Posy",
			Description: text("Soft pink peonies with spray roses and eucalyptus."),
			Price:       72,
			Category:    "Bestsellers",
			ImageURL:    text("https://images.unsplash.com/photo-1563241527-3004b7be0ffd"),
			Tags:        []string{"peonies", "pastel", "wedding"},
			InStock:     true,
		},
		{
			Title:       "White Orchid in Ceramic Pot",
			Description: text("A two-stem phalaenopsis orchid that blooms for months."),
			Price:       65,
			Category:    "Plants",
			ImageURL:    text("https://images.unsplash.com/photo-1566907225472-514215c9e5a3"),
			Tags:        []string{"orchid", "indoor", "sympathy"},
			InStock:     true,
		},
		{
			Title:       "Lavender Field Bundle",
			Description: text("Dried French lavender, fragrant for a year."),
			Price:       28,
			Category:    "Dried Flowers",
			Tags:        []string{"lavender", "dried", "calming"},
			InStock:     false,
		},
		{
			Title:       "Chocolate & Roses Gift Box",
			Description: text("Six red roses with a box of artisan truffles."),
			Price:       49,
			Category:    "Gifts",
			ImageURL:    text("https://images.unsplash.com/photo-1549465220-1a8b9238cd48"),
			Tags:        []string{"roses", "chocolate", "valentine"},
			InStock:     true,
		},
	}
}
