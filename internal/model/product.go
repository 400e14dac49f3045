package model

// Product is a row in the read-only `products` catalog. Cart and wishlist
// entries reference products by SKU without a foreign key, so a product may
// disappear from the catalog while historical item rows still name it.
type Product struct {
	ID          uint64  `json:"-"`
	SKU         string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	ImageURL    string  `json:"image_url,omitempty"`
}
