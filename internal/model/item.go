package model

import "time"

// Item is a single cart line or wishlist entry. Both collections share the
// same shape; Quantity is only meaningful for cart rows and stays zero for
// wishlist rows. The (UserID, ProductSKU) pair is the natural key: the
// tables carry a unique index over it, so a second add for the same product
// merges into the existing row instead of creating another one.
type Item struct {
	ID         uint64    `json:"id"`
	UserID     uint64    `json:"-"`
	ProductSKU string    `json:"product_id"`
	Name       string    `json:"name"`
	Price      float64   `json:"price"`
	Quantity   uint32    `json:"quantity,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}
