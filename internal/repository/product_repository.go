package repository

import (
	"context"
	"database/sql"

	"github.com/arvele/storefront-api/internal/model"
)

type ProductRepo struct{ DB *sql.DB }

func NewProductRepo(db *sql.DB) *ProductRepo { return &ProductRepo{DB: db} }

// List returns the whole catalog ordered by SKU. The catalog is read-only
// from this service's perspective.
func (r *ProductRepo) List(ctx context.Context) ([]model.Product, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT id,sku,name,description,price,image_url FROM products ORDER BY sku ASC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := make([]model.Product, 0)
	for rows.Next() {
		var p model.Product
		if err := rows.Scan(&p.ID, &p.SKU, &p.Name, &p.Description, &p.Price, &p.ImageURL); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

// demo catalog inserted on first boot so a fresh database has something to
// browse
var seedProducts = []model.Product{
	{SKU: "prod-001", Name: "Premium Coffee Grinder", Price: 49.99, Description: "Grind your beans perfectly every time."},
	{SKU: "prod-002", Name: "Smart Watch X90", Price: 199.99, Description: "Fitness tracking and notifications."},
	{SKU: "prod-003", Name: "Ergonomic Desk Chair", Price: 349.00, Description: "Support your back during long sessions."},
	{SKU: "prod-004", Name: "Noise-Cancelling Headphones", Price: 129.99, Description: "Immersive sound experience."},
	{SKU: "prod-005", Name: "Mechanical Keyboard", Price: 85.50, Description: "Tactile switches for typing enthusiasts."},
}

// EnsureSeed populates the catalog with the demo products when the table is
// empty. INSERT IGNORE keeps it idempotent when several instances boot at
// once.
func (r *ProductRepo) EnsureSeed(ctx context.Context) error {
	var n int
	if err := r.DB.QueryRowContext(ctx, "SELECT COUNT(*) FROM products").Scan(&n); err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	for _, p := range seedProducts {
		if _, err := r.DB.ExecContext(ctx,
			"INSERT IGNORE INTO products (sku, name, description, price, image_url) VALUES (?,?,?,?,?)",
			p.SKU, p.Name, p.Description, p.Price, p.ImageURL); err != nil {
			return err
		}
	}
	return nil
}
