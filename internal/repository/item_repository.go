package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/arvele/storefront-api/internal/model"
)

// ItemInput carries the validated fields for an add operation. Quantity is
// ignored for the wishlist.
type ItemInput struct {
	ProductSKU string
	Name       string
	Price      float64
	Quantity   uint32
}

// ItemRepo persists one owned-item collection. Cart and wishlist rows share
// the same shape, so a single repo type covers both; the constructor fixes
// the table, whether rows carry a quantity, and the listing order. All
// mutations are scoped to the owning user — an item id alone is never
// enough to touch a row.
type ItemRepo struct {
	db           *sql.DB
	table        string
	withQuantity bool
	newestFirst  bool
}

// NewCartRepo returns the repo for cart lines: quantities accumulate on
// merge and listings are oldest first.
func NewCartRepo(db *sql.DB) *ItemRepo {
	return &ItemRepo{db: db, table: "cart_items", withQuantity: true}
}

// NewWishlistRepo returns the repo for wishlist entries: a repeated add is
// a no-op and listings are newest first.
func NewWishlistRepo(db *sql.DB) *ItemRepo {
	return &ItemRepo{db: db, table: "wishlist_items", newestFirst: true}
}

// Upsert adds an item for the owner, merging into the existing row when the
// (user_id, product_sku) natural key is already present. The whole
// lookup-then-upsert is one INSERT ... ON DUPLICATE KEY UPDATE statement,
// so two concurrent adds for the same pair serialize inside MySQL and can
// never produce two rows. The returned bool is true when a new row was
// created. For the cart the stored quantity is incremented by the requested
// amount; for the wishlist the existing row is returned unchanged.
//
// The LAST_INSERT_ID(id) trick makes res.LastInsertId() yield the row id on
// the duplicate path too, so the stored row can be read back either way.
func (r *ItemRepo) Upsert(ctx context.Context, ownerID uint64, in ItemInput) (model.Item, bool, error) {
	var (
		res sql.Result
		err error
	)
	if r.withQuantity {
		res, err = r.db.ExecContext(ctx, fmt.Sprintf(
			`INSERT INTO %s (user_id, product_sku, name, price, quantity) VALUES (?,?,?,?,?)
			 ON DUPLICATE KEY UPDATE quantity = quantity + VALUES(quantity), id = LAST_INSERT_ID(id)`,
			r.table), ownerID, in.ProductSKU, in.Name, in.Price, in.Quantity)
	} else {
		res, err = r.db.ExecContext(ctx, fmt.Sprintf(
			`INSERT INTO %s (user_id, product_sku, name, price) VALUES (?,?,?,?)
			 ON DUPLICATE KEY UPDATE id = LAST_INSERT_ID(id)`,
			r.table), ownerID, in.ProductSKU, in.Name, in.Price)
	}
	if err != nil {
		return model.Item{}, false, err
	}
	// MySQL reports 1 affected row for an insert, 2 for an update and 0 when
	// the duplicate path left the row unchanged (wishlist re-add).
	affected, err := res.RowsAffected()
	if err != nil {
		return model.Item{}, false, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return model.Item{}, false, err
	}
	item, err := r.getByID(ctx, ownerID, uint64(id))
	if err != nil {
		return model.Item{}, false, err
	}
	return item, affected == 1, nil
}

// ListByOwner returns every item owned by ownerID in the collection's
// documented order: cart oldest first, wishlist newest first. An owner with
// no items gets an empty slice, not an error.
func (r *ItemRepo) ListByOwner(ctx context.Context, ownerID uint64) ([]model.Item, error) {
	order := "ASC"
	if r.newestFirst {
		order = "DESC"
	}
	rows, err := r.db.QueryContext(ctx, fmt.Sprintf(
		`SELECT id,user_id,product_sku,name,price,%s,created_at FROM %s
		 WHERE user_id=? ORDER BY created_at %s, id %s`,
		r.quantityColumn(), r.table, order, order), ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Item, 0)
	for rows.Next() {
		var it model.Item
		if err := rows.Scan(&it.ID, &it.UserID, &it.ProductSKU, &it.Name, &it.Price, &it.Quantity, &it.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

// Delete removes the item only when both the id matches and the row belongs
// to ownerID. Zero affected rows — wrong id or someone else's item — comes
// back as ErrItemNotFound either way.
func (r *ItemRepo) Delete(ctx context.Context, ownerID, itemID uint64) error {
	res, err := r.db.ExecContext(ctx, fmt.Sprintf(
		"DELETE FROM %s WHERE id=? AND user_id=?", r.table), itemID, ownerID)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrItemNotFound
	}
	return nil
}

func (r *ItemRepo) getByID(ctx context.Context, ownerID, id uint64) (model.Item, error) {
	var it model.Item
	err := r.db.QueryRowContext(ctx, fmt.Sprintf(
		"SELECT id,user_id,product_sku,name,price,%s,created_at FROM %s WHERE id=? AND user_id=? LIMIT 1",
		r.quantityColumn(), r.table), id, ownerID).
		Scan(&it.ID, &it.UserID, &it.ProductSKU, &it.Name, &it.Price, &it.Quantity, &it.CreatedAt)
	if err == sql.ErrNoRows {
		return model.Item{}, ErrItemNotFound
	}
	return it, err
}

// quantityColumn lets both tables share one scan shape; wishlist rows
// select a constant zero.
func (r *ItemRepo) quantityColumn() string {
	if r.withQuantity {
		return "quantity"
	}
	return "0"
}
