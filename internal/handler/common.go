package handler // handler defines http handlers

import (
	"context" // context carries deadlines into the store layer
	"errors"  // errors provides sentinel values used in getUserID
	"strconv" // strconv converts strings to numeric types
	"time"    // time bounds store calls

	"github.com/labstack/echo/v4" // echo defines request context types

	"github.com/arvele/storefront-api/internal/middleware" // context keys set by the auth gate
	"github.com/arvele/storefront-api/internal/model"
	"github.com/arvele/storefront-api/internal/repository"
)

// Store interfaces consumed by the handlers. The SQL repositories satisfy
// them; tests substitute in-memory fakes.

// UserStore persists credentials and identity lookups.
type UserStore interface {
	Create(ctx context.Context, username, email, password string, cost int) (model.User, error)
	GetByEmail(ctx context.Context, email string) (model.User, error)
}

// ItemStore persists one owned-item collection (cart or wishlist).
type ItemStore interface {
	Upsert(ctx context.Context, ownerID uint64, in repository.ItemInput) (model.Item, bool, error)
	ListByOwner(ctx context.Context, ownerID uint64) ([]model.Item, error)
	Delete(ctx context.Context, ownerID, itemID uint64) error
}

// ProductStore reads the catalog.
type ProductStore interface {
	List(ctx context.Context) ([]model.Product, error)
}

// getUserID extracts the authenticated user id the auth gate stored in the
// echo context and converts it to uint64.
func getUserID(c echo.Context) (uint64, error) {
	v := c.Get(middleware.CtxUserID)
	switch t := v.(type) {
	case uint64:
		return t, nil
	case int:
		return uint64(t), nil
	case int64:
		return uint64(t), nil
	case float64:
		return uint64(t), nil
	case string:
		if n, err := strconv.ParseUint(t, 10, 64); err == nil {
			return n, nil
		}
	}
	return 0, errors.New("invalid user_id in context")
}

// storeCtx bounds a store call the same way across handlers.
func storeCtx(c echo.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request().Context(), 5*time.Second)
}
