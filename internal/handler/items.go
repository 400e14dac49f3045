package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/arvele/storefront-api/internal/queue"
	"github.com/arvele/storefront-api/internal/repository"
)

// Kind names the two owned-item collections. Both are served by the same
// handler; the kind only decides quantity semantics, response wording and
// the duplicate-add outcome.
type Kind string

const (
	KindCart     Kind = "cart"
	KindWishlist Kind = "wishlist"
)

// PublishFunc forwards a cart activity event to the broker. It may be nil
// (events disabled) and is always best-effort: a publish failure never
// fails the request.
type PublishFunc func(c echo.Context, ev queue.CartActivityEvent)

// ItemsHandler serves one owned-item collection for the authenticated user.
// The auth gate runs before every method, so the owner id always comes from
// verified claims, never from the request body.
type ItemsHandler struct {
	Kind    Kind
	Items   ItemStore
	Publish PublishFunc
}

func NewCartHandler(items ItemStore, publish PublishFunc) *ItemsHandler {
	if items == nil {
		panic("nil store passed to NewCartHandler")
	}
	return &ItemsHandler{Kind: KindCart, Items: items, Publish: publish}
}

func NewWishlistHandler(items ItemStore) *ItemsHandler {
	if items == nil {
		panic("nil store passed to NewWishlistHandler")
	}
	return &ItemsHandler{Kind: KindWishlist, Items: items}
}

type addItemReq struct {
	ProductID string   `json:"id"`
	Name      string   `json:"name"`
	Price     *float64 `json:"price"`
	Quantity  *uint32  `json:"quantity"`
}

// Add handles POST /api/cart and POST /api/wishlist. Validation happens
// before any store access. The store upsert is a single atomic statement:
// an existing (owner, product) row is merged — quantity incremented for the
// cart, untouched for the wishlist — instead of duplicated.
func (h *ItemsHandler) Add(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var req addItemReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	req.ProductID = strings.TrimSpace(req.ProductID)
	req.Name = strings.TrimSpace(req.Name)
	if req.ProductID == "" || req.Name == "" || req.Price == nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "product id, name and price are required"})
	}

	in := repository.ItemInput{
		ProductSKU: req.ProductID,
		Name:       req.Name,
		Price:      *req.Price,
	}
	if h.Kind == KindCart {
		in.Quantity = 1
		if req.Quantity != nil {
			if *req.Quantity < 1 {
				return c.JSON(http.StatusBadRequest, echo.Map{"error": "quantity must be at least 1"})
			}
			in.Quantity = *req.Quantity
		}
	}

	ctx, cancel := storeCtx(c)
	defer cancel()

	item, created, err := h.Items.Upsert(ctx, userID, in)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "add item failed"})
	}

	if h.Kind == KindCart {
		if h.Publish != nil {
			h.Publish(c, queue.CartActivityEvent{
				UserID:     userID,
				ProductSKU: item.ProductSKU,
				Action:     "add",
				Quantity:   item.Quantity,
			})
		}
		msg := "item added to cart"
		if !created {
			msg = "cart quantity updated"
		}
		return c.JSON(http.StatusOK, echo.Map{"msg": msg, "item": item})
	}

	// Wishlist: a repeated add is not an error, the existing entry comes
	// back with a duplicate message.
	if !created {
		return c.JSON(http.StatusOK, echo.Map{"msg": "item already in wishlist", "item": item})
	}
	return c.JSON(http.StatusCreated, echo.Map{"msg": "item added to wishlist", "item": item})
}

// List handles GET /api/cart and GET /api/wishlist. Only the caller's own
// items come back: cart oldest first, wishlist newest first. An empty
// collection is an empty array, not an error.
func (h *ItemsHandler) List(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	ctx, cancel := storeCtx(c)
	defer cancel()

	items, err := h.Items.ListByOwner(ctx, userID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "list items failed"})
	}
	return c.JSON(http.StatusOK, items)
}

// Remove handles DELETE /api/cart/:id and DELETE /api/wishlist/:id. A
// malformed id fails fast before touching the store. The delete is scoped
// to the authenticated owner, so a valid id belonging to someone else is a
// 404 exactly like a nonexistent one.
func (h *ItemsHandler) Remove(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	itemID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || itemID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid item id"})
	}

	ctx, cancel := storeCtx(c)
	defer cancel()

	if err := h.Items.Delete(ctx, userID, itemID); err != nil {
		if err == repository.ErrItemNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "item not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "remove item failed"})
	}

	if h.Kind == KindCart {
		if h.Publish != nil {
			h.Publish(c, queue.CartActivityEvent{UserID: userID, Action: "remove"})
		}
		return c.JSON(http.StatusOK, echo.Map{"msg": "item removed from cart"})
	}
	return c.JSON(http.StatusOK, echo.Map{"msg": "item removed from wishlist", "removed_id": itemID})
}
