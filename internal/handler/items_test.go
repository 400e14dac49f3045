package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sort"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arvele/storefront-api/internal/middleware"
	"github.com/arvele/storefront-api/internal/model"
	"github.com/arvele/storefront-api/internal/repository"
)

func jsonDecode(rec *httptest.ResponseRecorder, v any) error {
	return json.Unmarshal(rec.Body.Bytes(), v)
}

// fakeItemStore mirrors the SQL repo's contract in memory: one row per
// (owner, sku) natural key, quantity accumulation for the cart, the
// collection's listing order, owner-scoped deletes.
type fakeItemStore struct {
	withQuantity bool
	newestFirst  bool
	nextID       uint64
	clock        time.Time
	items        []model.Item
}

func newFakeCartStore() *fakeItemStore     { return &fakeItemStore{withQuantity: true} }
func newFakeWishlistStore() *fakeItemStore { return &fakeItemStore{newestFirst: true} }

func (f *fakeItemStore) Upsert(_ context.Context, ownerID uint64, in repository.ItemInput) (model.Item, bool, error) {
	for i, it := range f.items {
		if it.UserID == ownerID && it.ProductSKU == in.ProductSKU {
			if f.withQuantity {
				f.items[i].Quantity += in.Quantity
			}
			return f.items[i], false, nil
		}
	}
	f.nextID++
	f.clock = f.clock.Add(time.Second)
	it := model.Item{
		ID:         f.nextID,
		UserID:     ownerID,
		ProductSKU: in.ProductSKU,
		Name:       in.Name,
		Price:      in.Price,
		CreatedAt:  f.clock,
	}
	if f.withQuantity {
		it.Quantity = in.Quantity
	}
	f.items = append(f.items, it)
	return it, true, nil
}

func (f *fakeItemStore) ListByOwner(_ context.Context, ownerID uint64) ([]model.Item, error) {
	out := make([]model.Item, 0)
	for _, it := range f.items {
		if it.UserID == ownerID {
			out = append(out, it)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if f.newestFirst {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

func (f *fakeItemStore) Delete(_ context.Context, ownerID, itemID uint64) error {
	for i, it := range f.items {
		if it.ID == itemID && it.UserID == ownerID {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return nil
		}
	}
	return repository.ErrItemNotFound
}

// ownedCtx builds a request context carrying the identity the auth gate
// would have injected.
func ownedCtx(owner uint64, method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	c, rec := jsonCtx(method, path, body)
	c.Set(middleware.CtxUserID, owner)
	return c, rec
}

func TestCartAdd_DefaultQuantity(t *testing.T) {
	t.Parallel()

	h := NewCartHandler(newFakeCartStore(), nil)
	c, rec := ownedCtx(1, http.MethodPost, "/api/cart", `{"id":"prod-001","name":"Grinder","price":49.99}`)
	require.NoError(t, h.Add(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Msg  string     `json:"msg"`
		Item model.Item `json:"item"`
	}
	require.NoError(t, jsonDecode(rec, &resp))
	assert.Equal(t, "item added to cart", resp.Msg)
	assert.Equal(t, uint32(1), resp.Item.Quantity)
}

func TestCartAdd_MergesQuantities(t *testing.T) {
	t.Parallel()

	store := newFakeCartStore()
	h := NewCartHandler(store, nil)

	c, rec := ownedCtx(1, http.MethodPost, "/api/cart", `{"id":"prod-001","name":"Grinder","price":10,"quantity":1}`)
	require.NoError(t, h.Add(c))
	require.Equal(t, http.StatusOK, rec.Code)

	c, rec = ownedCtx(1, http.MethodPost, "/api/cart", `{"id":"prod-001","name":"Grinder","price":10,"quantity":2}`)
	require.NoError(t, h.Add(c))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "cart quantity updated")

	// One row, summed quantity, original price.
	c, rec = ownedCtx(1, http.MethodGet, "/api/cart", "")
	require.NoError(t, h.List(c))
	var items []model.Item
	require.NoError(t, jsonDecode(rec, &items))
	require.Len(t, items, 1)
	assert.Equal(t, uint32(3), items[0].Quantity)
	assert.Equal(t, float64(10), items[0].Price)
}

func TestItemsAdd_Validation(t *testing.T) {
	t.Parallel()

	store := newFakeCartStore()
	h := NewCartHandler(store, nil)
	for name, body := range map[string]string{
		"missing product id": `{"name":"Grinder","price":10}`,
		"missing name":       `{"id":"prod-001","price":10}`,
		"missing price":      `{"id":"prod-001","name":"Grinder"}`,
		"zero quantity":      `{"id":"prod-001","name":"Grinder","price":10,"quantity":0}`,
	} {
		t.Run(name, func(t *testing.T) {
			c, rec := ownedCtx(1, http.MethodPost, "/api/cart", body)
			require.NoError(t, h.Add(c))
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
	assert.Empty(t, store.items, "validation failures must not reach the store")
}

func TestWishlistAdd_DuplicateIsNotAnError(t *testing.T) {
	t.Parallel()

	store := newFakeWishlistStore()
	h := NewWishlistHandler(store)

	c, rec := ownedCtx(1, http.MethodPost, "/api/wishlist", `{"id":"prod-002","name":"Watch","price":199.99}`)
	require.NoError(t, h.Add(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "added to wishlist")

	c, rec = ownedCtx(1, http.MethodPost, "/api/wishlist", `{"id":"prod-002","name":"Watch","price":199.99}`)
	require.NoError(t, h.Add(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "already in wishlist")
	assert.Len(t, store.items, 1)
}

func TestList_ScopedToOwnerAndOrdered(t *testing.T) {
	t.Parallel()

	cartStore := newFakeCartStore()
	cart := NewCartHandler(cartStore, nil)
	wishStore := newFakeWishlistStore()
	wish := NewWishlistHandler(wishStore)

	for _, add := range []struct {
		owner uint64
		body  string
	}{
		{1, `{"id":"prod-001","name":"Grinder","price":10}`},
		{1, `{"id":"prod-002","name":"Watch","price":20}`},
		{2, `{"id":"prod-003","name":"Chair","price":30}`},
	} {
		c, _ := ownedCtx(add.owner, http.MethodPost, "/api/cart", add.body)
		require.NoError(t, cart.Add(c))
		c, _ = ownedCtx(add.owner, http.MethodPost, "/api/wishlist", add.body)
		require.NoError(t, wish.Add(c))
	}

	// Cart: only owner 1's items, oldest first.
	c, rec := ownedCtx(1, http.MethodGet, "/api/cart", "")
	require.NoError(t, cart.List(c))
	var items []model.Item
	require.NoError(t, jsonDecode(rec, &items))
	require.Len(t, items, 2)
	assert.Equal(t, "prod-001", items[0].ProductSKU)
	assert.Equal(t, "prod-002", items[1].ProductSKU)

	// Wishlist: same scope, newest first.
	c, rec = ownedCtx(1, http.MethodGet, "/api/wishlist", "")
	require.NoError(t, wish.List(c))
	require.NoError(t, jsonDecode(rec, &items))
	require.Len(t, items, 2)
	assert.Equal(t, "prod-002", items[0].ProductSKU)
	assert.Equal(t, "prod-001", items[1].ProductSKU)

	// An owner with nothing gets an empty array, not an error.
	c, rec = ownedCtx(99, http.MethodGet, "/api/cart", "")
	require.NoError(t, cart.List(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestRemove_InvalidID(t *testing.T) {
	t.Parallel()

	h := NewCartHandler(newFakeCartStore(), nil)
	c, rec := ownedCtx(1, http.MethodDelete, "/api/cart/abc", "")
	c.SetParamNames("id")
	c.SetParamValues("abc")
	require.NoError(t, h.Remove(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid item id")
}

func TestRemove_OtherOwnersItem(t *testing.T) {
	t.Parallel()

	store := newFakeCartStore()
	h := NewCartHandler(store, nil)

	c, _ := ownedCtx(1, http.MethodPost, "/api/cart", `{"id":"prod-001","name":"Grinder","price":10}`)
	require.NoError(t, h.Add(c))

	// Owner 2 guesses owner 1's item id: 404, nothing deleted, and the
	// response is identical to a genuinely unknown id.
	c, rec := ownedCtx(2, http.MethodDelete, "/api/cart/1", "")
	c.SetParamNames("id")
	c.SetParamValues("1")
	require.NoError(t, h.Remove(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Len(t, store.items, 1)

	c, rec2 := ownedCtx(1, http.MethodDelete, "/api/cart/999", "")
	c.SetParamNames("id")
	c.SetParamValues("999")
	require.NoError(t, h.Remove(c))
	assert.Equal(t, http.StatusNotFound, rec2.Code)
	assert.JSONEq(t, rec.Body.String(), rec2.Body.String())

	// The real owner can remove it.
	c, rec = ownedCtx(1, http.MethodDelete, "/api/cart/1", "")
	c.SetParamNames("id")
	c.SetParamValues("1")
	require.NoError(t, h.Remove(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, store.items)
}

func TestWishlistRemove_ReportsRemovedID(t *testing.T) {
	t.Parallel()

	store := newFakeWishlistStore()
	h := NewWishlistHandler(store)
	c, _ := ownedCtx(1, http.MethodPost, "/api/wishlist", `{"id":"prod-004","name":"Headphones","price":129.99}`)
	require.NoError(t, h.Add(c))

	c, rec := ownedCtx(1, http.MethodDelete, "/api/wishlist/1", "")
	c.SetParamNames("id")
	c.SetParamValues("1")
	require.NoError(t, h.Remove(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"removed_id":1`)
}

func TestItems_Unauthenticated(t *testing.T) {
	t.Parallel()

	h := NewCartHandler(newFakeCartStore(), nil)
	// No identity in context: every method refuses before touching the store.
	c, rec := jsonCtx(http.MethodGet, "/api/cart", "")
	require.NoError(t, h.List(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	c, rec = jsonCtx(http.MethodPost, "/api/cart", `{"id":"p","name":"n","price":1}`)
	require.NoError(t, h.Add(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
