package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// CatalogHandler serves the public read-only product listing. The route is
// wrapped in the Redis response cache when one is configured, so the query
// rarely reaches the database.
type CatalogHandler struct {
	Products ProductStore
}

func NewCatalogHandler(products ProductStore) *CatalogHandler {
	if products == nil {
		panic("nil store passed to NewCatalogHandler")
	}
	return &CatalogHandler{Products: products}
}

// ListProducts handles GET /api/product and GET /api/products.
func (h *CatalogHandler) ListProducts(c echo.Context) error {
	ctx, cancel := storeCtx(c)
	defer cancel()

	products, err := h.Products.List(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "catalog query failed"})
	}
	return c.JSON(http.StatusOK, products)
}
