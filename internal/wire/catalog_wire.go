package wire

import (
	"github.com/Charles0825/product-review-app-fs/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireCatalog(r chi.Router, catalogHandler *adaptor.CatalogHandler) {
	// GET /api/catalog - filtered product listing (public)
	r.Get("/api/catalog", catalogHandler.GetCatalog)

	// GET /api/categories/{categoryId}/products/{productId} - product detail (public)
	r.Get("/api/categories/{categoryId}/products/{productId}", catalogHandler.GetProductDetail)
}
