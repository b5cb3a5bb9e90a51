package adaptor

import (
	"net/http"
	"strings"

	"github.com/Charles0825/product-review-app-fs/internal/usecase"
	"github.com/Charles0825/product-review-app-fs/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type CatalogHandler struct {
	service usecase.CatalogService
	log     *zap.Logger
}

func NewCatalogHandler(service usecase.CatalogService, log *zap.Logger) *CatalogHandler {
	return &CatalogHandler{
		service: service,
		log:     log.With(zap.String("handler", "catalog")),
	}
}

// GetCatalog handles GET /api/catalog?category=&search= (public)
func (h *CatalogHandler) GetCatalog(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	catalog, err := h.service.GetCatalog(r.Context(), query.Get("category"), query.Get("search"))
	if err != nil {
		h.handleServiceError(w, err, "get catalog")
		return
	}

	utils.ResponseSuccess(w, "success", catalog)
}

// GetProductDetail handles GET /api/categories/{categoryId}/products/{productId} (public)
func (h *CatalogHandler) GetProductDetail(w http.ResponseWriter, r *http.Request) {
	categoryID := chi.URLParam(r, "categoryId")
	productID := chi.URLParam(r, "productId")
	if categoryID == "" || productID == "" {
		utils.ResponseBadRequest(w, "Category ID and product ID are required", nil)
		return
	}

	product, err := h.service.GetProductDetail(r.Context(), categoryID, productID)
	if err != nil {
		h.handleServiceError(w, err, "get product detail")
		return
	}

	utils.ResponseSuccess(w, "success", product)
}

// handleServiceError maps catalog errors to HTTP responses
func (h *CatalogHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	errMsg := err.Error()

	switch {
	case strings.Contains(errMsg, "not found"):
		h.log.Warn(operation+" failed - not found",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseNotFound(w, errMsg)

	case strings.Contains(errMsg, "failed to fetch"):
		h.log.Error(operation+" failed - remote backend unreachable",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadGateway(w, "Product catalog is temporarily unavailable")

	default:
		h.log.Error("Failed to "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
