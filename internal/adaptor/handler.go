package adaptor

import (
	"github.com/Charles0825/product-review-app-fs/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	Catalog  *CatalogHandler
	Review   *ReviewHandler
	Checkout *CheckoutHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Catalog:  NewCatalogHandler(service.Catalog, log),
		Review:   NewReviewHandler(service.Review, log),
		Checkout: NewCheckoutHandler(service.Checkout, log),
	}
}
