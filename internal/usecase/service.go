package usecase

import (
	"github.com/Charles0825/product-review-app-fs/internal/data/repository"

	"go.uber.org/zap"
)

type Service struct {
	Catalog  CatalogService
	Review   ReviewService
	Checkout CheckoutService
}

func NewService(repo *repository.Repository, log *zap.Logger) *Service {
	return &Service{
		Catalog:  NewCatalogService(repo, log),
		Review:   NewReviewService(repo, log),
		Checkout: NewCheckoutService(log),
	}
}
