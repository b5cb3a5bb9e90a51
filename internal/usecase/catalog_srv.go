package usecase

import (
	"context"
	"fmt"

	"github.com/Charles0825/product-review-app-fs/internal/data/entity"
	"github.com/Charles0825/product-review-app-fs/internal/data/repository"
	"github.com/Charles0825/product-review-app-fs/internal/dto/response"
	"github.com/Charles0825/product-review-app-fs/internal/filter"
	"github.com/Charles0825/product-review-app-fs/internal/rating"

	"go.uber.org/zap"
)

type CatalogService interface {
	// GetCatalog returns the listing narrowed by an optional category name
	// and an optional product-name search, with per-product review counts.
	GetCatalog(ctx context.Context, categoryName, search string) (*response.CatalogResponse, error)

	// GetProductDetail returns a single product with its aggregated star
	// rating.
	GetProductDetail(ctx context.Context, categoryID, productID string) (*response.ProductDetailResponse, error)
}

type catalogService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewCatalogService(repo *repository.Repository, log *zap.Logger) CatalogService {
	return &catalogService{
		repo: repo,
		log:  log.With(zap.String("service", "catalog")),
	}
}

func (s *catalogService) GetCatalog(ctx context.Context, categoryName, search string) (*response.CatalogResponse, error) {
	categories, err := s.repo.Catalog.FindAllCategories(ctx)
	if err != nil {
		s.log.Error("Failed to load catalog", zap.Error(err))
		return nil, fmt.Errorf("get catalog: %w", err)
	}

	reviews, err := s.repo.Review.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to load reviews for catalog", zap.Error(err))
		return nil, fmt.Errorf("get catalog reviews: %w", err)
	}

	reviewCounts := make(map[string]int, len(reviews))
	for _, review := range reviews {
		reviewCounts[review.ProductID]++
	}

	filtered := filter.Apply(categories, categoryName, search)

	// Flatten the filtered view into cards; categories left empty by the
	// search drop out of the listing but stay in the dropdown options.
	cards := make([]response.ProductCard, 0)
	for _, category := range filtered {
		for _, product := range category.Products {
			cards = append(cards, response.ProductCard{
				ProductID:    product.ID,
				CategoryID:   category.ID,
				ProductName:  product.Name,
				CategoryName: category.Name,
				Image:        product.Image,
				ReviewCount:  reviewCounts[product.ID],
			})
		}
	}

	s.log.Info("Catalog retrieved",
		zap.Int("categories", len(categories)),
		zap.Int("products", len(cards)),
		zap.String("category_filter", categoryName),
		zap.String("search", search),
	)

	return &response.CatalogResponse{
		CategoryOptions: filter.CategoryOptions(categories),
		Products:        cards,
	}, nil
}

func (s *catalogService) GetProductDetail(ctx context.Context, categoryID, productID string) (*response.ProductDetailResponse, error) {
	product, err := s.repo.Catalog.FindProduct(ctx, categoryID, productID)
	if err != nil {
		s.log.Error("Failed to load product detail",
			zap.Error(err),
			zap.String("category_id", categoryID),
			zap.String("product_id", productID),
		)
		return nil, fmt.Errorf("get product detail: %w", err)
	}

	if product == nil {
		return nil, fmt.Errorf("product %s not found", productID)
	}

	s.log.Info("Product detail retrieved",
		zap.String("product_id", productID),
		zap.Int("reviews", len(product.Reviews)),
	)

	return productDetailToResponse(product), nil
}

func productDetailToResponse(product *entity.ProductDetail) *response.ProductDetailResponse {
	return &response.ProductDetailResponse{
		ID:           product.ID,
		Name:         product.Name,
		Image:        product.Image,
		CategoryID:   product.Category.ID,
		CategoryName: product.Category.Name,
		Price:        product.Currency + product.Price,
		Details:      product.Details,
		CreatedAt:    product.CreatedAt,
		Rating:       rating.Average(product.Reviews),
		ReviewCount:  len(product.Reviews),
	}
}
