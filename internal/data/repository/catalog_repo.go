package repository

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"github.com/Charles0825/product-review-app-fs/internal/data/entity"
	"github.com/Charles0825/product-review-app-fs/pkg/apiclient"

	"go.uber.org/zap"
)

type CatalogRepository interface {
	// FindAllCategories returns every category with its nested products,
	// newest category first.
	FindAllCategories(ctx context.Context) ([]entity.Category, error)

	// FindProduct returns a single product with its embedded reviews, or
	// nil when the remote backend does not know it.
	FindProduct(ctx context.Context, categoryID, productID string) (*entity.ProductDetail, error)
}

type catalogRepository struct {
	api *apiclient.Client
	log *zap.Logger
}

func NewCatalogRepository(api *apiclient.Client, log *zap.Logger) CatalogRepository {
	return &catalogRepository{
		api: api,
		log: log.With(zap.String("repository", "catalog")),
	}
}

func (r *catalogRepository) FindAllCategories(ctx context.Context) ([]entity.Category, error) {
	var categories []entity.Category
	if err := r.api.GetJSON(ctx, "/categories?sortBy=createdAt&order=desc", &categories); err != nil {
		r.log.Error("Failed to fetch categories", zap.Error(err))
		return nil, fmt.Errorf("failed to fetch categories: %w", err)
	}

	return categories, nil
}

func (r *catalogRepository) FindProduct(ctx context.Context, categoryID, productID string) (*entity.ProductDetail, error) {
	path := fmt.Sprintf("/categories/%s/products/%s",
		url.PathEscape(categoryID), url.PathEscape(productID))

	var product entity.ProductDetail
	err := r.api.GetJSON(ctx, path, &product)
	if errors.Is(err, apiclient.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to fetch product",
			zap.Error(err),
			zap.String("category_id", categoryID),
			zap.String("product_id", productID),
		)
		return nil, fmt.Errorf("failed to fetch product: %w", err)
	}

	return &product, nil
}
