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

type ReviewRepository interface {
	// FindAll returns every review known to the remote backend.
	FindAll(ctx context.Context) ([]entity.Review, error)

	// FindByProductID returns the reviews the backend associates with the
	// product, in fetch order.
	FindByProductID(ctx context.Context, productID string) ([]entity.Review, error)

	// FindByID returns one review, or nil when it does not exist.
	FindByID(ctx context.Context, id string) (*entity.Review, error)

	// Create persists a new review under the product and returns the
	// record as stored remotely (with its generated ID).
	Create(ctx context.Context, categoryID, productID string, review *entity.Review) (*entity.Review, error)

	// Update replaces the remote record and returns the stored result.
	Update(ctx context.Context, id string, review *entity.Review) (*entity.Review, error)
}

type reviewRepository struct {
	api *apiclient.Client
	log *zap.Logger
}

func NewReviewRepository(api *apiclient.Client, log *zap.Logger) ReviewRepository {
	return &reviewRepository{
		api: api,
		log: log.With(zap.String("repository", "review")),
	}
}

func (r *reviewRepository) FindAll(ctx context.Context) ([]entity.Review, error) {
	var reviews []entity.Review
	if err := r.api.GetJSON(ctx, "/reviews", &reviews); err != nil {
		r.log.Error("Failed to fetch reviews", zap.Error(err))
		return nil, fmt.Errorf("failed to fetch reviews: %w", err)
	}

	return reviews, nil
}

func (r *reviewRepository) FindByProductID(ctx context.Context, productID string) ([]entity.Review, error) {
	path := "/reviews?productId=" + url.QueryEscape(productID)

	var reviews []entity.Review
	err := r.api.GetJSON(ctx, path, &reviews)
	if errors.Is(err, apiclient.ErrNotFound) {
		// The backend answers 404 for products without reviews
		return []entity.Review{}, nil
	}
	if err != nil {
		r.log.Error("Failed to fetch product reviews",
			zap.Error(err),
			zap.String("product_id", productID),
		)
		return nil, fmt.Errorf("failed to fetch product reviews: %w", err)
	}

	return reviews, nil
}

func (r *reviewRepository) FindByID(ctx context.Context, id string) (*entity.Review, error) {
	var review entity.Review
	err := r.api.GetJSON(ctx, "/reviews/"+url.PathEscape(id), &review)
	if errors.Is(err, apiclient.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to fetch review",
			zap.Error(err),
			zap.String("review_id", id),
		)
		return nil, fmt.Errorf("failed to fetch review: %w", err)
	}

	return &review, nil
}

func (r *reviewRepository) Create(ctx context.Context, categoryID, productID string, review *entity.Review) (*entity.Review, error) {
	path := fmt.Sprintf("/categories/%s/products/%s/reviews",
		url.PathEscape(categoryID), url.PathEscape(productID))

	var created entity.Review
	if err := r.api.PostJSON(ctx, path, review, &created); err != nil {
		r.log.Error("Failed to create review",
			zap.Error(err),
			zap.String("product_id", productID),
		)
		return nil, fmt.Errorf("failed to create review: %w", err)
	}

	return &created, nil
}

func (r *reviewRepository) Update(ctx context.Context, id string, review *entity.Review) (*entity.Review, error) {
	var updated entity.Review
	if err := r.api.PutJSON(ctx, "/reviews/"+url.PathEscape(id), review, &updated); err != nil {
		r.log.Error("Failed to update review",
			zap.Error(err),
			zap.String("review_id", id),
		)
		return nil, fmt.Errorf("failed to update review: %w", err)
	}

	return &updated, nil
}
