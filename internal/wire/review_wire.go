package wire

import (
	"github.com/Charles0825/product-review-app-fs/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireReview(r chi.Router, reviewHandler *adaptor.ReviewHandler) {
	// GET /api/products/{productId}/reviews - product reviews with overall rating (public)
	r.Get("/api/products/{productId}/reviews", reviewHandler.GetProductReviews)

	// POST /api/categories/{categoryId}/products/{productId}/reviews - submit review
	r.Post("/api/categories/{categoryId}/products/{productId}/reviews", reviewHandler.CreateReview)

	// POST /api/reviews/{id}/like - like a review
	r.Post("/api/reviews/{id}/like", reviewHandler.LikeReview)

	// PUT /api/reviews/{id} - update review (owned reviews only)
	r.Put("/api/reviews/{id}", reviewHandler.UpdateReview)
}
