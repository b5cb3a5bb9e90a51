package usecase

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/Charles0825/product-review-app-fs/internal/data/entity"
	"github.com/Charles0825/product-review-app-fs/internal/data/repository"
	"github.com/Charles0825/product-review-app-fs/internal/dto/request"
	"github.com/Charles0825/product-review-app-fs/internal/dto/response"
	"github.com/Charles0825/product-review-app-fs/internal/rating"
	"github.com/Charles0825/product-review-app-fs/pkg/utils"

	"go.uber.org/zap"
)

// Avatar assigned to every submitted review; the form has no upload.
const placeholderAvatar = "https://img.freepik.com/free-vector/hand-drawn-cartoon-monkey-face-illustration_23-2150497743.jpg"

type ReviewService interface {
	// GetProductReviews returns the product's reviews sorted by likes
	// descending. starFilter narrows the list to one band; 0 means all.
	GetProductReviews(ctx context.Context, productID string, starFilter int) (*response.ReviewListResponse, error)

	// SubmitReview persists a new review remotely and grants this device
	// edit capability over it.
	SubmitReview(ctx context.Context, categoryID, productID string, req *request.CreateReviewRequest) (*response.ReviewResponse, error)

	// LikeReview increments the remote like count and returns the
	// server-confirmed value.
	LikeReview(ctx context.Context, reviewID string) (*response.LikeResponse, error)

	// UpdateReview replaces the editable fields of an owned review.
	UpdateReview(ctx context.Context, reviewID string, req *request.UpdateReviewRequest) (*response.ReviewResponse, error)
}

type reviewService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewReviewService(repo *repository.Repository, log *zap.Logger) ReviewService {
	return &reviewService{
		repo: repo,
		log:  log.With(zap.String("service", "review")),
	}
}

func (s *reviewService) GetProductReviews(ctx context.Context, productID string, starFilter int) (*response.ReviewListResponse, error) {
	fetched, err := s.repo.Review.FindByProductID(ctx, productID)
	if err != nil {
		s.log.Error("Failed to get product reviews",
			zap.Error(err),
			zap.String("product_id", productID),
		)
		return nil, fmt.Errorf("get product reviews: %w", err)
	}

	// The backend query matches loosely; keep only exact product matches
	reviews := make([]entity.Review, 0, len(fetched))
	for _, review := range fetched {
		if review.ProductID == productID {
			reviews = append(reviews, review)
		}
	}

	// Most-liked first, ties keep fetch order
	sort.SliceStable(reviews, func(i, j int) bool {
		return reviews[i].Likes > reviews[j].Likes
	})

	// Overall rating and band counts always cover the full set, even when
	// the returned list is narrowed to one band
	overall := rating.Average(reviews)
	distribution := rating.Distribution(reviews)

	visible := reviews
	if starFilter >= 1 && starFilter <= 5 {
		visible = make([]entity.Review, 0, len(reviews))
		for _, review := range reviews {
			if rating.Normalize(review.Rating) == starFilter {
				visible = append(visible, review)
			}
		}
	}

	reviewResponses := make([]response.ReviewResponse, len(visible))
	for i := range visible {
		editable := s.repo.Owned.Contains(visible[i].ID)
		reviewResponses[i] = response.ReviewToResponse(&visible[i], editable)
	}

	s.log.Info("Product reviews retrieved",
		zap.String("product_id", productID),
		zap.Int("count", len(reviews)),
		zap.Int("star_filter", starFilter),
	)

	return &response.ReviewListResponse{
		OverallRating: overall,
		Total:         len(reviews),
		Distribution:  distribution,
		Reviews:       reviewResponses,
	}, nil
}

func (s *reviewService) SubmitReview(ctx context.Context, categoryID, productID string, req *request.CreateReviewRequest) (*response.ReviewResponse, error) {
	// Validate request
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Submit review validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	review := &entity.Review{
		ProductID: productID,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
		Name:      req.Name,
		Avatar:    placeholderAvatar,
		Email:     req.Email,
		Title:     req.Title,
		Content:   req.Content,
		Rating:    rating.Denormalize(req.Rating),
		Verified:  true,
		Likes:     0,
	}

	created, err := s.repo.Review.Create(ctx, categoryID, productID, review)
	if err != nil {
		s.log.Error("Failed to submit review",
			zap.Error(err),
			zap.String("product_id", productID),
		)
		return nil, fmt.Errorf("submit review: %w", err)
	}

	// Grant this device edit capability over the new review. The remote
	// write already succeeded, so a store failure only costs the edit
	// control, not the review.
	if err := s.repo.Owned.Append(created.ID); err != nil {
		s.log.Warn("Failed to record review ownership",
			zap.Error(err),
			zap.String("review_id", created.ID),
		)
	}

	s.log.Info("Review submitted",
		zap.String("review_id", created.ID),
		zap.String("product_id", productID),
		zap.Int("rating", req.Rating),
	)

	resp := response.ReviewToResponse(created, s.repo.Owned.Contains(created.ID))
	return &resp, nil
}

func (s *reviewService) LikeReview(ctx context.Context, reviewID string) (*response.LikeResponse, error) {
	current, err := s.repo.Review.FindByID(ctx, reviewID)
	if err != nil {
		return nil, fmt.Errorf("like review: %w", err)
	}
	if current == nil {
		return nil, fmt.Errorf("review %s not found", reviewID)
	}

	liked := *current
	liked.Likes = current.Likes + 1

	updated, err := s.repo.Review.Update(ctx, reviewID, &liked)
	if err != nil {
		s.log.Error("Failed to like review",
			zap.Error(err),
			zap.String("review_id", reviewID),
		)
		return nil, fmt.Errorf("like review: %w", err)
	}

	s.log.Info("Review liked",
		zap.String("review_id", reviewID),
		zap.Int("likes", updated.Likes),
	)

	// The displayed count is the server's value, not a local increment
	return &response.LikeResponse{
		ID:    updated.ID,
		Likes: updated.Likes,
	}, nil
}

func (s *reviewService) UpdateReview(ctx context.Context, reviewID string, req *request.UpdateReviewRequest) (*response.ReviewResponse, error) {
	// Validate request
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update review validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	if !s.repo.Owned.Contains(reviewID) {
		s.log.Warn("Edit attempt on review not owned by this device",
			zap.String("review_id", reviewID),
		)
		return nil, fmt.Errorf("review %s is not editable from this device", reviewID)
	}

	current, err := s.repo.Review.FindByID(ctx, reviewID)
	if err != nil {
		return nil, fmt.Errorf("update review: %w", err)
	}
	if current == nil {
		return nil, fmt.Errorf("review %s not found", reviewID)
	}

	// Full replacement of the editable fields; everything else carries over
	edited := *current
	edited.Name = req.Name
	edited.Email = req.Email
	edited.Title = req.Title
	edited.Content = req.Content
	edited.Rating = rating.Denormalize(req.Rating)

	updated, err := s.repo.Review.Update(ctx, reviewID, &edited)
	if err != nil {
		s.log.Error("Failed to update review",
			zap.Error(err),
			zap.String("review_id", reviewID),
		)
		return nil, fmt.Errorf("update review: %w", err)
	}

	s.log.Info("Review updated",
		zap.String("review_id", reviewID),
		zap.Int("rating", req.Rating),
	)

	resp := response.ReviewToResponse(updated, true)
	return &resp, nil
}
