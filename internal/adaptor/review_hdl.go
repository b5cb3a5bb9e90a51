package adaptor

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/Charles0825/product-review-app-fs/internal/dto/request"
	"github.com/Charles0825/product-review-app-fs/internal/usecase"
	"github.com/Charles0825/product-review-app-fs/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ReviewHandler struct {
	service usecase.ReviewService
	log     *zap.Logger
}

func NewReviewHandler(service usecase.ReviewService, log *zap.Logger) *ReviewHandler {
	return &ReviewHandler{
		service: service,
		log:     log.With(zap.String("handler", "review")),
	}
}

// GetProductReviews handles GET /api/products/{productId}/reviews?rating= (public)
func (h *ReviewHandler) GetProductReviews(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "productId")
	if productID == "" {
		utils.ResponseBadRequest(w, "Product ID is required", nil)
		return
	}

	// rating narrows the list to one star band; absent or invalid means all
	starFilter := utils.ParseInt(r.URL.Query().Get("rating"), 0)
	if starFilter > 5 {
		starFilter = 0
	}

	reviews, err := h.service.GetProductReviews(r.Context(), productID, starFilter)
	if err != nil {
		h.handleServiceError(w, err, "get product reviews")
		return
	}

	utils.ResponseSuccess(w, "success", reviews)
}

// CreateReview handles POST /api/categories/{categoryId}/products/{productId}/reviews
func (h *ReviewHandler) CreateReview(w http.ResponseWriter, r *http.Request) {
	categoryID := chi.URLParam(r, "categoryId")
	productID := chi.URLParam(r, "productId")
	if categoryID == "" || productID == "" {
		utils.ResponseBadRequest(w, "Category ID and product ID are required", nil)
		return
	}

	var req request.CreateReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	// Validate request
	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	review, err := h.service.SubmitReview(r.Context(), categoryID, productID, &req)
	if err != nil {
		h.handleServiceError(w, err, "submit review")
		return
	}

	utils.ResponseCreated(w, "success", review)
}

// LikeReview handles POST /api/reviews/{id}/like (public)
func (h *ReviewHandler) LikeReview(w http.ResponseWriter, r *http.Request) {
	reviewID := chi.URLParam(r, "id")
	if reviewID == "" {
		utils.ResponseBadRequest(w, "Review ID is required", nil)
		return
	}

	likes, err := h.service.LikeReview(r.Context(), reviewID)
	if err != nil {
		h.handleServiceError(w, err, "like review")
		return
	}

	utils.ResponseSuccess(w, "success", likes)
}

// UpdateReview handles PUT /api/reviews/{id} (owned reviews only)
func (h *ReviewHandler) UpdateReview(w http.ResponseWriter, r *http.Request) {
	reviewID := chi.URLParam(r, "id")
	if reviewID == "" {
		utils.ResponseBadRequest(w, "Review ID is required", nil)
		return
	}

	var req request.UpdateReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	// Validate request
	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	review, err := h.service.UpdateReview(r.Context(), reviewID, &req)
	if err != nil {
		h.handleServiceError(w, err, "update review")
		return
	}

	utils.ResponseSuccess(w, "success", review)
}

// handleServiceError maps review errors to HTTP responses
func (h *ReviewHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	errMsg := err.Error()

	switch {
	case strings.Contains(errMsg, "not found"):
		h.log.Warn(operation+" failed - not found",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseNotFound(w, errMsg)

	case strings.Contains(errMsg, "validation failed"):
		h.log.Warn(operation+" validation failed",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, errMsg, nil)

	case strings.Contains(errMsg, "not editable"):
		h.log.Warn(operation+" failed - review not owned",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseForbidden(w, errMsg)

	case strings.Contains(errMsg, "failed to create"):
		// The mock backend rejects writes past its record quota; surface
		// the form-level message the storefront shows
		h.log.Error(operation+" failed - remote write rejected",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, "Unable to save data, limit reached.", nil)

	case strings.Contains(errMsg, "failed to fetch"), strings.Contains(errMsg, "failed to update"):
		h.log.Error(operation+" failed - remote backend unreachable",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadGateway(w, "Reviews are temporarily unavailable")

	default:
		h.log.Error("Failed to "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
