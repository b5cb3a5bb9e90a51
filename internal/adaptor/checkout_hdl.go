package adaptor

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/Charles0825/product-review-app-fs/internal/dto/request"
	"github.com/Charles0825/product-review-app-fs/internal/usecase"
	"github.com/Charles0825/product-review-app-fs/pkg/utils"

	"go.uber.org/zap"
)

type CheckoutHandler struct {
	service usecase.CheckoutService
	log     *zap.Logger
}

func NewCheckoutHandler(service usecase.CheckoutService, log *zap.Logger) *CheckoutHandler {
	return &CheckoutHandler{
		service: service,
		log:     log.With(zap.String("handler", "checkout")),
	}
}

// Pay handles POST /api/checkout (public)
func (h *CheckoutHandler) Pay(w http.ResponseWriter, r *http.Request) {
	var req request.CheckoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	// Validate request
	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	result, err := h.service.Pay(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "checkout")
		return
	}

	// Field errors are part of the checkout result, not an HTTP failure;
	// the form stays in its editing state
	utils.ResponseSuccess(w, "success", result)
}

// handleServiceError maps checkout errors to HTTP responses
func (h *CheckoutHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	errMsg := err.Error()

	switch {
	case strings.Contains(errMsg, "validation failed"):
		h.log.Warn(operation+" validation failed",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, errMsg, nil)

	default:
		h.log.Error("Failed to "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
