package wire

import (
	"github.com/Charles0825/product-review-app-fs/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireCheckout(r chi.Router, checkoutHandler *adaptor.CheckoutHandler) {
	// POST /api/checkout - simulated payment (public)
	r.Post("/api/checkout", checkoutHandler.Pay)
}
