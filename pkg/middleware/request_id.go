package middleware

import (
	"net/http"

	"github.com/Charles0825/product-review-app-fs/pkg/utils"

	"github.com/google/uuid"
)

// RequestID middleware assigns a correlation ID to every request. The ID is
// echoed back in the X-Request-ID header and available via the context.
func RequestID() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID := r.Header.Get("X-Request-ID")
			if requestID == "" {
				requestID = uuid.New().String()
			}

			w.Header().Set("X-Request-ID", requestID)

			ctx := utils.SetRequestIDContext(r.Context(), requestID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
