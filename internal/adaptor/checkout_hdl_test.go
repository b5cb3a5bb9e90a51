package adaptor

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Charles0825/product-review-app-fs/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newCheckoutHandler() *CheckoutHandler {
	return NewCheckoutHandler(usecase.NewCheckoutService(zap.NewNop()), zap.NewNop())
}

func postCheckout(t *testing.T, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/api/checkout", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	newCheckoutHandler().Pay(rec, req)
	return rec
}

func TestPayCashReturnsTransactionCode(t *testing.T) {
	rec := postCheckout(t, `{"method":"cash","amount":"$15.00"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `"status":"success"`)
	assert.Contains(t, body, `"transaction_code"`)
}

func TestPayCreditFieldErrorsStayInEditingState(t *testing.T) {
	rec := postCheckout(t, `{"method":"credit","amount":"$15.00","cardNumber":"12","expirationDate":"01/20","cvv":"1"}`)

	// Field errors are a checkout result, not an HTTP failure
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `"status":"editing"`)
	assert.Contains(t, body, "Card number must be between 13 to 16 digits.")
	assert.Contains(t, body, "Expiration date cannot be in the past.")
	assert.Contains(t, body, "CVV must be 3 digits.")
}

func TestPayRejectsMalformedBody(t *testing.T) {
	rec := postCheckout(t, `{"method":`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPayRejectsMissingMethod(t *testing.T) {
	rec := postCheckout(t, `{"amount":"$15.00"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Validation failed")
}
