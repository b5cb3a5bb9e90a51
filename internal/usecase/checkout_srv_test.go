package usecase

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/Charles0825/product-review-app-fs/internal/dto/request"
	"github.com/Charles0825/product-review-app-fs/internal/dto/response"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var checkoutNow = time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)

func TestValidateCardForm(t *testing.T) {
	cases := []struct {
		name       string
		cardNumber string
		expiration string
		cvv        string
		wantErrors map[string]string
	}{
		{
			name:       "valid 13 digit card",
			cardNumber: "4111111111111",
			expiration: "12/25",
			cvv:        "123",
			wantErrors: map[string]string{},
		},
		{
			name:       "valid 16 digit card",
			cardNumber: "4111111111111111",
			expiration: "07/24",
			cvv:        "999",
			wantErrors: map[string]string{},
		},
		{
			name:       "card too short",
			cardNumber: "12345678901",
			expiration: "12/25",
			cvv:        "123",
			wantErrors: map[string]string{
				"cardNumber": "Card number must be between 13 to 16 digits.",
			},
		},
		{
			name:       "card too long",
			cardNumber: "41111111111111112",
			expiration: "12/25",
			cvv:        "123",
			wantErrors: map[string]string{
				"cardNumber": "Card number must be between 13 to 16 digits.",
			},
		},
		{
			name:       "card with letters",
			cardNumber: "4111a11111111",
			expiration: "12/25",
			cvv:        "123",
			wantErrors: map[string]string{
				"cardNumber": "Card number must be between 13 to 16 digits.",
			},
		},
		{
			name:       "bad expiration month",
			cardNumber: "4111111111111",
			expiration: "13/25",
			cvv:        "123",
			wantErrors: map[string]string{
				"expirationDate": "Invalid expiration date format.",
			},
		},
		{
			name:       "expiration in the past",
			cardNumber: "4111111111111",
			expiration: "01/20",
			cvv:        "123",
			wantErrors: map[string]string{
				"expirationDate": "Expiration date cannot be in the past.",
			},
		},
		{
			name:       "cvv too short",
			cardNumber: "4111111111111",
			expiration: "12/25",
			cvv:        "12",
			wantErrors: map[string]string{
				"cvv": "CVV must be 3 digits.",
			},
		},
		{
			name:       "all fields invalid at once",
			cardNumber: "12",
			expiration: "garbage",
			cvv:        "9",
			wantErrors: map[string]string{
				"cardNumber":     "Card number must be between 13 to 16 digits.",
				"expirationDate": "Invalid expiration date format.",
				"cvv":            "CVV must be 3 digits.",
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			errors := ValidateCardForm(tc.cardNumber, tc.expiration, tc.cvv, checkoutNow)
			assert.Equal(t, tc.wantErrors, errors)
		})
	}
}

func newCheckoutService(now time.Time) CheckoutService {
	return &checkoutService{
		log: zap.NewNop(),
		now: func() time.Time { return now },
	}
}

func TestPayCreditSuccess(t *testing.T) {
	service := newCheckoutService(checkoutNow)

	result, err := service.Pay(context.Background(), &request.CheckoutRequest{
		Method:         "credit",
		Amount:         "$42.00",
		CardNumber:     "4111111111111111",
		ExpirationDate: "12/29",
		CVV:            "123",
	})

	require.NoError(t, err)
	assert.Equal(t, response.CheckoutSuccess, result.Status)
	assert.Equal(t, "Your purchase has been confirmed!", result.Message)
	assert.Empty(t, result.FieldErrors)
	assert.Empty(t, result.TransactionCode)
}

func TestPayCreditCollectsAllErrors(t *testing.T) {
	service := newCheckoutService(checkoutNow)

	result, err := service.Pay(context.Background(), &request.CheckoutRequest{
		Method:         "credit",
		Amount:         "$42.00",
		CardNumber:     "12",
		ExpirationDate: "01/20",
		CVV:            "1",
	})

	require.NoError(t, err)
	assert.Equal(t, response.CheckoutEditing, result.Status)
	assert.Len(t, result.FieldErrors, 3)
	assert.Equal(t, "Expiration date cannot be in the past.", result.FieldErrors["expirationDate"])
}

func TestPayCashAlwaysSucceeds(t *testing.T) {
	service := newCheckoutService(checkoutNow)

	result, err := service.Pay(context.Background(), &request.CheckoutRequest{
		Method: "cash",
		Amount: "$42.00",
	})

	require.NoError(t, err)
	assert.Equal(t, response.CheckoutSuccess, result.Status)
	assert.Regexp(t, regexp.MustCompile(`^[A-Z0-9]{8}$`), result.TransactionCode)
	assert.Contains(t, result.Message, "$42.00")
}

func TestPayRejectsUnknownMethod(t *testing.T) {
	service := newCheckoutService(checkoutNow)

	_, err := service.Pay(context.Background(), &request.CheckoutRequest{
		Method: "wire-transfer",
		Amount: "$42.00",
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}
