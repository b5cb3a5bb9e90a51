package usecase

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/Charles0825/product-review-app-fs/internal/dto/request"
	"github.com/Charles0825/product-review-app-fs/internal/dto/response"
	"github.com/Charles0825/product-review-app-fs/pkg/utils"

	"go.uber.org/zap"
)

var (
	cardNumberRegex = regexp.MustCompile(`^\d{13,16}$`)
	expirationRegex = regexp.MustCompile(`^(0[1-9]|1[0-2])/\d{2}$`)
	cvvRegex        = regexp.MustCompile(`^\d{3}$`)
)

const transactionCodeLength = 8

type CheckoutService interface {
	// Pay runs one checkout attempt. Credit payments validate the card
	// form; cash payments always succeed with a transaction code.
	Pay(ctx context.Context, req *request.CheckoutRequest) (*response.CheckoutResponse, error)
}

type checkoutService struct {
	log *zap.Logger
	now func() time.Time
}

func NewCheckoutService(log *zap.Logger) CheckoutService {
	return &checkoutService{
		log: log.With(zap.String("service", "checkout")),
		now: time.Now,
	}
}

func (s *checkoutService) Pay(ctx context.Context, req *request.CheckoutRequest) (*response.CheckoutResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Checkout validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	if req.Method == "cash" {
		code := utils.GenerateTransactionCode(transactionCodeLength)

		s.log.Info("Cash checkout issued",
			zap.String("amount", req.Amount),
			zap.String("transaction_code", code),
		)

		return &response.CheckoutResponse{
			Status:          response.CheckoutSuccess,
			Message:         fmt.Sprintf("Please pay the amount of %s at the counter using this code.", req.Amount),
			TransactionCode: code,
		}, nil
	}

	fieldErrors := ValidateCardForm(req.CardNumber, req.ExpirationDate, req.CVV, s.now())
	if len(fieldErrors) > 0 {
		s.log.Info("Credit checkout rejected",
			zap.Int("field_errors", len(fieldErrors)),
		)

		return &response.CheckoutResponse{
			Status:      response.CheckoutEditing,
			Message:     "Please correct the errors in the form.",
			FieldErrors: fieldErrors,
		}, nil
	}

	// No real payment processing behind this; success is terminal
	s.log.Info("Credit checkout confirmed", zap.String("amount", req.Amount))

	return &response.CheckoutResponse{
		Status:  response.CheckoutSuccess,
		Message: "Your purchase has been confirmed!",
	}, nil
}

// ValidateCardForm checks all three credit card fields and collects every
// applicable error; it never stops at the first failure.
func ValidateCardForm(cardNumber, expirationDate, cvv string, now time.Time) map[string]string {
	errors := make(map[string]string)

	if !cardNumberRegex.MatchString(cardNumber) {
		errors["cardNumber"] = "Card number must be between 13 to 16 digits."
	}

	if !expirationRegex.MatchString(expirationDate) {
		errors["expirationDate"] = "Invalid expiration date format."
	} else {
		parts := strings.SplitN(expirationDate, "/", 2)
		month, _ := strconv.Atoi(parts[0])
		year, _ := strconv.Atoi(parts[1])

		// First of the expiry month in the 2000s; a card expiring this
		// month already reads as past once the month has started
		expiry := time.Date(2000+year, time.Month(month), 1, 0, 0, 0, 0, now.Location())
		if expiry.Before(now) {
			errors["expirationDate"] = "Expiration date cannot be in the past."
		}
	}

	if !cvvRegex.MatchString(cvv) {
		errors["cvv"] = "CVV must be 3 digits."
	}

	return errors
}
