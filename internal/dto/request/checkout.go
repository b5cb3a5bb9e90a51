package request

type CheckoutRequest struct {
	Method string `json:"method" validate:"required,oneof=credit cash"`
	Amount string `json:"amount" validate:"required"`

	// Credit card fields, checked by the checkout service so that all
	// field errors are collected together
	CardNumber     string `json:"cardNumber"`
	ExpirationDate string `json:"expirationDate"`
	CVV            string `json:"cvv"`
}
