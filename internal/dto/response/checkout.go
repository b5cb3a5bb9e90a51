package response

const (
	// CheckoutEditing means validation failed and the form stays editable.
	CheckoutEditing = "editing"
	// CheckoutSuccess is the terminal state of a checkout session.
	CheckoutSuccess = "success"
)

type CheckoutResponse struct {
	Status          string            `json:"status"`
	Message         string            `json:"message"`
	TransactionCode string            `json:"transaction_code,omitempty"`
	FieldErrors     map[string]string `json:"field_errors,omitempty"`
}
