package request

type CreateReviewRequest struct {
	Name    string `json:"name" validate:"required,max=100"`
	Email   string `json:"email" validate:"required,email"`
	Title   string `json:"title" validate:"required,max=150"`
	Content string `json:"content" validate:"required,max=1000"`
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
}

// UpdateReviewRequest replaces every editable field of an owned review.
type UpdateReviewRequest struct {
	Name    string `json:"name" validate:"required,max=100"`
	Email   string `json:"email" validate:"required,email"`
	Title   string `json:"title" validate:"required,max=150"`
	Content string `json:"content" validate:"required,max=1000"`
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
}
