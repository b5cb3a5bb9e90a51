package response

import (
	"github.com/Charles0825/product-review-app-fs/internal/data/entity"
	"github.com/Charles0825/product-review-app-fs/internal/rating"
)

type ReviewResponse struct {
	ID        string `json:"id"`
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Avatar    string `json:"avatar"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	Rating    int    `json:"rating"`
	Verified  bool   `json:"verified"`
	Likes     int    `json:"likes"`
	Editable  bool   `json:"editable"`
	CreatedAt string `json:"created_at"`
}

// ReviewListResponse carries the overall rating and per-band counts computed
// over the full review set, even when the list itself is narrowed to one band.
type ReviewListResponse struct {
	OverallRating string           `json:"overall_rating"`
	Total         int              `json:"total"`
	Distribution  map[int]int      `json:"distribution"`
	Reviews       []ReviewResponse `json:"reviews"`
}

type LikeResponse struct {
	ID    string `json:"id"`
	Likes int    `json:"likes"`
}

// Helper converter. The raw rating is normalized here; raw values never
// leave the service layer.
func ReviewToResponse(review *entity.Review, editable bool) ReviewResponse {
	return ReviewResponse{
		ID:        review.ID,
		ProductID: review.ProductID,
		Name:      review.Name,
		Email:     review.Email,
		Avatar:    review.Avatar,
		Title:     review.Title,
		Content:   review.Content,
		Rating:    rating.Normalize(review.Rating),
		Verified:  review.Verified,
		Likes:     review.Likes,
		Editable:  editable,
		CreatedAt: review.CreatedAt,
	}
}
