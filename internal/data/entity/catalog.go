package entity

// Product as served by the remote backend, nested inside a category.
type Product struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Image      string `json:"image"`
	CategoryID string `json:"categoryId"`
	Price      string `json:"price"`
	Currency   string `json:"currency"`
	Details    string `json:"details"`
	CreatedAt  string `json:"createdAt"`
}

// Category owns an ordered product list. Immutable once fetched.
type Category struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt string    `json:"createdAt"`
	Products  []Product `json:"products"`
}

// CategoryRef is the category summary embedded in a product detail payload.
type CategoryRef struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	CreatedAt string `json:"createdAt"`
}

// ProductDetail is the remote payload for a single product, including its
// parent category and embedded reviews.
type ProductDetail struct {
	Product
	Category CategoryRef `json:"category"`
	Reviews  []Review    `json:"reviews"`
}
