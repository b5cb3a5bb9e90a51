package response

// ProductCard is one storefront tile in the listing.
type ProductCard struct {
	ProductID    string `json:"product_id"`
	CategoryID   string `json:"category_id"`
	ProductName  string `json:"product_name"`
	CategoryName string `json:"category_name"`
	Image        string `json:"image"`
	ReviewCount  int    `json:"review_count"`
}

// CatalogResponse is the filtered listing plus the dropdown options derived
// from the unfiltered category list.
type CatalogResponse struct {
	CategoryOptions []string      `json:"category_options"`
	Products        []ProductCard `json:"products"`
}

type ProductDetailResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Image        string `json:"image"`
	CategoryID   string `json:"category_id"`
	CategoryName string `json:"category_name"`
	Price        string `json:"price"`
	Details      string `json:"details"`
	CreatedAt    string `json:"created_at"`
	Rating       string `json:"rating"`
	ReviewCount  int    `json:"review_count"`
}
