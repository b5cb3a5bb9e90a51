package entity

// Review as stored remotely. Rating carries the raw five-digit scale, never
// the 1-5 star value shown to users.
type Review struct {
	ID        string `json:"id"`
	ProductID string `json:"productId"`
	CreatedAt string `json:"createdAt"`
	Name      string `json:"name"`
	Avatar    string `json:"avatar"`
	Email     string `json:"email"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	Rating    int    `json:"rating"`
	Verified  bool   `json:"verified"`
	Likes     int    `json:"likes"`
}
