package model

// Product is a catalog item
type Product struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Price       int64   `json:"price"`
	Image       string  `json:"image"`
	Thumbnail   string  `json:"thumbnail"`
	Rate        float32 `json:"rate"`
	Description string  `json:"description"`
	ShopID      int     `json:"shopId"`
	ShopName    string  `json:"shopName"`
	AddedAt     int64   `json:"addedAt"`
}
