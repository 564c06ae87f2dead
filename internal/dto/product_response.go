package dto

type ProductCard struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Thumbnail       *string `json:"thumbnail"`
	BrandName       string  `json:"brand_name,omitempty"`
	CategoryName    string  `json:"category_name,omitempty"`
	Price           string  `json:"price"`
	OriginalPrice   string  `json:"original_price"`
	ShowOriginal    bool    `json:"show_original_price"`
	DiscountPercent int     `json:"discount_percent"`
	DiscountBadge   string  `json:"discount_badge,omitempty"`
	Rating          string  `json:"rating,omitempty"`
	ShowRating      bool    `json:"show_rating"`
	BestSeller      bool    `json:"best_seller"`
	InStock         bool    `json:"in_stock"`
	Availability    string  `json:"availability,omitempty"`
}

type ProductDetailResponse struct {
	ProductCard
	DescriptionHTML string `json:"description_html"`
	Summary         string `json:"summary"`
}

// ProductListResponse is a searchable catalog page. Notice is set when the catalog
// could not be loaded and the list is empty for that reason.
type ProductListResponse struct {
	Products PaginationPage `json:"products"`
	Notice   string         `json:"notice,omitempty"`
}

type CategoryResponse struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	ImageURL *string `json:"image_url"`
}
