package domain

import "encoding/json"

// Product covers both upstream shapes: the featured shape (productId, productName,
// originalPrice, finalPrice, thumbnail, shortDescription) and the listing shape
// (id, name, price, image, description).
type Product struct {
	ID            string
	Name          string
	OriginalPrice float64
	FinalPrice    float64
	Thumbnail     *string
	Description   string
	Availability  string
	InStock       bool
	Rating        string
	Brand         Brand
	Category      ProductCategory
	Discount      Discount
	Featured      bool
	Extra         Extra
}

type Brand struct {
	Name      string `json:"brandName"`
	ShortName string `json:"shortName"`
}

type ProductCategory struct {
	Name string `json:"categoryName"`
}

type Discount struct {
	Enabled bool   `json:"enabled"`
	Type    string `json:"type"`
	Amount  string `json:"amount"`
}

func (p *Product) UnmarshalJSON(data []byte) error {
	f, err := splitFields(data)
	if err != nil {
		return err
	}

	var product Product
	if product.ID, err = f.id("productId", "id", "_id"); err != nil {
		return err
	}
	if name := f.text("productName", "name"); name != nil {
		product.Name = *name
	}

	price := f.number("price")
	original := f.number("originalPrice")
	final := f.number("finalPrice")
	if original == nil {
		original = price
	}
	if final == nil {
		final = original
	}
	if original != nil {
		product.OriginalPrice = *original
	}
	if final != nil {
		product.FinalPrice = *final
	}

	product.Thumbnail = f.text("thumbnail", "image", "imageUrl")
	if description := f.text("description", "shortDescription"); description != nil {
		product.Description = *description
	}
	if availability := f.text("availability"); availability != nil {
		product.Availability = *availability
	}
	if inStock := f.flag("inStock"); inStock != nil {
		product.InStock = *inStock
	}
	if rating := f.text("rating"); rating != nil {
		product.Rating = *rating
	}
	if featured := f.flag("featured"); featured != nil {
		product.Featured = *featured
	}

	if brand, ok := object[Brand](f, "brand"); ok {
		product.Brand = brand
	}
	if category, ok := object[ProductCategory](f, "category"); ok {
		product.Category = category
	}
	if raw, ok := object[json.RawMessage](f, "discount"); ok {
		discount, ok := decodeDiscount(raw)
		if ok {
			product.Discount = discount
		} else {
			f["discount"] = raw
		}
	}

	product.Extra = f.extra()

	*p = product
	return nil
}

func (p Product) MarshalJSON() ([]byte, error) {
	known := map[string]any{
		"productId":        p.ID,
		"productName":      p.Name,
		"originalPrice":    p.OriginalPrice,
		"finalPrice":       p.FinalPrice,
		"shortDescription": p.Description,
		"availability":     p.Availability,
		"inStock":          p.InStock,
		"rating":           p.Rating,
		"brand":            p.Brand,
		"category":         p.Category,
		"discount":         p.Discount,
		"featured":         p.Featured,
	}
	setOptional(known, "thumbnail", p.Thumbnail)
	return marshalRecord(p.Extra, known)
}

func (p Product) SearchFields() (name, email, phone *string) {
	return &p.Name, nil, nil
}

func decodeDiscount(raw json.RawMessage) (Discount, bool) {
	f, err := splitFields(raw)
	if err != nil {
		return Discount{}, false
	}

	var discount Discount
	if enabled := f.flag("enabled"); enabled != nil {
		discount.Enabled = *enabled
	}
	if kind := f.text("type"); kind != nil {
		discount.Type = *kind
	}
	if amount := f.text("amount"); amount != nil {
		discount.Amount = *amount
	}
	return discount, true
}
