// Package pricing formats prices and derives discount badges for catalog records.
package pricing

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/alimikegami/point-of-sales/storefront-service/internal/domain"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// BestSellerRating is the minimum rating for a product to be listed as a best seller.
const BestSellerRating = 4.0

var printer = message.NewPrinter(language.AmericanEnglish)

// FormatCurrency renders amount as US dollars with two fraction digits and en-US
// digit grouping, e.g. $1,234.50.
func FormatCurrency(amount float64) string {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		amount = 0
	}
	cents := math.Round(amount * 100)
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return sign + "$" + printer.Sprintf("%.2f", cents/100)
}

// DiscountPercent is the whole-percent reduction from original to final, within [0, 100].
func DiscountPercent(original, final float64) int {
	if original <= 0 || final >= original {
		return 0
	}
	percent := math.Round((original - final) / original * 100)
	return int(math.Max(0, math.Min(100, percent)))
}

// ParseRating reads the string-encoded rating; unparseable ratings count as 0.
func ParseRating(rating string) float64 {
	value, err := strconv.ParseFloat(strings.TrimSpace(rating), 64)
	if err != nil || math.IsNaN(value) {
		return 0
	}
	return value
}

type PriceTag struct {
	Price           string
	OriginalPrice   string
	ShowOriginal    bool
	DiscountPercent int
	Badge           string
	Rating          string
	ShowRating      bool
}

// Badge builds the price block shown for a product. The selling price falls back to
// the original price when the final price is missing.
func Badge(product domain.Product) PriceTag {
	selling := product.FinalPrice
	if selling == 0 {
		selling = product.OriginalPrice
	}

	percent := DiscountPercent(product.OriginalPrice, selling)
	tag := PriceTag{
		Price:           FormatCurrency(selling),
		OriginalPrice:   FormatCurrency(product.OriginalPrice),
		ShowOriginal:    percent > 0,
		DiscountPercent: percent,
		Rating:          product.Rating,
		ShowRating:      ParseRating(product.Rating) > 0,
	}
	if percent > 0 {
		tag.Badge = fmt.Sprintf("-%d%%", percent)
	}
	return tag
}

func IsBestSeller(product domain.Product) bool {
	return ParseRating(product.Rating) >= BestSellerRating
}

// BestSellers keeps the first limit products rated at least BestSellerRating.
func BestSellers(products []domain.Product, limit int) []domain.Product {
	sellers := make([]domain.Product, 0, limit)
	for _, product := range products {
		if len(sellers) >= limit {
			break
		}
		if IsBestSeller(product) {
			sellers = append(sellers, product)
		}
	}
	return sellers
}
