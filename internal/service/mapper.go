package service

import (
	"github.com/alimikegami/point-of-sales/storefront-service/internal/countdown"
	"github.com/alimikegami/point-of-sales/storefront-service/internal/domain"
	"github.com/alimikegami/point-of-sales/storefront-service/internal/dto"
	"github.com/alimikegami/point-of-sales/storefront-service/internal/pricing"
	"github.com/alimikegami/point-of-sales/storefront-service/internal/stats"
	"github.com/alimikegami/point-of-sales/storefront-service/pkg/utils"
)

func toProductCard(product domain.Product) dto.ProductCard {
	tag := pricing.Badge(product)
	return dto.ProductCard{
		ID:              product.ID,
		Name:            product.Name,
		Thumbnail:       product.Thumbnail,
		BrandName:       product.Brand.Name,
		CategoryName:    product.Category.Name,
		Price:           tag.Price,
		OriginalPrice:   tag.OriginalPrice,
		ShowOriginal:    tag.ShowOriginal,
		DiscountPercent: tag.DiscountPercent,
		DiscountBadge:   tag.Badge,
		Rating:          tag.Rating,
		ShowRating:      tag.ShowRating,
		BestSeller:      pricing.IsBestSeller(product),
		InStock:         product.InStock,
		Availability:    product.Availability,
	}
}

func toProductCards(products []domain.Product) []dto.ProductCard {
	cards := make([]dto.ProductCard, 0, len(products))
	for _, product := range products {
		cards = append(cards, toProductCard(product))
	}
	return cards
}

func toCategoryResponses(categories []domain.Category, limit int) []dto.CategoryResponse {
	responses := make([]dto.CategoryResponse, 0, limit)
	for _, category := range categories {
		if len(responses) >= limit {
			break
		}
		if !category.Active {
			continue
		}
		responses = append(responses, dto.CategoryResponse{
			ID:       category.ID,
			Name:     category.Name,
			ImageURL: category.ImageURL,
		})
	}
	return responses
}

func toUserRows(users []domain.User) []dto.UserRow {
	rows := make([]dto.UserRow, 0, len(users))
	for _, user := range users {
		row := dto.UserRow{
			ID:     user.ID,
			Name:   user.Name,
			Email:  user.Email,
			Phone:  user.Phone,
			Status: "active",
		}
		if !stats.IsActive(user) {
			row.Status = *user.Status
		}
		if user.CreatedAt != nil {
			if joined, ok := utils.ParseTimestamp(*user.CreatedAt); ok {
				row.JoinedAt = utils.FormatShortDate(joined)
			}
		}
		rows = append(rows, row)
	}
	return rows
}

func toCountdownResponse(remaining countdown.TimeRemaining) dto.CountdownResponse {
	return dto.CountdownResponse{
		Days:    remaining.Days,
		Hours:   remaining.Hours,
		Minutes: remaining.Minutes,
		Seconds: remaining.Seconds,
		Label:   remaining.String(),
		Ended:   remaining.IsZero(),
	}
}
