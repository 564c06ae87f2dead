package service

import (
	"context"

	"github.com/alimikegami/point-of-sales/storefront-service/internal/countdown"
	"github.com/alimikegami/point-of-sales/storefront-service/internal/dto"
	"github.com/alimikegami/point-of-sales/storefront-service/internal/stats"
	pkgdto "github.com/alimikegami/point-of-sales/storefront-service/pkg/dto"
)

type StorefrontService interface {
	GetHome(ctx context.Context) (dto.HomeResponse, error)
	GetProducts(ctx context.Context, filter pkgdto.Filter) (dto.ProductListResponse, error)
	GetProductDetails(ctx context.Context, id string) (dto.ProductDetailResponse, error)
	GetCountdown(ctx context.Context) dto.CountdownResponse
}

type DashboardService interface {
	GetDashboard(ctx context.Context, filter pkgdto.Filter) (dto.DashboardResponse, error)
	GetDashboardUsers(ctx context.Context, filter pkgdto.Filter) (dto.DashboardResponse, error)
	GetStats(ctx context.Context) (stats.DashboardStats, error)
}

// CountdownSource is the promotional clock shown on the storefront.
type CountdownSource interface {
	Remaining() countdown.TimeRemaining
}
