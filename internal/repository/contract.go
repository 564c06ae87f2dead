package repository

import (
	"context"

	"github.com/alimikegami/point-of-sales/storefront-service/internal/domain"
	"github.com/alimikegami/point-of-sales/storefront-service/internal/fetcher"
)

// Every read returns the fetch Result alongside the records so callers can tell an
// exhausted candidate list from an upstream that legitimately has nothing. The error
// is non-nil only when ctx ended before a candidate answered.
type CatalogRepository interface {
	GetProducts(ctx context.Context) ([]domain.Product, fetcher.Result, error)
	GetProductDetails(ctx context.Context, id string) (domain.Product, fetcher.Result, error)
	GetCategories(ctx context.Context) ([]domain.Category, fetcher.Result, error)
	GetFeaturedProducts(ctx context.Context) ([]domain.Product, fetcher.Result, error)
}

type UserRepository interface {
	GetUsers(ctx context.Context) ([]domain.User, fetcher.Result, error)
}
