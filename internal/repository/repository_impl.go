package repository

import (
	"context"

	"github.com/alimikegami/point-of-sales/storefront-service/config"
	"github.com/alimikegami/point-of-sales/storefront-service/internal/domain"
	"github.com/alimikegami/point-of-sales/storefront-service/internal/fetcher"
)

// BackendRepository reads every resource from the upstream backend through the
// resilient fetcher, one candidate list per resource.
type BackendRepository struct {
	fetcher   *fetcher.Fetcher
	transport fetcher.Transport
	breakers  fetcher.BreakerSource
	baseURL   string
	endpoints config.Endpoints
}

func CreateNewRepository(f *fetcher.Fetcher, transport fetcher.Transport, breakers fetcher.BreakerSource, baseURL string, endpoints config.Endpoints) *BackendRepository {
	return &BackendRepository{
		fetcher:   f,
		transport: transport,
		breakers:  breakers,
		baseURL:   baseURL,
		endpoints: endpoints,
	}
}

func (r *BackendRepository) candidates(ctx context.Context, paths []string) []fetcher.Strategy {
	return fetcher.HTTPCandidates(r.transport, r.breakers, r.baseURL, paths, headersFrom(ctx))
}

func (r *BackendRepository) GetProducts(ctx context.Context) ([]domain.Product, fetcher.Result, error) {
	return fetcher.FetchList[domain.Product](ctx, r.fetcher, r.candidates(ctx, r.endpoints.Products)...)
}

func (r *BackendRepository) GetProductDetails(ctx context.Context, id string) (domain.Product, fetcher.Result, error) {
	strategies := fetcher.HTTPTemplateCandidates(r.transport, r.breakers, r.baseURL, r.endpoints.ProductDetail, map[string]string{"id": id}, headersFrom(ctx))
	return fetcher.FetchOne[domain.Product](ctx, r.fetcher, strategies...)
}

func (r *BackendRepository) GetCategories(ctx context.Context) ([]domain.Category, fetcher.Result, error) {
	return fetcher.FetchList[domain.Category](ctx, r.fetcher, r.candidates(ctx, r.endpoints.Categories)...)
}

func (r *BackendRepository) GetFeaturedProducts(ctx context.Context) ([]domain.Product, fetcher.Result, error) {
	products, res, err := fetcher.FetchList[domain.Product](ctx, r.fetcher, r.candidates(ctx, r.endpoints.FeaturedProducts)...)
	for i := range products {
		products[i].Featured = true
	}
	return products, res, err
}

func (r *BackendRepository) GetUsers(ctx context.Context) ([]domain.User, fetcher.Result, error) {
	return fetcher.FetchList[domain.User](ctx, r.fetcher, r.candidates(ctx, r.endpoints.Users)...)
}
