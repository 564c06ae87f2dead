package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/alimikegami/point-of-sales/storefront-service/config"
	"github.com/alimikegami/point-of-sales/storefront-service/internal/domain"
	"github.com/alimikegami/point-of-sales/storefront-service/internal/dto"
	"github.com/alimikegami/point-of-sales/storefront-service/internal/fetcher"
	"github.com/alimikegami/point-of-sales/storefront-service/internal/listing"
	"github.com/alimikegami/point-of-sales/storefront-service/internal/pricing"
	"github.com/alimikegami/point-of-sales/storefront-service/internal/repository"
	"github.com/alimikegami/point-of-sales/storefront-service/internal/richtext"
	pkgdto "github.com/alimikegami/point-of-sales/storefront-service/pkg/dto"
	"github.com/alimikegami/point-of-sales/storefront-service/pkg/errs"
	"github.com/rs/zerolog/log"
)

const (
	homeCategoryLimit   = 6
	homeFeaturedLimit   = 8
	homeBestSellerLimit = 6
)

type StorefrontServiceImpl struct {
	repo     repository.CatalogRepository
	clock    CountdownSource
	renderer *richtext.Renderer
	config   *config.Config
}

func CreateStorefrontService(repo repository.CatalogRepository, clock CountdownSource, renderer *richtext.Renderer, config *config.Config) StorefrontService {
	return &StorefrontServiceImpl{repo: repo, clock: clock, renderer: renderer, config: config}
}

func (s *StorefrontServiceImpl) GetHome(ctx context.Context) (response dto.HomeResponse, err error) {
	categories, res, err := s.repo.GetCategories(ctx)
	if err != nil {
		return response, contextError(err)
	}
	response.Notices = appendNotice(ctx, response.Notices, "categories", res)

	featured, res, err := s.repo.GetFeaturedProducts(ctx)
	if err != nil {
		return response, contextError(err)
	}
	response.Notices = appendNotice(ctx, response.Notices, "featured products", res)

	// best sellers are picked from the whole featured response, before the cap
	response.Categories = toCategoryResponses(categories, homeCategoryLimit)
	response.BestSellers = toProductCards(pricing.BestSellers(featured, homeBestSellerLimit))
	if len(featured) > homeFeaturedLimit {
		featured = featured[:homeFeaturedLimit]
	}
	response.Featured = toProductCards(featured)
	response.Countdown = s.GetCountdown(ctx)
	return response, nil
}

func (s *StorefrontServiceImpl) GetProducts(ctx context.Context, filter pkgdto.Filter) (response dto.ProductListResponse, err error) {
	products, res, err := s.repo.GetProducts(ctx)
	if err != nil {
		return response, contextError(err)
	}
	if res.Exhausted() {
		response.Notice = noDataNotice(ctx, "products", res)
	}

	matches := listing.Filter(filterByCategory(products, filter.Category), strings.TrimSpace(filter.Q))
	page := listing.NewPage(matches, filter.Page, s.config.ListingConfig.ItemsPerPage)
	response.Products = dto.NewPaginationPage(page.State, toProductCards(page.Items))
	return response, nil
}

func (s *StorefrontServiceImpl) GetProductDetails(ctx context.Context, id string) (response dto.ProductDetailResponse, err error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return response, fmt.Errorf("%w: product id is required", errs.ErrClient)
	}

	product, res, err := s.repo.GetProductDetails(ctx, id)
	if err != nil {
		return response, contextError(err)
	}
	if res.Exhausted() {
		err = exhaustedLookupError(res)
		log.Ctx(ctx).Error().Err(err).Str("component", "GetProductDetails").Str("product_id", id).Msg("")
		return response, err
	}

	response.ProductCard = toProductCard(product)
	response.DescriptionHTML = s.renderer.Render(product.Description)
	response.Summary = s.renderer.Plain(product.Description)
	return response, nil
}

func (s *StorefrontServiceImpl) GetCountdown(ctx context.Context) dto.CountdownResponse {
	return toCountdownResponse(s.clock.Remaining())
}

func filterByCategory(products []domain.Product, category string) []domain.Product {
	category = strings.TrimSpace(category)
	if category == "" {
		return products
	}
	filtered := make([]domain.Product, 0, len(products))
	for _, product := range products {
		if strings.EqualFold(product.Category.Name, category) {
			filtered = append(filtered, product)
		}
	}
	return filtered
}

func appendNotice(ctx context.Context, notices []string, resource string, res fetcher.Result) []string {
	if !res.Exhausted() {
		return notices
	}
	return append(notices, noDataNotice(ctx, resource, res))
}

func noDataNotice(ctx context.Context, resource string, res fetcher.Result) string {
	log.Ctx(ctx).Warn().Str("component", "Storefront").
		Str("resource", resource).
		Int("attempts", len(res.Attempts)).
		Msg("all candidates failed, serving empty list")
	return fmt.Sprintf("%s: %s", resource, errs.ErrNoData.Error())
}
