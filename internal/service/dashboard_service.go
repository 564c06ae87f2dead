package service

import (
	"context"
	"strings"
	"time"

	"github.com/alimikegami/point-of-sales/storefront-service/config"
	"github.com/alimikegami/point-of-sales/storefront-service/internal/domain"
	"github.com/alimikegami/point-of-sales/storefront-service/internal/dto"
	"github.com/alimikegami/point-of-sales/storefront-service/internal/listing"
	"github.com/alimikegami/point-of-sales/storefront-service/internal/repository"
	"github.com/alimikegami/point-of-sales/storefront-service/internal/snapshot"
	"github.com/alimikegami/point-of-sales/storefront-service/internal/stats"
	pkgdto "github.com/alimikegami/point-of-sales/storefront-service/pkg/dto"
	"github.com/rs/zerolog/log"
)

// DashboardServiceImpl serves the admin dashboard from a user snapshot kept per
// caller credential. A page load replaces the caller's snapshot; search and paging
// reuse it.
type DashboardServiceImpl struct {
	repo   repository.UserRepository
	views  *snapshot.Views[domain.User]
	config *config.Config
	now    func() time.Time
}

func CreateDashboardService(repo repository.UserRepository, config *config.Config) *DashboardServiceImpl {
	maxViews := config.ViewConfig.MaxViews
	if maxViews <= 0 {
		maxViews = 1
	}
	return &DashboardServiceImpl{
		repo:   repo,
		views:  snapshot.NewViews[domain.User](maxViews, config.ViewConfig.TTL),
		config: config,
		now:    time.Now,
	}
}

// holder picks the snapshot of whoever is asking, identified by the forwarded
// Authorization header.
func (s *DashboardServiceImpl) holder(ctx context.Context) *snapshot.Holder[domain.User] {
	credential, _ := repository.AuthorizationFrom(ctx)
	return s.views.Holder(snapshot.ViewKey(credential))
}

func (s *DashboardServiceImpl) GetDashboard(ctx context.Context, filter pkgdto.Filter) (dto.DashboardResponse, error) {
	users := s.holder(ctx)
	notice, err := s.refresh(ctx, users)
	if err != nil {
		return dto.DashboardResponse{}, err
	}

	response := s.render(users, filter)
	response.Notice = notice
	return response, nil
}

func (s *DashboardServiceImpl) GetDashboardUsers(ctx context.Context, filter pkgdto.Filter) (dto.DashboardResponse, error) {
	users := s.holder(ctx)
	var notice string
	if !users.Current().Loaded {
		var err error
		if notice, err = s.refresh(ctx, users); err != nil {
			return dto.DashboardResponse{}, err
		}
	}

	response := s.render(users, filter)
	response.Notice = notice
	return response, nil
}

// GetStats loads a fresh snapshot and returns only the counters.
func (s *DashboardServiceImpl) GetStats(ctx context.Context) (stats.DashboardStats, error) {
	users := s.holder(ctx)
	if _, err := s.refresh(ctx, users); err != nil {
		return stats.DashboardStats{}, err
	}
	return stats.Compute(users.Current().Records, s.now()), nil
}

// refresh fetches the user list and commits it unless a newer refresh started in the
// meantime. The returned notice is non-empty when every candidate failed.
func (s *DashboardServiceImpl) refresh(ctx context.Context, holder *snapshot.Holder[domain.User]) (string, error) {
	ticket := holder.Begin()

	users, res, err := s.repo.GetUsers(ctx)
	if err != nil {
		return "", contextError(err)
	}

	if !holder.Commit(ticket, users, s.now()) {
		log.Ctx(ctx).Info().Str("component", "Dashboard").
			Uint64("ticket", uint64(ticket)).
			Msg("dropping stale user snapshot")
	}

	if res.Exhausted() {
		return noDataNotice(ctx, "users", res), nil
	}
	return "", nil
}

func (s *DashboardServiceImpl) render(holder *snapshot.Holder[domain.User], filter pkgdto.Filter) dto.DashboardResponse {
	current := holder.Current()

	matches := listing.Filter(current.Records, strings.TrimSpace(filter.Q))
	page := listing.NewPage(matches, filter.Page, s.config.ListingConfig.ItemsPerPage)

	response := dto.DashboardResponse{
		Stats: stats.Compute(current.Records, s.now()),
		Users: dto.NewPaginationPage(page.State, toUserRows(page.Items)),
	}
	if current.Loaded {
		fetchedAt := current.FetchedAt
		response.SnapshotID = current.ID.String()
		response.FetchedAt = &fetchedAt
	}
	return response
}
