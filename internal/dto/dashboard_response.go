package dto

import (
	"time"

	"github.com/alimikegami/point-of-sales/storefront-service/internal/stats"
)

type UserRow struct {
	ID       string  `json:"id"`
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Phone    *string `json:"phone"`
	Status   string  `json:"status"`
	JoinedAt string  `json:"joined_at"`
}

type DashboardResponse struct {
	Stats      stats.DashboardStats `json:"stats"`
	Users      PaginationPage       `json:"users"`
	SnapshotID string               `json:"snapshot_id,omitempty"`
	FetchedAt  *time.Time           `json:"fetched_at,omitempty"`
	Notice     string               `json:"notice,omitempty"`
}
