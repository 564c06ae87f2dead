package stats

import (
	"strings"
	"time"

	"github.com/alimikegami/point-of-sales/storefront-service/internal/domain"
	"github.com/alimikegami/point-of-sales/storefront-service/pkg/utils"
)

// RecentWindow is how far back from now a sign-up still counts as recent.
const RecentWindow = 30 * 24 * time.Hour

const statusActive = "active"

type DashboardStats struct {
	TotalUsers     int `json:"total_users"`
	ActiveUsers    int `json:"active_users"`
	RecentUsers    int `json:"recent_users"`
	UsersWithEmail int `json:"users_with_email"`
}

// Compute derives the dashboard counters from a user snapshot as of now.
func Compute(users []domain.User, now time.Time) DashboardStats {
	cutoff := now.Add(-RecentWindow)

	stats := DashboardStats{TotalUsers: len(users)}
	for _, user := range users {
		if IsActive(user) {
			stats.ActiveUsers++
		}
		if IsRecent(user, cutoff) {
			stats.RecentUsers++
		}
		if HasEmail(user) {
			stats.UsersWithEmail++
		}
	}
	return stats
}

// IsActive treats a missing or empty status as active.
func IsActive(user domain.User) bool {
	return user.Status == nil || *user.Status == "" || *user.Status == statusActive
}

// IsRecent reports whether the user was created strictly after cutoff. Users without a
// parseable creation time are never recent.
func IsRecent(user domain.User, cutoff time.Time) bool {
	if user.CreatedAt == nil {
		return false
	}
	createdAt, ok := utils.ParseTimestamp(*user.CreatedAt)
	if !ok {
		return false
	}
	return createdAt.After(cutoff)
}

func HasEmail(user domain.User) bool {
	return user.Email != nil && strings.TrimSpace(*user.Email) != ""
}
