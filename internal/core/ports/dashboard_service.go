package ports

import (
	"context"

	"github.com/seobuddy/seobuddy-api/internal/core/domain"
)

// AdminOverview is the payload behind the admin dashboard.
type AdminOverview struct {
	Users          int64          `json:"users"`
	PublishedPosts int64          `json:"published_posts"`
	DraftPosts     int64          `json:"draft_posts"`
	Leads          int64          `json:"leads"`
	Uploads        int64          `json:"uploads"`
	RecentLeads    []*domain.Lead `json:"recent_leads"`
}

// UserOverview is the payload behind the user dashboard.
type UserOverview struct {
	User        *domain.User   `json:"user"`
	RecentPosts []*domain.Post `json:"recent_posts"`
}

// DashboardService aggregates the read models behind the two dashboards.
type DashboardService interface {
	AdminOverview(ctx context.Context) (*AdminOverview, error)
	UserOverview(ctx context.Context, userID string) (*UserOverview, error)
}
