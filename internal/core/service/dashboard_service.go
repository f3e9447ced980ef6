package service

import (
	"context"
	"fmt"

	"github.com/seobuddy/seobuddy-api/internal/core/domain"
	"github.com/seobuddy/seobuddy-api/internal/core/ports"
)

const recentItems = 5

type dashboardService struct {
	users   ports.UserRepository
	posts   ports.PostRepository
	leads   ports.LeadRepository
	uploads ports.UploadRepository
}

// NewDashboardService returns a DashboardService backed by the four stores.
func NewDashboardService(users ports.UserRepository, posts ports.PostRepository, leads ports.LeadRepository, uploads ports.UploadRepository) ports.DashboardService {
	return &dashboardService{users: users, posts: posts, leads: leads, uploads: uploads}
}

func (s *dashboardService) AdminOverview(ctx context.Context) (*ports.AdminOverview, error) {
	users, err := s.users.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("admin overview: count users: %w", err)
	}
	published, err := s.posts.Count(ctx, string(domain.PostPublished))
	if err != nil {
		return nil, fmt.Errorf("admin overview: count published posts: %w", err)
	}
	drafts, err := s.posts.Count(ctx, string(domain.PostDraft))
	if err != nil {
		return nil, fmt.Errorf("admin overview: count draft posts: %w", err)
	}
	uploads, err := s.uploads.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("admin overview: count uploads: %w", err)
	}
	recent, total, err := s.leads.List(ctx, 1, recentItems)
	if err != nil {
		return nil, fmt.Errorf("admin overview: list leads: %w", err)
	}

	return &ports.AdminOverview{
		Users:          users,
		PublishedPosts: published,
		DraftPosts:     drafts,
		Leads:          total,
		Uploads:        uploads,
		RecentLeads:    recent,
	}, nil
}

func (s *dashboardService) UserOverview(ctx context.Context, userID string) (*ports.UserOverview, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	posts, _, err := s.posts.List(ctx, ports.ListPostsFilter{
		Status: string(domain.PostPublished),
		Page:   1,
		Limit:  recentItems,
	})
	if err != nil {
		return nil, fmt.Errorf("user overview: list posts: %w", err)
	}

	return &ports.UserOverview{User: user, RecentPosts: posts}, nil
}
