package ports

import (
	"context"

	"github.com/seobuddy/seobuddy-api/internal/core/domain"
)

// ListPostsFilter carries query parameters for listing posts.
type ListPostsFilter struct {
	Status string // optional: filter by post status
	Page   int    // 1-based
	Limit  int    // max rows per page (capped by the service)
}

// PostRepository defines persistence operations for blog posts.
type PostRepository interface {
	Create(ctx context.Context, p *domain.Post) (*domain.Post, error)
	FindByID(ctx context.Context, id string) (*domain.Post, error)
	FindBySlug(ctx context.Context, slug string) (*domain.Post, error)
	Update(ctx context.Context, p *domain.Post) error
	Delete(ctx context.Context, id string) error
	// List returns a page of posts matching filter, newest first, plus the
	// total count of matches.
	List(ctx context.Context, filter ListPostsFilter) ([]*domain.Post, int64, error)
	Count(ctx context.Context, status string) (int64, error)
}
