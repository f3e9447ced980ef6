package ports

import (
	"context"

	"github.com/seobuddy/seobuddy-api/internal/core/domain"
)

// CreatePostInput is the DTO passed from the transport layer to PostService.
type CreatePostInput struct {
	Title    string
	Excerpt  string
	Body     string
	AuthorID string
	Publish  bool
}

// UpdatePostInput replaces the editable fields of an existing post.
type UpdatePostInput struct {
	Title   string
	Excerpt string
	Body    string
}

// PostService implements the blog publishing workflow.
type PostService interface {
	Create(ctx context.Context, input CreatePostInput) (*domain.Post, error)
	Update(ctx context.Context, id string, input UpdatePostInput) (*domain.Post, error)
	Publish(ctx context.Context, id string) (*domain.Post, error)
	Delete(ctx context.Context, id string) error
	GetBySlug(ctx context.Context, slug string) (*domain.Post, error)
	// ListPublished returns publicly visible posts, newest first.
	ListPublished(ctx context.Context, page, limit int) ([]*domain.Post, int64, error)
	// ListAll returns posts in every state for the admin dashboard.
	ListAll(ctx context.Context, page, limit int) ([]*domain.Post, int64, error)
}
