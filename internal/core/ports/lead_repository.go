package ports

import (
	"context"

	"github.com/seobuddy/seobuddy-api/internal/core/domain"
)

// LeadRepository defines persistence operations for captured leads.
type LeadRepository interface {
	Insert(ctx context.Context, lead *domain.Lead) (*domain.Lead, error)
	// List returns a page of leads, newest first, plus the total count.
	List(ctx context.Context, page, limit int) ([]*domain.Lead, int64, error)
	Count(ctx context.Context) (int64, error)
}
