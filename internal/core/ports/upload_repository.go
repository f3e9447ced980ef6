package ports

import (
	"context"

	"github.com/seobuddy/seobuddy-api/internal/core/domain"
)

// UploadRepository defines persistence operations for upload metadata.
type UploadRepository interface {
	Insert(ctx context.Context, up *domain.Upload) (*domain.Upload, error)
	List(ctx context.Context, page, limit int) ([]*domain.Upload, int64, error)
	Count(ctx context.Context) (int64, error)
}
