package ports

import (
	"context"
	"io"

	"github.com/seobuddy/seobuddy-api/internal/core/domain"
)

// UploadInput carries one incoming file from the transport layer.
type UploadInput struct {
	OwnerID     string
	FileName    string
	ContentType string
	SizeBytes   int64
	Reader      io.Reader
}

// UploadService stores uploaded files and their metadata.
type UploadService interface {
	Store(ctx context.Context, input UploadInput) (*domain.Upload, error)
	List(ctx context.Context, page, limit int) ([]*domain.Upload, int64, error)
}
