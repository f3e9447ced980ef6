package service

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/seobuddy/seobuddy-api/internal/core/domain"
	"github.com/seobuddy/seobuddy-api/internal/core/ports"
)

// allowedExtensions is the whitelist for uploaded files.
var allowedExtensions = map[string]struct{}{
	".png":  {},
	".jpg":  {},
	".jpeg": {},
	".gif":  {},
	".webp": {},
	".pdf":  {},
}

type UploadService struct {
	repo     ports.UploadRepository
	dir      string
	maxBytes int64
	log      zerolog.Logger
}

func NewUploadService(repo ports.UploadRepository, dir string, maxBytes int64, log zerolog.Logger) *UploadService {
	if maxBytes <= 0 {
		maxBytes = 8 << 20
	}
	return &UploadService{repo: repo, dir: dir, maxBytes: maxBytes, log: log}
}

// Store writes the file under an opaque uuid name and persists its metadata.
// The original file name is kept for display but never used on disk.
func (s *UploadService) Store(ctx context.Context, in ports.UploadInput) (*domain.Upload, error) {
	ext := strings.ToLower(filepath.Ext(in.FileName))
	if _, ok := allowedExtensions[ext]; !ok {
		return nil, domain.ErrUnsupportedFileType
	}
	if in.SizeBytes > s.maxBytes {
		return nil, domain.ErrUploadTooLarge
	}

	storedName := uuid.NewString() + ext
	dst, err := os.Create(filepath.Join(s.dir, storedName))
	if err != nil {
		return nil, fmt.Errorf("store upload: %w", err)
	}
	defer dst.Close()

	// The declared size is not trusted: copy at most maxBytes+1 and reject
	// anything that exceeds the limit mid-stream.
	written, err := io.Copy(dst, io.LimitReader(in.Reader, s.maxBytes+1))
	if err != nil {
		_ = os.Remove(dst.Name())
		return nil, fmt.Errorf("store upload: %w", err)
	}
	if written > s.maxBytes {
		_ = os.Remove(dst.Name())
		return nil, domain.ErrUploadTooLarge
	}

	up := &domain.Upload{
		OwnerID:     in.OwnerID,
		FileName:    in.FileName,
		StoredName:  storedName,
		Extension:   strings.TrimPrefix(ext, "."),
		ContentType: in.ContentType,
		SizeBytes:   written,
		CreatedAt:   time.Now().UTC(),
	}

	created, err := s.repo.Insert(ctx, up)
	if err != nil {
		_ = os.Remove(dst.Name())
		return nil, fmt.Errorf("store upload: %w", err)
	}

	s.log.Info().
		Str("stored_name", created.StoredName).
		Str("owner_id", created.OwnerID).
		Int64("size_bytes", created.SizeBytes).
		Msg("file uploaded")

	return created, nil
}

func (s *UploadService) List(ctx context.Context, page, limit int) ([]*domain.Upload, int64, error) {
	return s.repo.List(ctx, clampPage(page), clampLimit(limit))
}
