package service

import (
	"context"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/seobuddy/seobuddy-api/internal/core/domain"
	"github.com/seobuddy/seobuddy-api/internal/core/ports"
)

type stubUploadRepo struct {
	uploads []*domain.Upload
	nextID  int
}

func (r *stubUploadRepo) Insert(_ context.Context, up *domain.Upload) (*domain.Upload, error) {
	r.nextID++
	copy := *up
	copy.ID = strconv.Itoa(r.nextID)
	r.uploads = append(r.uploads, &copy)
	return &copy, nil
}

func (r *stubUploadRepo) List(_ context.Context, _, _ int) ([]*domain.Upload, int64, error) {
	return r.uploads, int64(len(r.uploads)), nil
}

func (r *stubUploadRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.uploads)), nil
}

func TestUploadService_Store_Success(t *testing.T) {
	dir := t.TempDir()
	repo := &stubUploadRepo{}
	svc := NewUploadService(repo, dir, 1024, zerolog.Nop())

	up, err := svc.Store(context.Background(), ports.UploadInput{
		OwnerID:     "u1",
		FileName:    "logo.PNG",
		ContentType: "image/png",
		SizeBytes:   5,
		Reader:      strings.NewReader("bytes"),
	})
	if err != nil {
		t.Fatalf("Store returned error: %v", err)
	}
	if up.Extension != "png" {
		t.Fatalf("unexpected extension: %s", up.Extension)
	}
	if up.StoredName == "logo.PNG" {
		t.Fatalf("stored name must be opaque")
	}
	if up.SizeBytes != 5 {
		t.Fatalf("unexpected size: %d", up.SizeBytes)
	}

	data, err := os.ReadFile(filepath.Join(dir, up.StoredName))
	if err != nil {
		t.Fatalf("stored file unreadable: %v", err)
	}
	if string(data) != "bytes" {
		t.Fatalf("stored file corrupted: %q", data)
	}
}

func TestUploadService_Store_UnsupportedType(t *testing.T) {
	svc := NewUploadService(&stubUploadRepo{}, t.TempDir(), 1024, zerolog.Nop())

	_, err := svc.Store(context.Background(), ports.UploadInput{
		OwnerID:  "u1",
		FileName: "payload.exe",
		Reader:   strings.NewReader("x"),
	})
	if err != domain.ErrUnsupportedFileType {
		t.Fatalf("expected ErrUnsupportedFileType, got %v", err)
	}
}

func TestUploadService_Store_DeclaredTooLarge(t *testing.T) {
	svc := NewUploadService(&stubUploadRepo{}, t.TempDir(), 10, zerolog.Nop())

	_, err := svc.Store(context.Background(), ports.UploadInput{
		OwnerID:   "u1",
		FileName:  "big.png",
		SizeBytes: 11,
		Reader:    strings.NewReader("x"),
	})
	if err != domain.ErrUploadTooLarge {
		t.Fatalf("expected ErrUploadTooLarge, got %v", err)
	}
}

// The declared size is advisory; an oversized stream must be rejected and the
// partial file removed.
func TestUploadService_Store_StreamTooLarge(t *testing.T) {
	dir := t.TempDir()
	svc := NewUploadService(&stubUploadRepo{}, dir, 10, zerolog.Nop())

	_, err := svc.Store(context.Background(), ports.UploadInput{
		OwnerID:   "u1",
		FileName:  "sneaky.png",
		SizeBytes: 5,
		Reader:    strings.NewReader(strings.Repeat("x", 64)),
	})
	if err != domain.ErrUploadTooLarge {
		t.Fatalf("expected ErrUploadTooLarge, got %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("partial file left behind: %v", entries)
	}
}
