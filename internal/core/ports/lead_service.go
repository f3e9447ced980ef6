package ports

import (
	"context"

	"github.com/seobuddy/seobuddy-api/internal/core/domain"
)

// LeadInput is the DTO passed from the public form endpoints to LeadService.
type LeadInput struct {
	Name    string
	Email   string
	Website string
	Message string
	Source  string
}

// CaptureResult reports what happened to a submitted lead. Duplicate means
// the same contact already submitted recently; the request still succeeds but
// nothing was persisted or notified.
type CaptureResult struct {
	Lead      *domain.Lead
	Duplicate bool
}

// LeadService processes incoming lead submissions.
type LeadService interface {
	Capture(ctx context.Context, input LeadInput) (*CaptureResult, error)
	List(ctx context.Context, page, limit int) ([]*domain.Lead, int64, error)
}

// LeadNotifier hands a persisted lead to the asynchronous notification
// pipeline. Enqueue must not block the capture request path.
type LeadNotifier interface {
	Enqueue(lead domain.Lead)
}
