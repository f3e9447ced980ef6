package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/seobuddy/seobuddy-api/internal/core/domain"
	"github.com/seobuddy/seobuddy-api/internal/core/ports"
)

// DedupChecker abstracts the recent-submission store (Redis).
type DedupChecker interface {
	IsDuplicate(ctx context.Context, email string) (bool, error)
	Mark(ctx context.Context, email string) error
}

type leadService struct {
	repo     ports.LeadRepository
	dedup    DedupChecker
	notifier ports.LeadNotifier
	log      zerolog.Logger
}

// NewLeadService returns a LeadService implementation.
func NewLeadService(repo ports.LeadRepository, dedup DedupChecker, notifier ports.LeadNotifier, log zerolog.Logger) ports.LeadService {
	return &leadService{repo: repo, dedup: dedup, notifier: notifier, log: log}
}

// Capture validates, deduplicates, persists, and enqueues a lead for
// notification. A repeat submission from the same email inside the dedup
// window succeeds without persisting or notifying again.
func (s *leadService) Capture(ctx context.Context, in ports.LeadInput) (*ports.CaptureResult, error) {
	email := normalizeEmail(in.Email)
	if in.Name == "" || email == "" || in.Message == "" {
		return nil, domain.ErrInvalidInput
	}

	isDup, err := s.dedup.IsDuplicate(ctx, email)
	if err != nil {
		s.log.Warn().Err(err).Str("email", email).Msg("lead dedup check failed, capturing anyway")
	} else if isDup {
		s.log.Debug().Str("email", email).Msg("duplicate lead skipped")
		return &ports.CaptureResult{Duplicate: true}, nil
	}

	if markErr := s.dedup.Mark(ctx, email); markErr != nil {
		s.log.Warn().Err(markErr).Str("email", email).Msg("failed to set lead dedup key")
	}

	lead := &domain.Lead{
		Name:      in.Name,
		Email:     email,
		Website:   in.Website,
		Message:   in.Message,
		Source:    in.Source,
		CreatedAt: time.Now().UTC(),
	}

	created, err := s.repo.Insert(ctx, lead)
	if err != nil {
		return nil, fmt.Errorf("capture lead: %w", err)
	}

	// Notification is best-effort and asynchronous; the form response never
	// waits on the channel delivery.
	s.notifier.Enqueue(*created)

	s.log.Info().
		Str("email", created.Email).
		Str("source", created.Source).
		Msg("lead captured")

	return &ports.CaptureResult{Lead: created}, nil
}

func (s *leadService) List(ctx context.Context, page, limit int) ([]*domain.Lead, int64, error) {
	return s.repo.List(ctx, clampPage(page), clampLimit(limit))
}
