package service

import (
	"context"
	"fmt"
	"time"

	"github.com/gosimple/slug"
	"github.com/rs/zerolog"

	"github.com/seobuddy/seobuddy-api/internal/core/domain"
	"github.com/seobuddy/seobuddy-api/internal/core/ports"
)

const maxPageSize = 100

type PostService struct {
	repo ports.PostRepository
	log  zerolog.Logger
}

func NewPostService(repo ports.PostRepository, log zerolog.Logger) *PostService {
	return &PostService{repo: repo, log: log}
}

// Create inserts a new post with a slug derived from the title. A slug
// collision is rejected rather than suffixed so editors pick a new title
// deliberately.
func (s *PostService) Create(ctx context.Context, input ports.CreatePostInput) (*domain.Post, error) {
	if input.Title == "" || input.Body == "" {
		return nil, domain.ErrInvalidInput
	}

	postSlug := slug.Make(input.Title)
	if _, err := s.repo.FindBySlug(ctx, postSlug); err == nil {
		return nil, domain.ErrSlugExists
	}

	now := time.Now().UTC()
	post := &domain.Post{
		Title:     input.Title,
		Slug:      postSlug,
		Excerpt:   input.Excerpt,
		Body:      input.Body,
		AuthorID:  input.AuthorID,
		Status:    domain.PostDraft,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if input.Publish {
		post.Status = domain.PostPublished
		post.PublishedAt = now
	}

	created, err := s.repo.Create(ctx, post)
	if err != nil {
		return nil, fmt.Errorf("create post: %w", err)
	}

	s.log.Info().Str("slug", created.Slug).Str("status", string(created.Status)).Msg("post created")
	return created, nil
}

// Update replaces the editable fields. The slug never changes after creation.
func (s *PostService) Update(ctx context.Context, id string, input ports.UpdatePostInput) (*domain.Post, error) {
	post, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Title != "" {
		post.Title = input.Title
	}
	if input.Excerpt != "" {
		post.Excerpt = input.Excerpt
	}
	if input.Body != "" {
		post.Body = input.Body
	}
	post.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, post); err != nil {
		return nil, fmt.Errorf("update post: %w", err)
	}
	return post, nil
}

// Publish moves a draft to the public site. Publishing an already published
// post is a no-op.
func (s *PostService) Publish(ctx context.Context, id string) (*domain.Post, error) {
	post, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if post.Published() {
		return post, nil
	}

	now := time.Now().UTC()
	post.Status = domain.PostPublished
	post.PublishedAt = now
	post.UpdatedAt = now

	if err := s.repo.Update(ctx, post); err != nil {
		return nil, fmt.Errorf("publish post: %w", err)
	}

	s.log.Info().Str("slug", post.Slug).Msg("post published")
	return post, nil
}

func (s *PostService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *PostService) GetBySlug(ctx context.Context, slug string) (*domain.Post, error) {
	post, err := s.repo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if !post.Published() {
		return nil, domain.ErrPostNotFound
	}
	return post, nil
}

func (s *PostService) ListPublished(ctx context.Context, page, limit int) ([]*domain.Post, int64, error) {
	return s.repo.List(ctx, ports.ListPostsFilter{
		Status: string(domain.PostPublished),
		Page:   clampPage(page),
		Limit:  clampLimit(limit),
	})
}

func (s *PostService) ListAll(ctx context.Context, page, limit int) ([]*domain.Post, int64, error) {
	return s.repo.List(ctx, ports.ListPostsFilter{
		Page:  clampPage(page),
		Limit: clampLimit(limit),
	})
}

func clampPage(page int) int {
	if page < 1 {
		return 1
	}
	return page
}

func clampLimit(limit int) int {
	if limit < 1 {
		return 20
	}
	if limit > maxPageSize {
		return maxPageSize
	}
	return limit
}
