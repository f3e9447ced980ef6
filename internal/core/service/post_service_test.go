package service

import (
	"context"
	"strconv"
	"testing"

	"github.com/rs/zerolog"

	"github.com/seobuddy/seobuddy-api/internal/core/domain"
	"github.com/seobuddy/seobuddy-api/internal/core/ports"
)

type stubPostRepo struct {
	posts  map[string]*domain.Post // keyed by id
	nextID int
}

func newStubPostRepo() *stubPostRepo {
	return &stubPostRepo{posts: make(map[string]*domain.Post)}
}

func clonePost(p *domain.Post) *domain.Post {
	if p == nil {
		return nil
	}
	clone := *p
	return &clone
}

func (r *stubPostRepo) Create(_ context.Context, p *domain.Post) (*domain.Post, error) {
	for _, existing := range r.posts {
		if existing.Slug == p.Slug {
			return nil, domain.ErrSlugExists
		}
	}
	r.nextID++
	copy := clonePost(p)
	copy.ID = strconv.Itoa(r.nextID)
	r.posts[copy.ID] = clonePost(copy)
	return clonePost(copy), nil
}

func (r *stubPostRepo) FindByID(_ context.Context, id string) (*domain.Post, error) {
	if p, ok := r.posts[id]; ok {
		return clonePost(p), nil
	}
	return nil, domain.ErrPostNotFound
}

func (r *stubPostRepo) FindBySlug(_ context.Context, slug string) (*domain.Post, error) {
	for _, p := range r.posts {
		if p.Slug == slug {
			return clonePost(p), nil
		}
	}
	return nil, domain.ErrPostNotFound
}

func (r *stubPostRepo) Update(_ context.Context, p *domain.Post) error {
	if _, ok := r.posts[p.ID]; !ok {
		return domain.ErrPostNotFound
	}
	r.posts[p.ID] = clonePost(p)
	return nil
}

func (r *stubPostRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.posts[id]; !ok {
		return domain.ErrPostNotFound
	}
	delete(r.posts, id)
	return nil
}

func (r *stubPostRepo) List(_ context.Context, filter ports.ListPostsFilter) ([]*domain.Post, int64, error) {
	var out []*domain.Post
	for _, p := range r.posts {
		if filter.Status == "" || string(p.Status) == filter.Status {
			out = append(out, clonePost(p))
		}
	}
	return out, int64(len(out)), nil
}

func (r *stubPostRepo) Count(_ context.Context, status string) (int64, error) {
	var n int64
	for _, p := range r.posts {
		if status == "" || string(p.Status) == status {
			n++
		}
	}
	return n, nil
}

func TestPostService_Create_SlugFromTitle(t *testing.T) {
	svc := NewPostService(newStubPostRepo(), zerolog.Nop())

	post, err := svc.Create(context.Background(), ports.CreatePostInput{
		Title:    "Why Core Web Vitals Matter",
		Body:     "body",
		AuthorID: "a1",
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if post.Slug != "why-core-web-vitals-matter" {
		t.Fatalf("unexpected slug: %s", post.Slug)
	}
	if post.Status != domain.PostDraft {
		t.Fatalf("expected draft status, got %s", post.Status)
	}
	if !post.PublishedAt.IsZero() {
		t.Fatalf("draft should have no publish time")
	}
}

func TestPostService_Create_DuplicateSlug(t *testing.T) {
	svc := NewPostService(newStubPostRepo(), zerolog.Nop())

	if _, err := svc.Create(context.Background(), ports.CreatePostInput{Title: "Same Title", Body: "b"}); err != nil {
		t.Fatalf("first create failed: %v", err)
	}
	if _, err := svc.Create(context.Background(), ports.CreatePostInput{Title: "Same Title", Body: "b"}); err != domain.ErrSlugExists {
		t.Fatalf("expected ErrSlugExists, got %v", err)
	}
}

func TestPostService_Create_Validation(t *testing.T) {
	svc := NewPostService(newStubPostRepo(), zerolog.Nop())

	if _, err := svc.Create(context.Background(), ports.CreatePostInput{Title: "", Body: "b"}); err != domain.ErrInvalidInput {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestPostService_Publish(t *testing.T) {
	svc := NewPostService(newStubPostRepo(), zerolog.Nop())

	draft, err := svc.Create(context.Background(), ports.CreatePostInput{Title: "Draft Post", Body: "b"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	published, err := svc.Publish(context.Background(), draft.ID)
	if err != nil {
		t.Fatalf("publish failed: %v", err)
	}
	if published.Status != domain.PostPublished {
		t.Fatalf("expected published status, got %s", published.Status)
	}
	if published.PublishedAt.IsZero() {
		t.Fatalf("expected publish time to be set")
	}

	// Publishing again is a no-op and keeps the original publish time.
	again, err := svc.Publish(context.Background(), draft.ID)
	if err != nil {
		t.Fatalf("second publish failed: %v", err)
	}
	if !again.PublishedAt.Equal(published.PublishedAt) {
		t.Fatalf("publish time changed on republish")
	}
}

func TestPostService_GetBySlug_HidesDrafts(t *testing.T) {
	svc := NewPostService(newStubPostRepo(), zerolog.Nop())

	draft, _ := svc.Create(context.Background(), ports.CreatePostInput{Title: "Hidden Draft", Body: "b"})
	if _, err := svc.GetBySlug(context.Background(), draft.Slug); err != domain.ErrPostNotFound {
		t.Fatalf("expected draft to be invisible, got %v", err)
	}

	if _, err := svc.Publish(context.Background(), draft.ID); err != nil {
		t.Fatalf("publish failed: %v", err)
	}
	if _, err := svc.GetBySlug(context.Background(), draft.Slug); err != nil {
		t.Fatalf("expected published post to be visible, got %v", err)
	}
}

func TestPostService_Update_KeepsSlug(t *testing.T) {
	svc := NewPostService(newStubPostRepo(), zerolog.Nop())

	post, _ := svc.Create(context.Background(), ports.CreatePostInput{Title: "Original Title", Body: "b"})
	updated, err := svc.Update(context.Background(), post.ID, ports.UpdatePostInput{Title: "Completely New Title"})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Title != "Completely New Title" {
		t.Fatalf("title not updated: %s", updated.Title)
	}
	if updated.Slug != post.Slug {
		t.Fatalf("slug must not change on update: %s", updated.Slug)
	}
}
