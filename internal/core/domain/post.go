package domain

import (
	"errors"
	"time"
)

// PostStatus represents the publication state of a blog post.
type PostStatus string

const (
	PostDraft     PostStatus = "draft"
	PostPublished PostStatus = "published"
)

var ErrPostNotFound = errors.New("post not found")
var ErrSlugExists = errors.New("slug already exists")

// Post is a blog entry. Slug is derived from the title at creation time and
// stays stable across edits so published URLs never break.
type Post struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Slug        string     `json:"slug"`
	Excerpt     string     `json:"excerpt,omitempty"`
	Body        string     `json:"body"`
	AuthorID    string     `json:"author_id"`
	Status      PostStatus `json:"status"`
	PublishedAt time.Time  `json:"published_at,omitzero"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// Published reports whether the post is visible on the public site.
func (p *Post) Published() bool {
	return p.Status == PostPublished
}
