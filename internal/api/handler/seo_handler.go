package handler

import (
	"encoding/xml"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/seobuddy/seobuddy-api/internal/core/ports"
)

// sitemapPageSize bounds how many posts end up in the sitemap and feed.
const sitemapPageSize = 1000

// SEOHandler serves the crawler-facing surfaces: sitemap, robots, RSS feed.
// All three are generated from published posts and the configured base URL.
type SEOHandler struct {
	postService ports.PostService
	baseURL     string
}

func NewSEOHandler(postService ports.PostService, baseURL string) *SEOHandler {
	return &SEOHandler{postService: postService, baseURL: strings.TrimRight(baseURL, "/")}
}

type sitemapURL struct {
	Loc     string `xml:"loc"`
	LastMod string `xml:"lastmod,omitempty"`
}

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

// Sitemap renders sitemap.xml with the static pages and every published post.
func (h *SEOHandler) Sitemap(c echo.Context) error {
	posts, _, err := h.postService.ListPublished(c.Request().Context(), 1, sitemapPageSize)
	if err != nil {
		return err
	}

	set := sitemapURLSet{
		Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs: []sitemapURL{
			{Loc: h.baseURL + "/"},
			{Loc: h.baseURL + "/blog"},
		},
	}
	for _, p := range posts {
		set.URLs = append(set.URLs, sitemapURL{
			Loc:     h.baseURL + "/blog/" + p.Slug,
			LastMod: p.UpdatedAt.Format("2006-01-02"),
		})
	}

	out, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal sitemap: %w", err)
	}
	return c.Blob(http.StatusOK, "application/xml", append([]byte(xml.Header), out...))
}

// Robots renders robots.txt pointing crawlers at the sitemap and keeping them
// off the dashboards.
func (h *SEOHandler) Robots(c echo.Context) error {
	var b strings.Builder
	b.WriteString("User-agent: *\n")
	b.WriteString("Disallow: /dashboard\n")
	b.WriteString("Disallow: /user-dashboard\n")
	b.WriteString("Sitemap: " + h.baseURL + "/sitemap.xml\n")
	return c.String(http.StatusOK, b.String())
}

type rssItem struct {
	Title       string `xml:"title"`
	Link        string `xml:"link"`
	Description string `xml:"description,omitempty"`
	PubDate     string `xml:"pubDate"`
	GUID        string `xml:"guid"`
}

type rssChannel struct {
	Title       string    `xml:"title"`
	Link        string    `xml:"link"`
	Description string    `xml:"description"`
	Items       []rssItem `xml:"item"`
}

type rssFeed struct {
	XMLName xml.Name   `xml:"rss"`
	Version string     `xml:"version,attr"`
	Channel rssChannel `xml:"channel"`
}

// Feed renders the blog RSS feed from published posts.
func (h *SEOHandler) Feed(c echo.Context) error {
	posts, _, err := h.postService.ListPublished(c.Request().Context(), 1, sitemapPageSize)
	if err != nil {
		return err
	}

	feed := rssFeed{
		Version: "2.0",
		Channel: rssChannel{
			Title:       "SeoBuddy Blog",
			Link:        h.baseURL + "/blog",
			Description: "SEO tips and case studies from the SeoBuddy team.",
		},
	}
	for _, p := range posts {
		link := h.baseURL + "/blog/" + p.Slug
		feed.Channel.Items = append(feed.Channel.Items, rssItem{
			Title:       p.Title,
			Link:        link,
			Description: p.Excerpt,
			PubDate:     p.PublishedAt.Format(time.RFC1123Z),
			GUID:        link,
		})
	}

	out, err := xml.MarshalIndent(feed, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal feed: %w", err)
	}
	return c.Blob(http.StatusOK, "application/rss+xml", append([]byte(xml.Header), out...))
}
