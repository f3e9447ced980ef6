package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/seobuddy/seobuddy-api/internal/api/metrics"
	"github.com/seobuddy/seobuddy-api/internal/core/domain"
	"github.com/seobuddy/seobuddy-api/internal/core/ports"
)

type PostHandler struct {
	postService ports.PostService
}

func NewPostHandler(postService ports.PostService) *PostHandler {
	return &PostHandler{postService: postService}
}

type createPostRequest struct {
	Title   string `json:"title" validate:"required,min=3,max=200"`
	Excerpt string `json:"excerpt" validate:"max=500"`
	Body    string `json:"body" validate:"required"`
	Publish bool   `json:"publish"`
}

type updatePostRequest struct {
	Title   string `json:"title" validate:"omitempty,min=3,max=200"`
	Excerpt string `json:"excerpt" validate:"max=500"`
	Body    string `json:"body"`
}

type postListResponse struct {
	Posts []*domain.Post `json:"posts"`
	Total int64          `json:"total"`
	Page  int            `json:"page"`
	Limit int            `json:"limit"`
}

// ListPublished returns the public blog index.
//
// @Summary      List published posts
// @Tags         blog
// @Produce      json
// @Param        page   query     int  false  "Page (1-based)"
// @Param        limit  query     int  false  "Page size"
// @Success      200    {object}  postListResponse
// @Router       /posts [get]
func (h *PostHandler) ListPublished(c echo.Context) error {
	page, limit := pageParams(c)
	posts, total, err := h.postService.ListPublished(c.Request().Context(), page, limit)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, postListResponse{Posts: posts, Total: total, Page: page, Limit: limit})
}

// GetBySlug returns a single published post.
//
// @Summary      Get a post by slug
// @Tags         blog
// @Produce      json
// @Param        slug  path      string  true  "Post slug"
// @Success      200   {object}  domain.Post
// @Failure      404   {object}  map[string]string
// @Router       /posts/{slug} [get]
func (h *PostHandler) GetBySlug(c echo.Context) error {
	post, err := h.postService.GetBySlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, post)
}

// ListAll returns posts in every state for editors.
//
// @Summary      List all posts (admin)
// @Tags         blog
// @Produce      json
// @Success      200  {object}  postListResponse
// @Router       /admin/posts [get]
func (h *PostHandler) ListAll(c echo.Context) error {
	page, limit := pageParams(c)
	posts, total, err := h.postService.ListAll(c.Request().Context(), page, limit)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, postListResponse{Posts: posts, Total: total, Page: page, Limit: limit})
}

// Create inserts a new post.
//
// @Summary      Create a post (admin)
// @Tags         blog
// @Accept       json
// @Produce      json
// @Param        body  body      createPostRequest  true  "Post contents"
// @Success      201   {object}  domain.Post
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /admin/posts [post]
func (h *PostHandler) Create(c echo.Context) error {
	var req createPostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	authorID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	post, err := h.postService.Create(c.Request().Context(), ports.CreatePostInput{
		Title:    req.Title,
		Excerpt:  req.Excerpt,
		Body:     req.Body,
		AuthorID: authorID,
		Publish:  req.Publish,
	})
	if err != nil {
		return err
	}
	if post.Published() {
		metrics.PostsPublishedTotal.Inc()
	}

	return c.JSON(http.StatusCreated, post)
}

// Update replaces the editable fields of a post.
//
// @Summary      Update a post (admin)
// @Tags         blog
// @Accept       json
// @Produce      json
// @Param        id    path      string             true  "Post id"
// @Param        body  body      updatePostRequest  true  "New contents"
// @Success      200   {object}  domain.Post
// @Failure      404   {object}  map[string]string
// @Router       /admin/posts/{id} [put]
func (h *PostHandler) Update(c echo.Context) error {
	var req updatePostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	post, err := h.postService.Update(c.Request().Context(), c.Param("id"), ports.UpdatePostInput{
		Title:   req.Title,
		Excerpt: req.Excerpt,
		Body:    req.Body,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, post)
}

// Publish moves a draft to the public site.
//
// @Summary      Publish a post (admin)
// @Tags         blog
// @Produce      json
// @Param        id  path      string  true  "Post id"
// @Success      200  {object}  domain.Post
// @Failure      404  {object}  map[string]string
// @Router       /admin/posts/{id}/publish [post]
func (h *PostHandler) Publish(c echo.Context) error {
	post, err := h.postService.Publish(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	metrics.PostsPublishedTotal.Inc()
	return c.JSON(http.StatusOK, post)
}

// Delete removes a post.
//
// @Summary      Delete a post (admin)
// @Tags         blog
// @Param        id  path  string  true  "Post id"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /admin/posts/{id} [delete]
func (h *PostHandler) Delete(c echo.Context) error {
	if err := h.postService.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// pageParams parses the page/limit query parameters with sane fallbacks.
func pageParams(c echo.Context) (page, limit int) {
	page, _ = strconv.Atoi(c.QueryParam("page"))
	if page < 1 {
		page = 1
	}
	limit, _ = strconv.Atoi(c.QueryParam("limit"))
	if limit < 1 {
		limit = 20
	}
	return page, limit
}
