package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/seobuddy/seobuddy-api/internal/api/metrics"
	"github.com/seobuddy/seobuddy-api/internal/core/domain"
	"github.com/seobuddy/seobuddy-api/internal/core/ports"
)

type UploadHandler struct {
	uploadService ports.UploadService
}

func NewUploadHandler(uploadService ports.UploadService) *UploadHandler {
	return &UploadHandler{uploadService: uploadService}
}

type uploadListResponse struct {
	Uploads []*domain.Upload `json:"uploads"`
	Total   int64            `json:"total"`
	Page    int              `json:"page"`
	Limit   int              `json:"limit"`
}

// Store accepts a multipart file upload from an authenticated user.
//
// @Summary      Upload a file
// @Tags         uploads
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "File to upload"
// @Success      201   {object}  domain.Upload
// @Failure      400   {object}  map[string]string
// @Failure      413   {object}  map[string]string
// @Failure      415   {object}  map[string]string
// @Router       /uploads [post]
func (h *UploadHandler) Store(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	fh, err := c.FormFile("file")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "missing file field")
	}

	src, err := fh.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "unreadable file")
	}
	defer src.Close()

	up, err := h.uploadService.Store(c.Request().Context(), ports.UploadInput{
		OwnerID:     userID,
		FileName:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		SizeBytes:   fh.Size,
		Reader:      src,
	})
	if err != nil {
		return err
	}

	metrics.UploadsTotal.WithLabelValues(up.Extension).Inc()
	return c.JSON(http.StatusCreated, up)
}

// List returns upload metadata, newest first.
//
// @Summary      List uploads (admin)
// @Tags         uploads
// @Produce      json
// @Success      200  {object}  uploadListResponse
// @Router       /admin/uploads [get]
func (h *UploadHandler) List(c echo.Context) error {
	page, limit := pageParams(c)
	uploads, total, err := h.uploadService.List(c.Request().Context(), page, limit)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, uploadListResponse{Uploads: uploads, Total: total, Page: page, Limit: limit})
}
