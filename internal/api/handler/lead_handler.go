package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/seobuddy/seobuddy-api/internal/api/metrics"
	"github.com/seobuddy/seobuddy-api/internal/core/domain"
	"github.com/seobuddy/seobuddy-api/internal/core/ports"
)

type LeadHandler struct {
	leadService ports.LeadService
}

func NewLeadHandler(leadService ports.LeadService) *LeadHandler {
	return &LeadHandler{leadService: leadService}
}

type leadRequest struct {
	Name    string `json:"name" validate:"required,max=120"`
	Email   string `json:"email" validate:"required,email"`
	Website string `json:"website" validate:"omitempty,url"`
	Message string `json:"message" validate:"required,max=4000"`
	Source  string `json:"source" validate:"omitempty,max=60"`
}

type leadResponse struct {
	Status string `json:"status"`
}

type leadListResponse struct {
	Leads []*domain.Lead `json:"leads"`
	Total int64          `json:"total"`
	Page  int            `json:"page"`
	Limit int            `json:"limit"`
}

// Capture accepts a lead form submission. Repeat submissions from the same
// email inside the dedup window get the same response as a fresh one, so the
// form never reveals whether an address was seen before.
//
// @Summary      Submit a lead form
// @Tags         leads
// @Accept       json
// @Produce      json
// @Param        body  body      leadRequest  true  "Lead details"
// @Success      202   {object}  leadResponse
// @Failure      400   {object}  map[string]string
// @Router       /leads [post]
func (h *LeadHandler) Capture(c echo.Context) error {
	var req leadRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	source := req.Source
	if source == "" {
		source = "contact"
	}

	result, err := h.leadService.Capture(c.Request().Context(), ports.LeadInput{
		Name:    req.Name,
		Email:   req.Email,
		Website: req.Website,
		Message: req.Message,
		Source:  source,
	})
	if err != nil {
		return err
	}

	if result.Duplicate {
		metrics.LeadDedupTotal.WithLabelValues("hit").Inc()
	} else {
		metrics.LeadDedupTotal.WithLabelValues("miss").Inc()
		metrics.LeadsCapturedTotal.WithLabelValues(source).Inc()
	}

	return c.JSON(http.StatusAccepted, leadResponse{Status: "received"})
}

// List returns captured leads, newest first.
//
// @Summary      List leads (admin)
// @Tags         leads
// @Produce      json
// @Param        page   query     int  false  "Page (1-based)"
// @Param        limit  query     int  false  "Page size"
// @Success      200    {object}  leadListResponse
// @Router       /admin/leads [get]
func (h *LeadHandler) List(c echo.Context) error {
	page, limit := pageParams(c)
	leads, total, err := h.leadService.List(c.Request().Context(), page, limit)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, leadListResponse{Leads: leads, Total: total, Page: page, Limit: limit})
}
