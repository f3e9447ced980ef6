package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/seobuddy/seobuddy-api/internal/api/middleware"
	"github.com/seobuddy/seobuddy-api/internal/core/ports"
)

type DashboardHandler struct {
	dashboardService ports.DashboardService
}

func NewDashboardHandler(dashboardService ports.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// Admin serves the admin dashboard payload. The gate has already redirected
// non-admin sessions, so by the time this runs the role is ADMIN.
//
// @Summary      Admin dashboard
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  ports.AdminOverview
// @Failure      401  {object}  map[string]string
// @Router       /dashboard [get]
func (h *DashboardHandler) Admin(c echo.Context) error {
	overview, err := h.dashboardService.AdminOverview(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, overview)
}

// User serves the user dashboard payload.
//
// @Summary      User dashboard
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  ports.UserOverview
// @Failure      401  {object}  map[string]string
// @Router       /user-dashboard [get]
func (h *DashboardHandler) User(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	overview, err := h.dashboardService.UserOverview(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, overview)
}

type settingsResponse struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
	Role   string `json:"role"`
}

// Settings serves the account settings view. It sits on a nested dashboard
// path, which is gated on authentication only; no cross-redirect applies.
//
// @Summary      Account settings
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  settingsResponse
// @Failure      401  {object}  map[string]string
// @Router       /dashboard/settings [get]
func (h *DashboardHandler) Settings(c echo.Context) error {
	userID, role, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	email, _ := c.Get(middleware.CtxEmail).(string)
	name, _ := c.Get(middleware.CtxName).(string)

	return c.JSON(http.StatusOK, settingsResponse{
		UserID: userID,
		Email:  email,
		Name:   name,
		Role:   role,
	})
}
