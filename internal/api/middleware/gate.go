package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/seobuddy/seobuddy-api/internal/api/metrics"
	"github.com/seobuddy/seobuddy-api/internal/core/domain"
)

const (
	adminDashboardPath = "/dashboard"
	userDashboardPath  = "/user-dashboard"
)

// RequireSession denies anonymous requests. It fails closed: no materialized
// session means not authorized, regardless of why the token was absent or
// rejected.
func RequireSession() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			userID, _ := c.Get(CtxUserID).(string)
			if userID == "" {
				metrics.GateDecisionsTotal.WithLabelValues("deny").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
			}
			return next(c)
		}
	}
}

// DashboardGate sends each authenticated user to the dashboard matching their
// role. The cross-redirect applies to the two exact dashboard paths only;
// nested paths pass through on the authenticated check alone, which keeps
// deep links working and rules out redirect loops. The decision is a pure
// function of path and session state, so re-evaluating an unchanged request
// always yields the same outcome.
func DashboardGate() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get(CtxRole).(string)
			admin := role == domain.RoleAdmin

			switch c.Request().URL.Path {
			case adminDashboardPath:
				if !admin {
					metrics.GateDecisionsTotal.WithLabelValues("redirect").Inc()
					return c.Redirect(http.StatusSeeOther, userDashboardPath)
				}
			case userDashboardPath:
				if admin {
					metrics.GateDecisionsTotal.WithLabelValues("redirect").Inc()
					return c.Redirect(http.StatusSeeOther, adminDashboardPath)
				}
			}

			metrics.GateDecisionsTotal.WithLabelValues("allow").Inc()
			return next(c)
		}
	}
}

// RequireRole restricts a route to the given roles. Used for admin-management
// surfaces outside the dashboard prefixes (blog writes, lead listings).
func RequireRole(allowedRoles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get(CtxRole).(string)
			if _, ok := allowed[role]; !ok {
				return echo.NewHTTPError(http.StatusForbidden, "forbidden")
			}
			return next(c)
		}
	}
}
