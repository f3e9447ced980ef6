package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/seobuddy/seobuddy-api/internal/api/middleware"
)

// ctxIdentity extracts the session identity injected by the Session
// middleware and fast-fails before any service call. A non-empty user id
// proves the materializer ran and accepted a token; the role is already
// normalized to exactly ADMIN or USER.
func ctxIdentity(c echo.Context) (userID, role string, err error) {
	userID, _ = c.Get(middleware.CtxUserID).(string)
	if userID == "" {
		return "", "", echo.NewHTTPError(http.StatusUnauthorized, "missing session claims")
	}

	role, _ = c.Get(middleware.CtxRole).(string)
	return userID, role, nil
}
