package middleware

import (
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/seobuddy/seobuddy-api/internal/core/domain"
)

// SessionCookie is the cookie the login endpoint sets and the session
// middleware reads. A bearer Authorization header is accepted as well for
// API clients.
const SessionCookie = "seobuddy_session"

// Context keys populated by Session for downstream middleware and handlers.
const (
	CtxUserID = "user_id"
	CtxEmail  = "user_email"
	CtxName   = "user_name"
	CtxRole   = "user_role"
)

// Session materializes the session token into request context. An absent,
// malformed, or expired token leaves the request anonymous; it is never an
// error at this layer. The role is normalized here once, so every consumer
// sees exactly ADMIN or USER. The credential store is not consulted: the
// claims are trusted as issued until the token expires.
func Session(jwtSecret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw := extractToken(c)
			if raw == "" {
				return next(c)
			}

			claims := jwt.MapClaims{}
			tkn, err := jwt.ParseWithClaims(raw, claims, func(token *jwt.Token) (interface{}, error) {
				if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
					return nil, jwt.ErrTokenSignatureInvalid
				}
				return []byte(jwtSecret), nil
			})
			if err != nil || !tkn.Valid {
				// Invalid or expired token: proceed anonymous.
				return next(c)
			}

			sub, _ := claims["sub"].(string)
			if sub == "" {
				return next(c)
			}

			email, _ := claims["email"].(string)
			name, _ := claims["name"].(string)
			role, _ := claims["role"].(string)

			c.Set(CtxUserID, sub)
			c.Set(CtxEmail, email)
			c.Set(CtxName, name)
			c.Set(CtxRole, domain.NormalizeRole(role))

			return next(c)
		}
	}
}

// extractToken pulls the session token from the cookie or, failing that, a
// bearer Authorization header.
func extractToken(c echo.Context) string {
	if cookie, err := c.Cookie(SessionCookie); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return ""
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}
	return parts[1]
}
