package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/seobuddy/seobuddy-api/internal/core/domain"
)

func signToken(t *testing.T, secret, sub, role string, ttl time.Duration) string {
	t.Helper()
	claims := jwt.MapClaims{
		"sub":   sub,
		"email": sub + "@seobuddy.io",
		"name":  "Test User",
		"iat":   time.Now().Unix(),
		"exp":   time.Now().Add(ttl).Unix(),
	}
	if role != "" {
		claims["role"] = role
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func runSession(t *testing.T, secret string, mutate func(*http.Request)) echo.Context {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	mutate(req)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var captured echo.Context
	mw := Session(secret)
	handler := mw(func(c echo.Context) error {
		captured = c
		return c.NoContent(http.StatusOK)
	})
	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	return captured
}

func TestSession_ValidCookie(t *testing.T) {
	token := signToken(t, "secret", "user-1", domain.RoleAdmin, time.Hour)
	c := runSession(t, "secret", func(req *http.Request) {
		req.AddCookie(&http.Cookie{Name: SessionCookie, Value: token})
	})

	if got, _ := c.Get(CtxUserID).(string); got != "user-1" {
		t.Fatalf("user id not materialized: %q", got)
	}
	if got, _ := c.Get(CtxRole).(string); got != domain.RoleAdmin {
		t.Fatalf("role not materialized: %q", got)
	}
}

func TestSession_BearerHeader(t *testing.T) {
	token := signToken(t, "secret", "user-2", domain.RoleUser, time.Hour)
	c := runSession(t, "secret", func(req *http.Request) {
		req.Header.Set("Authorization", "Bearer "+token)
	})

	if got, _ := c.Get(CtxUserID).(string); got != "user-2" {
		t.Fatalf("user id not materialized from bearer header: %q", got)
	}
}

// A token without a role claim is a valid session with no elevated privilege:
// the materializer collapses it to USER.
func TestSession_MissingRoleClaim(t *testing.T) {
	token := signToken(t, "secret", "user-3", "", time.Hour)
	c := runSession(t, "secret", func(req *http.Request) {
		req.AddCookie(&http.Cookie{Name: SessionCookie, Value: token})
	})

	if got, _ := c.Get(CtxUserID).(string); got != "user-3" {
		t.Fatalf("user id not materialized: %q", got)
	}
	if got, _ := c.Get(CtxRole).(string); got != domain.RoleUser {
		t.Fatalf("expected missing role to collapse to USER, got %q", got)
	}
}

func TestSession_ExpiredTokenIsAnonymous(t *testing.T) {
	token := signToken(t, "secret", "user-4", domain.RoleAdmin, -time.Minute)
	c := runSession(t, "secret", func(req *http.Request) {
		req.AddCookie(&http.Cookie{Name: SessionCookie, Value: token})
	})

	if got := c.Get(CtxUserID); got != nil {
		t.Fatalf("expired token must not materialize a session, got %v", got)
	}
}

func TestSession_TamperedTokenIsAnonymous(t *testing.T) {
	token := signToken(t, "other-secret", "user-5", domain.RoleAdmin, time.Hour)
	c := runSession(t, "secret", func(req *http.Request) {
		req.AddCookie(&http.Cookie{Name: SessionCookie, Value: token})
	})

	if got := c.Get(CtxUserID); got != nil {
		t.Fatalf("token signed with wrong secret must not materialize a session")
	}
}

func TestSession_NoTokenIsAnonymous(t *testing.T) {
	c := runSession(t, "secret", func(*http.Request) {})

	if got := c.Get(CtxUserID); got != nil {
		t.Fatalf("expected anonymous request, got user id %v", got)
	}
	if got := c.Get(CtxRole); got != nil {
		t.Fatalf("expected no role for anonymous request, got %v", got)
	}
}
