package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/seobuddy/seobuddy-api/internal/core/domain"
)

const gateSecret = "gate-test-secret"

// newGateApp wires the full chain a dashboard request passes through in
// production: session materialization, the authenticated check, and the
// role-based cross-redirect.
func newGateApp() *echo.Echo {
	e := echo.New()
	e.Use(Session(gateSecret))

	ok := func(body string) echo.HandlerFunc {
		return func(c echo.Context) error {
			return c.String(http.StatusOK, body)
		}
	}

	dash := e.Group(adminDashboardPath, RequireSession(), DashboardGate())
	dash.GET("", ok("admin dashboard"))
	dash.GET("/settings", ok("settings"))

	userDash := e.Group(userDashboardPath, RequireSession(), DashboardGate())
	userDash.GET("", ok("user dashboard"))

	return e
}

func gateRequest(e *echo.Echo, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.AddCookie(&http.Cookie{Name: SessionCookie, Value: token})
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestDashboardGate_AdminOnAdminDashboard(t *testing.T) {
	e := newGateApp()
	token := signToken(t, gateSecret, "bob", domain.RoleAdmin, time.Hour)

	rec := gateRequest(e, "/dashboard", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if rec.Body.String() != "admin dashboard" {
		t.Fatalf("unexpected body: %q", rec.Body.String())
	}
}

func TestDashboardGate_AdminOnUserDashboardRedirects(t *testing.T) {
	e := newGateApp()
	token := signToken(t, gateSecret, "bob", domain.RoleAdmin, time.Hour)

	rec := gateRequest(e, "/user-dashboard", token)
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/dashboard" {
		t.Fatalf("expected redirect to /dashboard, got %q", loc)
	}
}

func TestDashboardGate_UserOnAdminDashboardRedirects(t *testing.T) {
	e := newGateApp()
	token := signToken(t, gateSecret, "alice", domain.RoleUser, time.Hour)

	rec := gateRequest(e, "/dashboard", token)
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/user-dashboard" {
		t.Fatalf("expected redirect to /user-dashboard, got %q", loc)
	}
}

func TestDashboardGate_UserOnUserDashboard(t *testing.T) {
	e := newGateApp()
	token := signToken(t, gateSecret, "alice", domain.RoleUser, time.Hour)

	rec := gateRequest(e, "/user-dashboard", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

// A token with no role claim belongs on the user dashboard, same as USER.
func TestDashboardGate_UnsetRoleTreatedAsUser(t *testing.T) {
	e := newGateApp()
	token := signToken(t, gateSecret, "carol", "", time.Hour)

	if rec := gateRequest(e, "/user-dashboard", token); rec.Code != http.StatusOK {
		t.Fatalf("expected 200 on /user-dashboard, got %d", rec.Code)
	}
	rec := gateRequest(e, "/dashboard", token)
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303 on /dashboard, got %d", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/user-dashboard" {
		t.Fatalf("expected redirect to /user-dashboard, got %q", loc)
	}
}

func TestDashboardGate_AnonymousDenied(t *testing.T) {
	e := newGateApp()

	for _, path := range []string{"/dashboard", "/user-dashboard", "/dashboard/settings"} {
		if rec := gateRequest(e, path, ""); rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401 on %s for anonymous request, got %d", path, rec.Code)
		}
	}
}

func TestDashboardGate_ExpiredTokenDenied(t *testing.T) {
	e := newGateApp()
	token := signToken(t, gateSecret, "bob", domain.RoleAdmin, -time.Minute)

	if rec := gateRequest(e, "/dashboard", token); rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for expired token, got %d", rec.Code)
	}
}

// Only the two exact dashboard paths cross-redirect. Nested paths require a
// session but never bounce by role, so deep links keep working.
func TestDashboardGate_NestedPathNoRedirect(t *testing.T) {
	e := newGateApp()
	token := signToken(t, gateSecret, "alice", domain.RoleUser, time.Hour)

	rec := gateRequest(e, "/dashboard/settings", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 on nested path, got %d", rec.Code)
	}
	if rec.Body.String() != "settings" {
		t.Fatalf("unexpected body: %q", rec.Body.String())
	}
}

// The gate is deterministic: replaying an identical request yields an
// identical decision.
func TestDashboardGate_Idempotent(t *testing.T) {
	e := newGateApp()
	token := signToken(t, gateSecret, "alice", domain.RoleUser, time.Hour)

	first := gateRequest(e, "/dashboard", token)
	second := gateRequest(e, "/dashboard", token)

	if first.Code != second.Code {
		t.Fatalf("decision changed between identical requests: %d vs %d", first.Code, second.Code)
	}
	if first.Header().Get("Location") != second.Header().Get("Location") {
		t.Fatalf("redirect target changed between identical requests")
	}
}

func TestRequireRole(t *testing.T) {
	e := echo.New()
	e.Use(Session(gateSecret))
	admin := e.Group("/admin", RequireSession(), RequireRole(domain.RoleAdmin))
	admin.GET("/posts", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	adminToken := signToken(t, gateSecret, "bob", domain.RoleAdmin, time.Hour)
	if rec := gateRequest(e, "/admin/posts", adminToken); rec.Code != http.StatusOK {
		t.Fatalf("expected 200 for admin, got %d", rec.Code)
	}

	userToken := signToken(t, gateSecret, "alice", domain.RoleUser, time.Hour)
	if rec := gateRequest(e, "/admin/posts", userToken); rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for non-admin, got %d", rec.Code)
	}

	if rec := gateRequest(e, "/admin/posts", ""); rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for anonymous, got %d", rec.Code)
	}
}
