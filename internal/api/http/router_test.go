package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/hr-service/internal/auth"
)

// newRouterTestApp registers the full route table with an auth middleware
// that rejects every request, so tests can tell a bound route (401 from the
// auth chain) from an unbound one (404/405 from the router).
func newRouterTestApp() *fiber.App {
	app := fiber.New()
	RegisterMiddlewares(app, zap.NewNop(), nil, 0)
	RegisterRoutes(app, RouteConfig{
		AuthMiddleware: auth.NewAuthMiddleware(auth.NewTokenManager("test-secret", 60), nil),
	})
	return app
}

func routeStatus(t *testing.T, app *fiber.App, method, path string) int {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(method, path, nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	return resp.StatusCode
}

func TestRoutes_GenerateBoundToPost(t *testing.T) {
	app := newRouterTestApp()

	// POST reaches the auth chain; it is the issuance route clients use.
	assert.Equal(t, http.StatusUnauthorized, routeStatus(t, app, http.MethodPost, "/api/attendance/generate"))
	assert.Equal(t, http.StatusUnauthorized, routeStatus(t, app, http.MethodPost, "/api/attendance/generate?force=true"))

	// GET has no binding on that path.
	assert.Equal(t, http.StatusMethodNotAllowed, routeStatus(t, app, http.MethodGet, "/api/attendance/generate"))
}

func TestRoutes_AttendanceScanAndList(t *testing.T) {
	app := newRouterTestApp()

	assert.Equal(t, http.StatusUnauthorized, routeStatus(t, app, http.MethodPost, "/api/attendance/scan"))
	assert.Equal(t, http.StatusUnauthorized, routeStatus(t, app, http.MethodGet, "/api/attendance"))
}

func TestRoutes_ProtectedResourcesRequireAuth(t *testing.T) {
	app := newRouterTestApp()

	for _, tc := range []struct{ method, path string }{
		{http.MethodGet, "/api/auth/verify"},
		{http.MethodPost, "/api/auth/password/change"},
		{http.MethodGet, "/api/users"},
		{http.MethodGet, "/api/department"},
		{http.MethodPost, "/api/department"},
		{http.MethodGet, "/api/employee"},
		{http.MethodPost, "/api/leave"},
		{http.MethodPut, "/api/leave/some-id/status"},
		{http.MethodGet, "/api/admin/stats"},
	} {
		assert.Equal(t, http.StatusUnauthorized, routeStatus(t, app, tc.method, tc.path), "%s %s", tc.method, tc.path)
	}
}
