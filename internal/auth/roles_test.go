package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/hr-service/internal/domain"
	apperrors "github.com/spec-kit/hr-service/pkg/util"
)

// newRoleTestApp returns an app where the request principal is set from the
// X-Test-Role header before the gate under test runs.
func newRoleTestApp(gate fiber.Handler) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		if role := c.Get("X-Test-Role"); role != "" {
			SetPrincipal(c, &Principal{
				User: &domain.User{ID: "user-1", Role: domain.Role(role)},
				Role: domain.Role(role),
			})
		}
		return c.Next()
	})
	app.Get("/guarded", gate, func(c *fiber.Ctx) error {
		return c.SendStatus(http.StatusOK)
	})
	return app
}

func doRoleRequest(t *testing.T, app *fiber.App, role string) int {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	if role != "" {
		req.Header.Set("X-Test-Role", role)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	return resp.StatusCode
}

func TestRequireRole_AllowsListedRole(t *testing.T) {
	app := newRoleTestApp(RequireRole(domain.RoleManager))
	assert.Equal(t, http.StatusOK, doRoleRequest(t, app, "manager"))
}

func TestRequireRole_AdminPassesEveryGate(t *testing.T) {
	app := newRoleTestApp(RequireRole(domain.RoleManager))
	assert.Equal(t, http.StatusOK, doRoleRequest(t, app, "admin"))
}

// Fiber's default error handler does not know DomainError, so the denial
// tests capture the error the gate returns directly.
func TestRequireRole_DeniedRoleIsForbidden(t *testing.T) {
	app := fiber.New()
	var gateErr error
	app.Get("/guarded", func(c *fiber.Ctx) error {
		SetPrincipal(c, &Principal{User: &domain.User{ID: "user-1"}, Role: domain.RoleEmployee})
		gateErr = RequireRole(domain.RoleAdmin)(c)
		return nil
	})
	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Error(t, gateErr)
	assert.Equal(t, http.StatusForbidden, apperrors.ToDomainError(gateErr).HTTPStatus)
}

func TestRequireRole_UnauthenticatedIsUnauthorized(t *testing.T) {
	app := fiber.New()
	var gateErr error
	app.Get("/guarded", func(c *fiber.Ctx) error {
		gateErr = RequireRole(domain.RoleAdmin)(c)
		return nil
	})
	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Error(t, gateErr)
	assert.Equal(t, http.StatusUnauthorized, apperrors.ToDomainError(gateErr).HTTPStatus)
}

func TestRequireAuthenticated(t *testing.T) {
	app := newRoleTestApp(RequireAuthenticated())
	assert.Equal(t, http.StatusOK, doRoleRequest(t, app, "employee"))
}
