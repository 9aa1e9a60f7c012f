package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fermata_backend/internals/constants"
)

// newRoleTestApp memasang OnlyRoles di belakang stub yang menaruh role di
// context, meniru apa yang dilakukan AuthMiddleware setelah verifikasi token.
func newRoleTestApp(role string, allowed ...string) *fiber.App {
	app := fiber.New()
	app.Get("/guarded",
		func(c *fiber.Ctx) error {
			if role != "" {
				c.Locals("userRole", role)
			}
			return c.Next()
		},
		OnlyRoles("khusus admin", allowed...),
		func(c *fiber.Ctx) error {
			return c.JSON(fiber.Map{"success": true})
		},
	)
	return app
}

func doGuarded(t *testing.T, app *fiber.App) (*http.Response, map[string]interface{}) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return resp, body
}

func TestRoleMiddleware_MissingRoleIsUnauthorized(t *testing.T) {
	app := newRoleTestApp("", constants.RoleAdmin)

	resp, body := doGuarded(t, app)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Unauthorized: missing role information", body["message"])
}

func TestRoleMiddleware_WrongRoleIsForbidden(t *testing.T) {
	app := newRoleTestApp(constants.RoleStudent, constants.RoleAdmin)

	resp, body := doGuarded(t, app)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "khusus admin", body["message"])
}

func TestRoleMiddleware_AllowedRolePassesThrough(t *testing.T) {
	app := newRoleTestApp(constants.RoleAdmin, constants.RoleAdmin)

	resp, body := doGuarded(t, app)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, true, body["success"])
}

func TestRoleMiddleware_MultipleAllowedRoles(t *testing.T) {
	app := newRoleTestApp(constants.RoleTeacher, constants.RoleAdmin, constants.RoleTeacher)

	resp, _ := doGuarded(t, app)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestRoleMiddleware_EmptyMessageFallsBackToDefault(t *testing.T) {
	app := fiber.New()
	app.Get("/guarded",
		func(c *fiber.Ctx) error {
			c.Locals("userRole", constants.RoleStudent)
			return c.Next()
		},
		RoleMiddlewareWithCustomError([]string{constants.RoleAdmin}, ""),
		func(c *fiber.Ctx) error { return c.SendString("ok") },
	)

	resp, body := doGuarded(t, app)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "Forbidden: you are not authorized to access this resource", body["message"])
}
