// file: internals/route/index_test.go
package routes

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// registeredRoutes flattens the fiber route table into "METHOD path" keys.
func registeredRoutes(app *fiber.App) map[string]bool {
	out := map[string]bool{}
	for _, group := range app.Stack() {
		for _, r := range group {
			out[r.Method+" "+r.Path] = true
		}
	}
	return out
}

func TestSetupRoutes_MountsAllSurfaces(t *testing.T) {
	app := fiber.New()
	require.NotPanics(t, func() { SetupRoutes(app, nil) })

	routes := registeredRoutes(app)

	assert.True(t, routes["GET /health"])

	// public auth surface
	assert.True(t, routes["POST /api/auth/login"])
	assert.True(t, routes["POST /api/auth/refresh"])

	// authenticated surface
	assert.True(t, routes["GET /api/u/classrooms/"])
	assert.True(t, routes["POST /api/u/enrollments/"])

	// admin surface
	assert.True(t, routes["POST /api/a/users/"])
	assert.True(t, routes["POST /api/a/enrollments/:id/withdraw"])
	assert.True(t, routes["GET /api/a/dashboard/overview"])

	// teacher surface
	assert.True(t, routes["GET /api/t/classrooms/"])
}
