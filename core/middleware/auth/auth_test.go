package auth_test

import (
	"net/http/httptest"
	"testing"

	"checkatron/core/middleware/auth"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newApp(cfg auth.Config) *fiber.App {
	app := fiber.New()
	app.Use(auth.New(cfg))
	app.Get("/diff/codes", func(c *fiber.Ctx) error { return c.SendString("ok") })
	app.Get("/health", func(c *fiber.Ctx) error { return c.SendString("ok") })
	return app
}

func TestAuth(t *testing.T) {
	tests := []struct {
		name   string
		cfg    auth.Config
		path   string
		header string
		want   int
	}{
		{"disabled", auth.Config{}, "/diff/codes", "", 200},
		{"missing key", auth.Config{ApiKey: "secret"}, "/diff/codes", "", 401},
		{"wrong key", auth.Config{ApiKey: "secret"}, "/diff/codes", "nope", 401},
		{"header key", auth.Config{ApiKey: "secret"}, "/diff/codes", "secret", 200},
		{"query key", auth.Config{ApiKey: "secret"}, "/diff/codes?api_key=secret", "", 200},
		{
			"skipped path",
			auth.Config{ApiKey: "secret", Next: func(c *fiber.Ctx) bool { return c.Path() == "/health" }},
			"/health", "", 200,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", tt.path, nil)
			if tt.header != "" {
				req.Header.Set(auth.HeaderName, tt.header)
			}
			resp, err := newApp(tt.cfg).Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.want, resp.StatusCode)
		})
	}
}
