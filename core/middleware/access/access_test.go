package access_test

import (
	"net/http/httptest"
	"testing"

	"static-server/core/middleware/access"
	"static-server/core/middleware/rayid"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func setupApp() (*fiber.App, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)

	app := fiber.New()
	app.Use(rayid.New())
	app.Use(access.New(zap.New(core)))
	app.Get("/ok", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	app.Get("/boom", func(c *fiber.Ctx) error {
		return assert.AnError
	})
	return app, logs
}

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		status  int
		message string
		level   zapcore.Level
	}{
		{"Served", "/ok?x=1", fiber.StatusOK, "Request served", zapcore.InfoLevel},
		{"NotFound", "/missing", fiber.StatusNotFound, "Request failed", zapcore.WarnLevel},
		{"HandlerError", "/boom", fiber.StatusInternalServerError, "Request error", zapcore.ErrorLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, logs := setupApp()

			resp, err := app.Test(httptest.NewRequest("GET", tt.path, nil))
			require.NoError(t, err)
			assert.Equal(t, tt.status, resp.StatusCode)

			entries := logs.All()
			require.Len(t, entries, 1)
			entry := entries[0]
			assert.Equal(t, tt.message, entry.Message)
			assert.Equal(t, tt.level, entry.Level)

			fields := entry.ContextMap()
			assert.Equal(t, "GET", fields["method"])
			assert.Equal(t, tt.path, fields["path"])
			assert.EqualValues(t, tt.status, fields["status"])
			assert.Equal(t, resp.Header.Get(rayid.HeaderName), fields["ray_id"])
		})
	}
}
