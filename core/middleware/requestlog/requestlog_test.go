package requestlog_test

import (
	"net/http/httptest"
	"testing"

	"countries-api/core/middleware/rayid"
	"countries-api/core/middleware/requestlog"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestRequestLog(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)

	app := fiber.New()
	app.Use(rayid.New())
	app.Use(requestlog.New(zap.New(core)))
	app.Get("/ok", func(c *fiber.Ctx) error { return c.SendString("ok") })
	app.Get("/fail", func(c *fiber.Ctx) error { return fiber.ErrBadRequest })

	_, err := app.Test(httptest.NewRequest("GET", "/ok", nil))
	require.NoError(t, err)
	_, err = app.Test(httptest.NewRequest("GET", "/fail", nil))
	require.NoError(t, err)

	require.Equal(t, 2, logs.Len())

	ok := logs.All()[0]
	assert.Equal(t, "Request completed", ok.Message)
	assert.Equal(t, "/ok", ok.ContextMap()["path"])
	assert.Equal(t, int64(200), ok.ContextMap()["status"])
	assert.NotEmpty(t, ok.ContextMap()["ray_id"])

	assert.Equal(t, "Request completed with error", logs.All()[1].Message)
}
