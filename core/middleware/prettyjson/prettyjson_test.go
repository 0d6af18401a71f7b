package prettyjson_test

import (
	"io"
	"net/http/httptest"
	"testing"

	"countries-api/core/middleware/prettyjson"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func body(t *testing.T, app *fiber.App, target string) string {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest("GET", target, nil))
	require.NoError(t, err)
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(b)
}

func TestPrettyJSON(t *testing.T) {
	app := fiber.New()
	app.Use(prettyjson.New())
	app.Get("/json", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"name": "Chad"})
	})
	app.Get("/text", func(c *fiber.Ctx) error {
		return c.SendString(`{"name":"Chad"}`)
	})

	assert.Equal(t, `{"name":"Chad"}`, body(t, app, "/json"))
	assert.Equal(t, "{\n  \"name\": \"Chad\"\n}", body(t, app, "/json?pretty"))
	assert.Equal(t, "{\n  \"name\": \"Chad\"\n}", body(t, app, "/json?pretty=true"))
	assert.Equal(t, `{"name":"Chad"}`, body(t, app, "/text?pretty"))
}
