package server_test

import (
	"io"
	"net/http/httptest"
	"testing"

	"countries-api/core/i18n"
	"countries-api/core/server"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestWelcomeHandler(t *testing.T) {
	catalogue, err := i18n.DefaultCatalogue()
	require.NoError(t, err)
	resolver, err := i18n.NewResolver(catalogue, "en", zap.NewNop())
	require.NoError(t, err)

	app := fiber.New()
	app.Get("/", server.WelcomeHandler(resolver))

	tests := []struct {
		lang string
		want string
	}{
		{"", catalogue["en"][server.KeyWelcome]},
		{"es-AR", catalogue["es"][server.KeyWelcome]},
		{"ja", catalogue["en"][server.KeyWelcome]},
	}

	for _, tt := range tests {
		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set("Accept-Language", tt.lang)
		resp, err := app.Test(req)
		require.NoError(t, err)

		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		assert.Equal(t, tt.want, string(body), tt.lang)
	}
}
