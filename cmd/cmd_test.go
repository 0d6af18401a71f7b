package cmd

import (
	"bytes"
	"io"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"countries-api/core/config"
	"countries-api/core/dataset"
	"countries-api/core/i18n"
	"countries-api/core/index"
	"countries-api/core/metrics"
	"countries-api/core/query"
	"countries-api/core/server"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func sampleRecords(t *testing.T) []*dataset.Record {
	t.Helper()
	records, err := (&dataset.FileSource{Path: filepath.Join("..", "data", "countries.json")}).Load(t.Context())
	require.NoError(t, err)
	return records
}

func newTestRuntime(t *testing.T, apiKey string) *runtime {
	t.Helper()
	catalogue, err := i18n.DefaultCatalogue()
	require.NoError(t, err)
	resolver, err := i18n.NewResolver(catalogue, "en", zap.NewNop())
	require.NoError(t, err)

	return &runtime{
		cfg: &config.Config{
			Server: server.Config{
				Port:               "8080",
				ApiKey:             apiKey,
				AllowOrigins:       "*",
				CacheMaxAgeSeconds: 604800,
				Prefix:             "/api/v1",
			},
			Metrics: metrics.Config{Enabled: true, Path: "/metrics"},
		},
		log:      zap.NewNop(),
		metrics:  metrics.New(),
		resolver: resolver,
		catalog:  index.Build(sampleRecords(t)),
	}
}

func do(t *testing.T, app *fiber.App, target string, headers map[string]string) (*httpResult, string) {
	t.Helper()
	req := httptest.NewRequest("GET", target, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return &httpResult{status: resp.StatusCode, header: resp.Header.Get}, string(body)
}

type httpResult struct {
	status int
	header func(string) string
}

func TestNewApp(t *testing.T) {
	app, err := newApp(newTestRuntime(t, ""))
	require.NoError(t, err)

	t.Run("Welcome", func(t *testing.T) {
		res, body := do(t, app, "/", map[string]string{"Accept-Language": "es"})
		assert.Equal(t, fiber.StatusOK, res.status)
		assert.Contains(t, body, "Bienvenido")
		assert.NotEmpty(t, res.header("X-Ray-ID"))
	})

	t.Run("NameLookupWithCacheHeaders", func(t *testing.T) {
		res, body := do(t, app, "/api/v1/name/costa%20de%20marfil?fields=cca3&flatten=true",
			map[string]string{"Origin": "https://example.com"})
		assert.Equal(t, fiber.StatusOK, res.status)
		assert.JSONEq(t, `["CIV"]`, body)
		assert.Equal(t, "public, max-age=604800, s-maxage=604800", res.header("Cache-Control"))
		assert.Contains(t, res.header("Vary"), "Accept-Language")
		assert.Equal(t, "*", res.header("Access-Control-Allow-Origin"))
	})

	t.Run("RegionSorted", func(t *testing.T) {
		res, body := do(t, app, "/api/v1/region/africa?fields=name.common&sort=-population&flatten=true", nil)
		assert.Equal(t, fiber.StatusOK, res.status)
		assert.JSONEq(t, `["Ivory Coast","Mali","Chad"]`, body)
	})

	t.Run("Regions", func(t *testing.T) {
		res, body := do(t, app, "/api/v1/regions", nil)
		assert.Equal(t, fiber.StatusOK, res.status)
		assert.Contains(t, body, `"name":"antarctic","countryCount":1,"subregions":[]`)
	})

	t.Run("Pretty", func(t *testing.T) {
		_, body := do(t, app, "/api/v1/name/japan?fields=cca2&pretty", nil)
		assert.Equal(t, "[\n  {\n    \"cca2\": \"JP\"\n  }\n]", body)
	})

	t.Run("NotFoundNotCached", func(t *testing.T) {
		res, body := do(t, app, "/api/v1/name/atlantis", map[string]string{"Accept-Language": "it"})
		assert.Equal(t, fiber.StatusNotFound, res.status)
		assert.JSONEq(t, `{"error":{"status":404,"message":"Paese con nome 'atlantis' non trovato"}}`, body)
		assert.Empty(t, res.header("Cache-Control"))
	})

	t.Run("Metrics", func(t *testing.T) {
		res, body := do(t, app, "/metrics", nil)
		assert.Equal(t, fiber.StatusOK, res.status)
		assert.Contains(t, body, "countries_records_loaded")
	})

	t.Run("Swagger", func(t *testing.T) {
		res, body := do(t, app, "/swagger/doc.json", nil)
		assert.Equal(t, fiber.StatusOK, res.status)
		assert.Contains(t, body, "Countries API")
	})
}

func TestNewApp_APIKey(t *testing.T) {
	app, err := newApp(newTestRuntime(t, "secret"))
	require.NoError(t, err)

	res, _ := do(t, app, "/api/v1/regions", nil)
	assert.Equal(t, fiber.StatusUnauthorized, res.status)

	res, _ = do(t, app, "/api/v1/regions", map[string]string{"X-API-Key": "secret"})
	assert.Equal(t, fiber.StatusOK, res.status)

	res, _ = do(t, app, "/", nil)
	assert.Equal(t, fiber.StatusOK, res.status, "root stays public")
}

func TestLookup(t *testing.T) {
	catalog := index.Build(sampleRecords(t))

	docs, err := lookup(catalog, "Neuseeland", false, query.ParseOptions("capital", "", true))
	require.NoError(t, err)
	require.Len(t, docs, 1)
	capital, _ := docs[0].Index(0).Str()
	assert.Equal(t, "Wellington", capital)

	docs, err = lookup(catalog, "EUROPE", true, query.Options{})
	require.NoError(t, err)
	assert.Len(t, docs, 1)

	_, err = lookup(catalog, "Mars", true, query.Options{})
	assert.ErrorContains(t, err, `no region matches "Mars"`)
}

func TestPrintLongestName(t *testing.T) {
	longest, ok := dataset.FindLongestName(sampleRecords(t))
	require.True(t, ok)

	var buf bytes.Buffer
	require.NoError(t, printLongestName(&buf, longest))
	assert.Equal(t, "Country: Ivory Coast\nType:    native official (fra)\nName:    \"République de Côte d'Ivoire\"\nLength:  27\n", buf.String())
}

func TestLoadCatalogFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "countries.json")
	data, err := os.ReadFile(filepath.Join("..", "data", "countries.json"))
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0o644))

	cfg := &config.Config{Dataset: dataset.Config{Source: dataset.SourceFile, Path: path, TimeoutSeconds: 5}}
	catalog, err := loadCatalog(t.Context(), cfg, zap.NewNop(), metrics.New())
	require.NoError(t, err)
	assert.Equal(t, 8, catalog.Stats().Records)
}
