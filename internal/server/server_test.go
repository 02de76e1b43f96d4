package server_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"catalog/internal/config"
	"catalog/internal/handlers"
	"catalog/internal/repositories"
	"catalog/internal/server"
	"catalog/internal/services"
	"catalog/internal/uploads"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewApp(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "jersey.webp"), []byte("webp"), 0644))

	cfg := config.Config{Port: "5000", UploadDir: dir, MaxUploadSize: uploads.DefaultMaxSize}
	service := services.NewProductService(repositories.NewMemoryProductRepository(), uploads.NewStorage(dir, cfg.MaxUploadSize), nil)
	app := server.NewApp(cfg, handlers.NewProductHandler(service))

	t.Run("HealthCheck", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil), -1)
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var body map[string]string
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "healthy", body["status"])
		assert.NotEmpty(t, body["time"])
	})

	t.Run("StaticUploads", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/uploads/jersey.webp", nil), -1)
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		b, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		assert.Equal(t, "webp", string(b))
	})

	t.Run("EmptyCatalog", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/products", nil), -1)
		require.NoError(t, err)
		defer resp.Body.Close()
		b, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		assert.JSONEq(t, `[]`, string(b))
	})
}
