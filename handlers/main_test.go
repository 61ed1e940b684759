package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"bistro/config"
	"bistro/forecast"
	"bistro/handlers"
	"bistro/routes"
	"bistro/store"

	"github.com/gofiber/fiber/v2"
)

// setupApp wires the handlers to temp-dir stores and returns a Fiber app
// with the real route table. predictorURL may point at a stub server.
func setupApp(t *testing.T, predictorURL string) *fiber.App {
	t.Helper()

	dir := t.TempDir()
	handlers.Init(
		store.NewSalesLedger(filepath.Join(dir, "sales.csv")),
		store.NewRecipeBook(filepath.Join(dir, "recipes.json")),
		forecast.NewClient(predictorURL),
	)
	config.AppConfig.UploadDir = filepath.Join(dir, "uploads")
	config.AppConfig.JWTSecret = "test-secret"

	app := fiber.New()
	routes.SetupRoutes(app)
	return app
}

func jsonRequest(t *testing.T, method, target string, body interface{}) *http.Request {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request body: %v", err)
		}
		reader = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req
}

func decodeBody(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()

	var out map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode response body: %v", err)
	}
	return out
}
