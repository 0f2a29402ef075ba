package router_test

import (
	"errors"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/4GeeksAcademy/vbarbosa-API-REST-StarWars/internal/config"
	"github.com/4GeeksAcademy/vbarbosa-API-REST-StarWars/internal/middleware"
	"github.com/4GeeksAcademy/vbarbosa-API-REST-StarWars/internal/router"
	"github.com/4GeeksAcademy/vbarbosa-API-REST-StarWars/internal/testhelpers"
	"github.com/4GeeksAcademy/vbarbosa-API-REST-StarWars/internal/types"
	"github.com/gofiber/fiber/v2"
)

func TestSitemap(t *testing.T) {
	tests := []struct {
		schema   string
		contains []string
		excludes []string
	}{
		{
			schema:   config.SchemaFavorites,
			contains: []string{`GET <a href="/users">/users</a>`, "POST /users/:id/favorites/planets/:planet_id", "DELETE /peoples/:id"},
			excludes: []string{"/admin"},
		},
		{
			schema:   config.SchemaProfile,
			contains: []string{`GET <a href="/admin/profile">/admin/profile</a>`, "DELETE /admin/profile/:id/peoples/:people_id"},
			excludes: []string{"/users", "/swagger"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.schema, func(t *testing.T) {
			app, err := router.New(testhelpers.NewTestDB(t, tt.schema), tt.schema, router.Options{})
			if err != nil {
				t.Fatalf("Failed to build app: %v", err)
			}

			resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
			if err != nil {
				t.Fatalf("Failed to execute request: %v", err)
			}
			testhelpers.AssertStatus(t, resp, fiber.StatusOK)
			if ct := resp.Header.Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
				t.Errorf("Expected text/html, got %s", ct)
			}

			body := string(testhelpers.ReadBody(t, resp))
			for _, want := range tt.contains {
				if !strings.Contains(body, want) {
					t.Errorf("Expected sitemap to contain %q", want)
				}
			}
			for _, unwanted := range tt.excludes {
				if strings.Contains(body, unwanted) {
					t.Errorf("Expected sitemap not to contain %q", unwanted)
				}
			}
		})
	}
}

func TestUnknownSchema(t *testing.T) {
	if _, err := router.New(testhelpers.NewTestDB(t, config.SchemaProfile), "galaxy", router.Options{}); err == nil {
		t.Error("Expected an error for an unknown schema")
	}
}

func TestNotFoundFallback(t *testing.T) {
	app, _ := router.New(testhelpers.NewTestDB(t, config.SchemaProfile), config.SchemaProfile, router.Options{})

	resp, err := app.Test(httptest.NewRequest("GET", "/death-star/plans", nil))
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	testhelpers.AssertError(t, resp, fiber.StatusNotFound, "Resource Not Found")
}

func TestRequestIDHeader(t *testing.T) {
	app, _ := router.New(testhelpers.NewTestDB(t, config.SchemaProfile), config.SchemaProfile, router.Options{AccessLog: true})

	resp, err := app.Test(httptest.NewRequest("GET", "/admin/user", nil))
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	if resp.Header.Get(middleware.RequestIDHeader) == "" {
		t.Error("Expected a request id on the response")
	}
}

func TestErrorHandler(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: router.ErrorHandler})
	app.Get("/api", func(c *fiber.Ctx) error {
		return types.NewAPIError("The planet is gone", fiber.StatusGone)
	})
	app.Get("/fiber", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusTeapot, "short and stout")
	})
	app.Get("/raw", func(c *fiber.Ctx) error {
		return errors.New("UNIQUE constraint failed: users.email")
	})

	resp, _ := app.Test(httptest.NewRequest("GET", "/api", nil))
	testhelpers.AssertStatus(t, resp, fiber.StatusGone)
	var body map[string]interface{}
	testhelpers.ParseJSON(t, resp, &body)
	if body["message"] != "The planet is gone" {
		t.Errorf("Unexpected APIError body %v", body)
	}

	resp, _ = app.Test(httptest.NewRequest("GET", "/fiber", nil))
	testhelpers.AssertError(t, resp, fiber.StatusTeapot, "short and stout")

	resp, _ = app.Test(httptest.NewRequest("GET", "/raw", nil))
	testhelpers.AssertError(t, resp, fiber.StatusInternalServerError, "UNIQUE constraint failed: users.email")
}

func TestMetricsAndSwagger(t *testing.T) {
	// Collectors register on the default registry, so only one app per process enables metrics
	app, err := router.New(testhelpers.NewTestDB(t, config.SchemaFavorites), config.SchemaFavorites, router.Options{
		Metrics: true,
		Swagger: true,
	})
	if err != nil {
		t.Fatalf("Failed to build app: %v", err)
	}

	resp, err := app.Test(httptest.NewRequest("GET", "/planets", nil))
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	testhelpers.AssertStatus(t, resp, fiber.StatusOK)

	resp, err = app.Test(httptest.NewRequest("GET", "/metrics", nil))
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	testhelpers.AssertStatus(t, resp, fiber.StatusOK)
	metrics := string(testhelpers.ReadBody(t, resp))
	if !strings.Contains(metrics, "http_requests_total") || !strings.Contains(metrics, `service="starwars"`) {
		t.Error("Expected request counters in the metrics output")
	}

	resp, err = app.Test(httptest.NewRequest("GET", "/swagger/doc.json", nil))
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	testhelpers.AssertStatus(t, resp, fiber.StatusOK)
	var doc map[string]interface{}
	testhelpers.ParseJSON(t, resp, &doc)
	paths, _ := doc["paths"].(map[string]interface{})
	if _, ok := paths["/users/{id}/favorites/planets/{planet_id}"]; !ok {
		t.Error("Expected the favorites routes in the swagger document")
	}
}
