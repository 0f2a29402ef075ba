package services

import (
	"net"
	"testing"

	"github.com/4GeeksAcademy/vbarbosa-API-REST-StarWars/internal/config"
	"github.com/4GeeksAcademy/vbarbosa-API-REST-StarWars/internal/database"
	"github.com/4GeeksAcademy/vbarbosa-API-REST-StarWars/internal/testhelpers"
)

func TestHealthCheck(t *testing.T) {
	cfg := &config.Config{Schema: config.SchemaFavorites}
	db := testhelpers.NewTestDB(t, config.SchemaFavorites)

	result := HealthCheck(cfg, db)
	if result.Status != "healthy" || result.Database != "ok" {
		t.Fatalf("Expected a healthy result, got %+v", result)
	}
	if result.Details["database_type"] != "sqlite" || result.Details["schema"] != config.SchemaFavorites {
		t.Errorf("Unexpected details %v", result.Details)
	}

	if err := database.Close(db); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	result = HealthCheck(cfg, db)
	if result.Status != "unhealthy" || result.Database != "unreachable" || result.ErrorMessage == "" {
		t.Errorf("Expected an unhealthy result after close, got %+v", result)
	}
}

func TestCheckServer(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("Failed to listen: %v", err)
	}
	_, port, _ := net.SplitHostPort(ln.Addr().String())
	cfg := &config.Config{Port: port}

	// The configured port is used when the target names none
	for _, target := range []string{"", "127.0.0.1", "http://127.0.0.1"} {
		result := HealthCheckResult{Status: "healthy", Details: map[string]string{}}
		CheckServer(cfg, target, &result)
		if result.Status != "healthy" || result.Server != "ok" {
			t.Errorf("Expected %q to reach the listener, got %+v", target, result)
		}
		if result.Details["server_address"] != "127.0.0.1:"+port {
			t.Errorf("Expected server_address 127.0.0.1:%s, got %q", port, result.Details["server_address"])
		}
	}

	ln.Close()
	result := HealthCheckResult{Status: "healthy", Details: map[string]string{}}
	CheckServer(cfg, "", &result)
	if result.Status != "unhealthy" || result.Server != "unreachable" {
		t.Errorf("Expected the closed listener to be unreachable, got %+v", result)
	}

	result = HealthCheckResult{Status: "healthy", Details: map[string]string{}}
	CheckServer(&config.Config{}, "", &result)
	if result.Status != "unhealthy" || result.Details["server_error"] == "" {
		t.Errorf("Expected an error without a port, got %+v", result)
	}
}
