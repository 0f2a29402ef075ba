package services

import (
	"fmt"
	"log"
	"time"

	"github.com/4GeeksAcademy/vbarbosa-API-REST-StarWars/internal/config"
	"github.com/4GeeksAcademy/vbarbosa-API-REST-StarWars/internal/utils"
	"gorm.io/gorm"
)

// HealthCheckResult represents the result of a health check
type HealthCheckResult struct {
	Status       string            `json:"status"`
	Database     string            `json:"database"`
	Server       string            `json:"server,omitempty"`
	Details      map[string]string `json:"details,omitempty"`
	ErrorMessage string            `json:"error,omitempty"`
}

// HealthCheck pings the database behind the service
func HealthCheck(cfg *config.Config, db *gorm.DB) HealthCheckResult {
	result := HealthCheckResult{
		Status:  "healthy",
		Details: make(map[string]string),
	}

	// Check database connectivity
	sqlDB, err := db.DB()
	if err != nil {
		result.Status = "unhealthy"
		result.Database = "error"
		result.Details["database_error"] = err.Error()
		result.ErrorMessage = fmt.Sprintf("Database connection error: %v", err)
		log.Printf("Health check failed - database connection: %v", err)
		return result
	}

	if err := sqlDB.Ping(); err != nil {
		result.Status = "unhealthy"
		result.Database = "unreachable"
		result.Details["database_ping_error"] = err.Error()
		result.ErrorMessage = fmt.Sprintf("Database ping failed: %v", err)
		log.Printf("Health check failed - database ping: %v", err)
		return result
	}

	result.Database = "ok"
	result.Details["database_type"] = db.Dialector.Name()
	result.Details["schema"] = cfg.Schema

	log.Println("Health check passed - all systems operational")
	return result
}

// CheckServer adds the reachability of the HTTP listener to a health result.
// An empty target checks the local listener on the configured PORT, which is
// also the port used for targets that do not name one.
func CheckServer(cfg *config.Config, target string, result *HealthCheckResult) {
	address, err := utils.PingService(target, cfg.Port, 1500*time.Millisecond)
	if err != nil {
		result.Status = "unhealthy"
		result.Server = "unreachable"
		result.Details["server_error"] = err.Error()
		if result.ErrorMessage == "" {
			result.ErrorMessage = fmt.Sprintf("Server ping failed: %v", err)
		} else {
			result.ErrorMessage += fmt.Sprintf("; Server ping failed: %v", err)
		}
		log.Printf("Health check failed - server ping: %v", err)
		return
	}
	result.Server = "ok"
	result.Details["server_address"] = address
}
