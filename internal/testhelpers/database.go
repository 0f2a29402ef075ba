package testhelpers

import (
	"fmt"
	"strings"
	"testing"

	"github.com/4GeeksAcademy/vbarbosa-API-REST-StarWars/internal/database"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewTestDB opens a private in-memory SQLite database holding the tables of the schema
func NewTestDB(t *testing.T, schema string) *gorm.DB {
	t.Helper()

	// A named shared-cache database lives as long as one connection to it is open
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	// Foreign key enforcement is on so tests behave like the server databases
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", name)

	db, err := gorm.Open(sqlite.Open(dsn), database.GormConfig(logger.Silent))
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("Failed to get underlying SQL DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := database.AutoMigrate(db, schema); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	return db
}
