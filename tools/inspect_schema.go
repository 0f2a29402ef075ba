package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/4GeeksAcademy/vbarbosa-API-REST-StarWars/internal/config"
	"github.com/4GeeksAcademy/vbarbosa-API-REST-StarWars/internal/database"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Prints the DDL GORM generates for each schema, as seen by sqlite
func main() {
	only := flag.String("schema", "", "profile or favorites (default both)")
	flag.Parse()

	schemas := []string{config.SchemaProfile, config.SchemaFavorites}
	if *only != "" {
		schemas = []string{*only}
	}

	for _, schema := range schemas {
		if err := inspect(schema); err != nil {
			log.Fatal(err)
		}
	}
}

func inspect(schema string) error {
	db, err := gorm.Open(sqlite.Open(":memory:"), database.GormConfig(logger.Silent))
	if err != nil {
		return err
	}
	defer database.Close(db)

	// Every connection to :memory: is a separate database
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	sqlDB.SetMaxOpenConns(1)

	// Auto-migrate to see what GORM creates
	if err := database.AutoMigrate(db, schema); err != nil {
		return fmt.Errorf("migrate %s: %w", schema, err)
	}

	var tables []string
	if err := db.Raw("SELECT name FROM sqlite_master WHERE type = 'table' ORDER BY name").Scan(&tables).Error; err != nil {
		return err
	}

	fmt.Printf("##### Schema: %s #####\n", schema)
	for _, table := range tables {
		fmt.Printf("\n=== Table: %s ===\n", table)
		var ddl string
		db.Raw("SELECT sql FROM sqlite_master WHERE name = ?", table).Scan(&ddl)
		fmt.Println(ddl)
	}
	fmt.Println()
	return nil
}
