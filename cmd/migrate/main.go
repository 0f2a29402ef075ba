package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/4GeeksAcademy/vbarbosa-API-REST-StarWars/internal/config"
	"github.com/4GeeksAcademy/vbarbosa-API-REST-StarWars/internal/database"
)

func main() {
	var showHelp, drop bool
	var envFilename string
	flag.BoolVar(&showHelp, "h", false, "show help")
	flag.BoolVar(&drop, "drop", false, "drop every table (irreversible)")
	flag.StringVar(&envFilename, "f", os.Getenv("ENV_FILE"), "path to the .env file")
	flag.Parse()

	usage := `
Create or drop the tables of the configured schema.

Usage:

migrate [-h] [-drop] [-f ENV_FILE_PATH]

Without -drop the tables of SCHEMA are created or updated in place.
With -drop the tables of both schemas are removed. There is no way back.
`
	if showHelp {
		fmt.Println(usage)
		return
	}

	if err := config.LoadEnvFile(envFilename); err != nil {
		log.Fatalf("Failed to load environment: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close(db)

	if drop {
		if err := database.DropAll(db); err != nil {
			log.Fatalf("Failed to drop tables: %v", err)
		}
		log.Println("All tables dropped")
		return
	}

	if err := database.AutoMigrate(db, cfg.Schema); err != nil {
		if errors.Is(err, database.ErrSchemaConflict) {
			log.Printf("Hint: %s", database.MigrateHint)
		} else {
			log.Printf("Hint: if SCHEMA changed since the tables were created, %s", database.MigrateHint)
		}
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Printf("Tables of the %s schema are up to date", cfg.Schema)
}
