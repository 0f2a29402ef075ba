package main

import (
	"flag"
	"log"
	"os"

	"github.com/4GeeksAcademy/vbarbosa-API-REST-StarWars/internal/config"
	"github.com/4GeeksAcademy/vbarbosa-API-REST-StarWars/internal/database"
	"github.com/4GeeksAcademy/vbarbosa-API-REST-StarWars/internal/services"
)

func main() {
	var envFilename string
	flag.StringVar(&envFilename, "f", os.Getenv("ENV_FILE"), "path to the .env file")
	flag.Parse()

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

	// Start from empty tables
	if err := database.DropAll(db); err != nil {
		log.Fatalf("Failed to drop tables: %v", err)
	}
	if err := database.AutoMigrate(db, cfg.Schema); err != nil {
		log.Fatalf("Failed to create tables: %v", err)
	}

	if err := services.Seed(db, cfg.Schema); err != nil {
		log.Fatalf("Failed to seed %s schema: %v", cfg.Schema, err)
	}

	log.Printf("All data added successfully to the %s schema", cfg.Schema)
}
