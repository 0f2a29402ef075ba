package main

import (
	"errors"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/4GeeksAcademy/vbarbosa-API-REST-StarWars/internal/config"
	"github.com/4GeeksAcademy/vbarbosa-API-REST-StarWars/internal/database"
	"github.com/4GeeksAcademy/vbarbosa-API-REST-StarWars/internal/router"
)

// @title Star Wars Favorites API
// @version 1.0.0
// @description Users, planets, people and their favorites over GORM
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.email info@localnerve.com

// @license.name AGPL-3.0
// @license.url https://www.gnu.org/licenses/agpl-3.0.html

// @host localhost:3000
// @BasePath /
// @schemes http https

func main() {
	var envFilename string
	flag.StringVar(&envFilename, "f", os.Getenv("ENV_FILE"), "path to the .env file")
	flag.Parse()

	if err := config.LoadEnvFile(envFilename); err != nil {
		log.Fatalf("Failed to load environment: %v", err)
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Connect to database
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close(db)

	// Run auto-migrations
	if err := database.AutoMigrate(db, cfg.Schema); err != nil {
		if errors.Is(err, database.ErrSchemaConflict) {
			log.Printf("Hint: %s", database.MigrateHint)
		} else {
			log.Printf("Hint: if SCHEMA changed since the tables were created, %s", database.MigrateHint)
		}
		log.Fatalf("Failed to run migrations: %v", err)
	}

	app, err := router.New(db, cfg.Schema, router.Options{
		Metrics:   true,
		Swagger:   true,
		AccessLog: true,
	})
	if err != nil {
		log.Fatalf("Failed to build app: %v", err)
	}

	// Graceful shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		log.Println("Gracefully shutting down...")
		_ = app.Shutdown()
	}()

	// Start server
	log.Printf("Starting server on port %s", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}

	log.Println("Server stopped")
}
