package services_test

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/4GeeksAcademy/vbarbosa-API-REST-StarWars/internal/config"
	"github.com/4GeeksAcademy/vbarbosa-API-REST-StarWars/internal/database"
	"github.com/4GeeksAcademy/vbarbosa-API-REST-StarWars/internal/services"
	"github.com/4GeeksAcademy/vbarbosa-API-REST-StarWars/internal/testhelpers"
	"gorm.io/gorm"
)

// TestWithDatabaseServers runs the stores against real postgres and mariadb containers.
// Set TESTCONTAINERS=1 to enable.
func TestWithDatabaseServers(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}
	if os.Getenv("TESTCONTAINERS") == "" {
		t.Skip("Skipping integration test, TESTCONTAINERS is not set")
	}

	for _, dbType := range []string{"postgres", "mariadb"} {
		t.Run(dbType, func(t *testing.T) {
			container, err := testhelpers.StartDatabase(t, dbType)
			if err != nil {
				t.Fatalf("Failed to start %s container: %v", dbType, err)
			}
			defer container.Terminate(t)

			cfg := &config.Config{
				DatabaseURL:       container.URL,
				Schema:            config.SchemaFavorites,
				DBConnectionLimit: 5,
				DBLogLevel:        "silent",
				SQLiteDriver:      "cgo",
			}
			db := connectWithRetry(t, cfg)
			defer database.Close(db)

			t.Run("favorites", func(t *testing.T) {
				resetSchema(t, db, config.SchemaFavorites)
				exerciseFavorites(t, db)
			})
			t.Run("profile", func(t *testing.T) {
				resetSchema(t, db, config.SchemaProfile)
				exerciseProfiles(t, db)
			})
		})
	}
}

func connectWithRetry(t *testing.T, cfg *config.Config) *gorm.DB {
	t.Helper()

	var (
		db  *gorm.DB
		err error
	)
	// The server may still be finishing its init scripts
	for i := 0; i < 30; i++ {
		db, err = database.Connect(cfg)
		if err == nil {
			if sqlDB, dbErr := db.DB(); dbErr == nil && sqlDB.Ping() == nil {
				return db
			}
			database.Close(db)
		}
		time.Sleep(1 * time.Second)
	}
	t.Fatalf("Database not ready after 30 seconds: %v", err)
	return nil
}

func resetSchema(t *testing.T, db *gorm.DB, schema string) {
	t.Helper()
	if err := database.DropAll(db); err != nil {
		t.Fatalf("DropAll failed: %v", err)
	}
	if err := database.AutoMigrate(db, schema); err != nil {
		t.Fatalf("AutoMigrate failed: %v", err)
	}
	if err := services.Seed(db, schema); err != nil {
		t.Fatalf("Seed failed: %v", err)
	}
}

func exerciseFavorites(t *testing.T, db *gorm.DB) {
	ctx := context.Background()
	s := &services.FavoritesStore{DB: db}

	users, err := s.ListUsers(ctx)
	if err != nil || len(users) != 2 {
		t.Fatalf("Expected 2 seeded users, got %v, %v", users, err)
	}
	vicky := users[0]

	naboo, err := s.CreatePlanet(ctx, "Naboo")
	if err != nil {
		t.Fatalf("CreatePlanet failed: %v", err)
	}
	if _, err := s.AddFavPlanet(ctx, vicky.ID, naboo.ID); err != nil {
		t.Fatalf("AddFavPlanet failed: %v", err)
	}
	if _, err := s.AddFavPlanet(ctx, vicky.ID, naboo.ID); !errors.Is(err, services.ErrDuplicate) {
		t.Errorf("Expected ErrDuplicate, got %v", err)
	}

	rows, err := s.ListFavPlanets(ctx, vicky.ID)
	if err != nil || len(rows) != 2 {
		t.Fatalf("Expected Marte and Naboo, got %v, %v", rows, err)
	}

	if err := s.RemoveFavPlanet(ctx, vicky.ID, naboo.ID); err != nil {
		t.Fatalf("RemoveFavPlanet failed: %v", err)
	}
	if err := s.RemoveFavPeople(ctx, vicky.ID, 2); !errors.Is(err, services.ErrNotFound) {
		t.Errorf("Expected Pepe Junior not to be on vicky's list, got %v", err)
	}

	// Deleting referenced rows succeeds and leaves the rows pointing at them
	if err := s.DeleteUser(ctx, vicky.ID); err != nil {
		t.Fatalf("DeleteUser of a user with a list failed: %v", err)
	}
	if err := s.DeletePlanet(ctx, 1); err != nil {
		t.Fatalf("DeletePlanet of a listed planet failed: %v", err)
	}
	if n := countRows(t, db, "favorites", "user_id", vicky.ID); n != 1 {
		t.Errorf("Expected vicky's list to remain, got %d", n)
	}
	if n := countRows(t, db, "fav_planets", "planet_id", 1); n != 1 {
		t.Errorf("Expected the Marte row to remain, got %d", n)
	}
}

func exerciseProfiles(t *testing.T, db *gorm.DB) {
	ctx := context.Background()
	s := &services.ProfileStore{DB: db}

	all, err := s.ListProfiles(ctx)
	if err != nil || len(all) != 2 {
		t.Fatalf("Expected 2 seeded profiles, got %v, %v", all, err)
	}
	profile := all[0]

	updated, err := s.AddProfilePeople(ctx, profile.ID, 2)
	if err != nil {
		t.Fatalf("AddProfilePeople failed: %v", err)
	}
	if len(updated.Peoples) != 2 {
		t.Errorf("Expected 2 people on the profile, got %d", len(updated.Peoples))
	}
	if _, err := s.AddProfilePeople(ctx, profile.ID, 2); !errors.Is(err, services.ErrDuplicate) {
		t.Errorf("Expected ErrDuplicate, got %v", err)
	}
	if err := s.RemoveProfilePlanet(ctx, profile.ID, 1); err != nil {
		t.Fatalf("RemoveProfilePlanet failed: %v", err)
	}
	if err := s.RemoveProfilePlanet(ctx, profile.ID, 1); !errors.Is(err, services.ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}

	// Deleting referenced rows succeeds and leaves the association rows
	if err := s.DeleteUser(ctx, profile.UserID); err != nil {
		t.Fatalf("DeleteUser of a user with a profile failed: %v", err)
	}
	if err := s.DeletePlanet(ctx, 2); err != nil {
		t.Fatalf("DeletePlanet of an associated planet failed: %v", err)
	}
	if err := s.DeleteProfile(ctx, profile.ID); err != nil {
		t.Fatalf("DeleteProfile of a profile with favorites failed: %v", err)
	}
	if n := countRows(t, db, "profile_people", "profile_id", profile.ID); n != 2 {
		t.Errorf("Expected both profile_people rows of the deleted profile to remain, got %d", n)
	}
	if n := countRows(t, db, "profile_planet", "planet_id", 2); n != 1 {
		t.Errorf("Expected the profile_planet row of the deleted planet to remain, got %d", n)
	}
}

// countRows counts the rows of table whose column equals id
func countRows(t *testing.T, db *gorm.DB, table, column string, id uint) int64 {
	t.Helper()
	var n int64
	if err := db.Table(table).Where(column+" = ?", id).Count(&n).Error; err != nil {
		t.Fatalf("Failed to count %s rows: %v", table, err)
	}
	return n
}
