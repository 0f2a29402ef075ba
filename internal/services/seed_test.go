package services

import (
	"context"
	"testing"

	"github.com/4GeeksAcademy/vbarbosa-API-REST-StarWars/internal/config"
	"github.com/4GeeksAcademy/vbarbosa-API-REST-StarWars/internal/testhelpers"
)

func TestSeedFavorites(t *testing.T) {
	ctx := context.Background()
	db := testhelpers.NewTestDB(t, config.SchemaFavorites)
	if err := Seed(db, config.SchemaFavorites); err != nil {
		t.Fatalf("Seed failed: %v", err)
	}

	s := &FavoritesStore{DB: db}
	users, err := s.ListUsers(ctx)
	if err != nil || len(users) != 2 {
		t.Fatalf("Expected 2 seeded users, got %v, %v", users, err)
	}
	if users[0].Email != "vb@gmail.com" || users[1].Email != "ll@gmail.com" {
		t.Errorf("Unexpected seeded users %+v", users)
	}

	favs, err := s.ListFavorites(ctx, users[1].ID)
	if err != nil || len(favs) != 1 {
		t.Fatalf("Expected one list for lola, got %v, %v", favs, err)
	}
	body := favs[0].Serialize()
	if planets := body["planets"].([]string); len(planets) != 1 || planets[0] != "Jupiter" {
		t.Errorf("Expected Jupiter, got %v", planets)
	}
	if peoples := body["peoples"].([]string); len(peoples) != 1 || peoples[0] != "Pepe Junior" {
		t.Errorf("Expected Pepe Junior, got %v", peoples)
	}

	// The seeded list is the one new favorites go to
	if _, err := s.AddFavPlanet(ctx, users[1].ID, 1); err != nil {
		t.Fatalf("AddFavPlanet failed: %v", err)
	}
	if favs, _ = s.ListFavorites(ctx, users[1].ID); len(favs) != 1 {
		t.Errorf("Expected the seeded list to be reused, got %d lists", len(favs))
	}
}

func TestSeedProfiles(t *testing.T) {
	ctx := context.Background()
	db := testhelpers.NewTestDB(t, config.SchemaProfile)
	if err := Seed(db, config.SchemaProfile); err != nil {
		t.Fatalf("Seed failed: %v", err)
	}

	s := &ProfileStore{DB: db}
	all, err := s.ListProfiles(ctx)
	if err != nil || len(all) != 2 {
		t.Fatalf("Expected 2 seeded profiles, got %v, %v", all, err)
	}
	first := all[0].Serialize()
	if planets := first["Favourite Planets"].([]string); len(planets) != 1 || planets[0] != "Marte" {
		t.Errorf("Expected Marte, got %v", planets)
	}
	if peoples := first["Favourite People"].([]string); len(peoples) != 1 || peoples[0] != "Juan Junior" {
		t.Errorf("Expected Juan Junior, got %v", peoples)
	}
}

func TestSeedUnknownSchema(t *testing.T) {
	db := testhelpers.NewTestDB(t, config.SchemaProfile)
	if err := Seed(db, "galaxy"); err == nil {
		t.Error("Expected an error for an unknown schema")
	}
}
