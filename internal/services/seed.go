package services

import (
	"fmt"

	"github.com/4GeeksAcademy/vbarbosa-API-REST-StarWars/internal/config"
	"github.com/4GeeksAcademy/vbarbosa-API-REST-StarWars/internal/models/favorites"
	"github.com/4GeeksAcademy/vbarbosa-API-REST-StarWars/internal/models/profiles"
	"gorm.io/gorm"
)

// Seed populates the sample rows used for manual testing of the schema
func Seed(db *gorm.DB, schema string) error {
	switch schema {
	case config.SchemaFavorites:
		return db.Transaction(seedFavorites)
	case config.SchemaProfile:
		return db.Transaction(seedProfiles)
	}
	return fmt.Errorf("unknown schema: %s", schema)
}

func seedFavorites(tx *gorm.DB) error {
	users := []favorites.User{
		{Name: "vicky", LastName: "barbosa", Email: "vb@gmail.com", Password: "123456789"},
		{Name: "lola", LastName: "Lopez", Email: "ll@gmail.com", Password: "123456789"},
	}
	if err := tx.Create(&users).Error; err != nil {
		return fmt.Errorf("seed users: %w", err)
	}

	favs := []favorites.Favorite{
		{UserID: users[0].ID},
		{UserID: users[1].ID},
	}
	if err := tx.Omit("User").Create(&favs).Error; err != nil {
		return fmt.Errorf("seed favorites: %w", err)
	}

	planets := []favorites.Planet{{NamePlanet: "Marte"}, {NamePlanet: "Jupiter"}}
	if err := tx.Create(&planets).Error; err != nil {
		return fmt.Errorf("seed planets: %w", err)
	}

	favPlanets := []favorites.FavPlanet{
		{FavID: favs[0].ID, PlanetID: planets[0].ID},
		{FavID: favs[1].ID, PlanetID: planets[1].ID},
	}
	if err := tx.Create(&favPlanets).Error; err != nil {
		return fmt.Errorf("seed favorite planets: %w", err)
	}

	peoples := []favorites.People{{NamePeople: "Juan Junior"}, {NamePeople: "Pepe Junior"}}
	if err := tx.Create(&peoples).Error; err != nil {
		return fmt.Errorf("seed people: %w", err)
	}

	favPeoples := []favorites.FavPeople{
		{FavID: favs[0].ID, PeopleID: peoples[0].ID},
		{FavID: favs[1].ID, PeopleID: peoples[1].ID},
	}
	if err := tx.Create(&favPeoples).Error; err != nil {
		return fmt.Errorf("seed favorite people: %w", err)
	}

	return nil
}

func seedProfiles(tx *gorm.DB) error {
	users := []profiles.User{
		{Email: "vb@gmail.com", Password: "123456789"},
		{Email: "ll@gmail.com", Password: "123456789"},
	}
	if err := tx.Create(&users).Error; err != nil {
		return fmt.Errorf("seed users: %w", err)
	}

	planets := []profiles.Planet{{NamePlanet: "Marte"}, {NamePlanet: "Jupiter"}}
	if err := tx.Create(&planets).Error; err != nil {
		return fmt.Errorf("seed planets: %w", err)
	}

	peoples := []profiles.People{{NamePeople: "Juan Junior"}, {NamePeople: "Pepe Junior"}}
	if err := tx.Create(&peoples).Error; err != nil {
		return fmt.Errorf("seed people: %w", err)
	}

	// Each user gets one profile holding one planet and one person
	for i := range users {
		profile := profiles.Profile{UserID: users[i].ID}
		if err := tx.Omit("User", "Planets", "Peoples").Create(&profile).Error; err != nil {
			return fmt.Errorf("seed profiles: %w", err)
		}
		if err := tx.Model(&profile).Association("Planets").Append(&planets[i]); err != nil {
			return fmt.Errorf("seed profile planets: %w", err)
		}
		if err := tx.Model(&profile).Association("Peoples").Append(&peoples[i]); err != nil {
			return fmt.Errorf("seed profile people: %w", err)
		}
	}

	return nil
}
