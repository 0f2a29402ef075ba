// favorites_store.go
//
// Star Wars favorites REST data service
// Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC
//
// This file is part of starwars-favorites.
// starwars-favorites is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// starwars-favorites is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with starwars-favorites.
// If not, see <https://www.gnu.org/licenses/>.
// Additional terms under GNU AGPL version 3 section 7:
// a) The reasonable legal notice of original copyright and author attribution must be preserved
//    by including the string: "Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC"
//    in this material, copies, or source code of derived works.

package services

import (
	"context"
	"errors"

	"github.com/4GeeksAcademy/vbarbosa-API-REST-StarWars/internal/models/favorites"
	"gorm.io/gorm"
)

// FavoritesStore implements the operations of the favorite-list schema
type FavoritesStore struct {
	DB *gorm.DB
}

// NewFavoritesUser is the input for user creation
type NewFavoritesUser struct {
	Name     string
	LastName string
	Email    string
	Password string
}

// ListUsers returns every user
func (s *FavoritesStore) ListUsers(ctx context.Context) ([]favorites.User, error) {
	return listAll[favorites.User](reader(ctx, s.DB, "users.list"))
}

// GetUser returns one user
func (s *FavoritesStore) GetUser(ctx context.Context, id uint) (*favorites.User, error) {
	return findByID[favorites.User](reader(ctx, s.DB, "users.get"), id, entityUser)
}

// CreateUser inserts a user. A duplicate email fails on the unique index.
func (s *FavoritesStore) CreateUser(ctx context.Context, in NewFavoritesUser) (*favorites.User, error) {
	user := favorites.User{
		Name:     in.Name,
		LastName: in.LastName,
		Email:    in.Email,
		Password: in.Password,
	}
	if err := s.DB.WithContext(ctx).Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// DeleteUser removes a user. Favorite lists and their rows are left in place.
func (s *FavoritesStore) DeleteUser(ctx context.Context, id uint) error {
	return deleteByID[favorites.User](ctx, s.DB, id, entityUser)
}

// ListFavorites returns the favorite lists of a user with the catalog names loaded
func (s *FavoritesStore) ListFavorites(ctx context.Context, userID uint) ([]favorites.Favorite, error) {
	var favs []favorites.Favorite
	err := reader(ctx, s.DB, "favorites.list").
		Preload("FavPlanets.Planet").
		Preload("FavPeoples.People").
		Where("user_id = ?", userID).
		Order("id").
		Find(&favs).Error
	if err != nil {
		return nil, err
	}
	return favs, nil
}

// ListPlanets returns the planet catalog
func (s *FavoritesStore) ListPlanets(ctx context.Context) ([]favorites.Planet, error) {
	return listAll[favorites.Planet](reader(ctx, s.DB, "planets.list"))
}

// GetPlanet returns one planet
func (s *FavoritesStore) GetPlanet(ctx context.Context, id uint) (*favorites.Planet, error) {
	return findByID[favorites.Planet](reader(ctx, s.DB, "planets.get"), id, entityPlanet)
}

// CreatePlanet inserts a planet
func (s *FavoritesStore) CreatePlanet(ctx context.Context, name string) (*favorites.Planet, error) {
	planet := favorites.Planet{NamePlanet: name}
	if err := s.DB.WithContext(ctx).Create(&planet).Error; err != nil {
		return nil, err
	}
	return &planet, nil
}

// DeletePlanet removes a planet
func (s *FavoritesStore) DeletePlanet(ctx context.Context, id uint) error {
	return deleteByID[favorites.Planet](ctx, s.DB, id, entityPlanet)
}

// ListPeoples returns the people catalog
func (s *FavoritesStore) ListPeoples(ctx context.Context) ([]favorites.People, error) {
	return listAll[favorites.People](reader(ctx, s.DB, "peoples.list"))
}

// GetPeople returns one person
func (s *FavoritesStore) GetPeople(ctx context.Context, id uint) (*favorites.People, error) {
	return findByID[favorites.People](reader(ctx, s.DB, "peoples.get"), id, entityPerson)
}

// CreatePeople inserts a person
func (s *FavoritesStore) CreatePeople(ctx context.Context, name string) (*favorites.People, error) {
	people := favorites.People{NamePeople: name}
	if err := s.DB.WithContext(ctx).Create(&people).Error; err != nil {
		return nil, err
	}
	return &people, nil
}

// DeletePeople removes a person
func (s *FavoritesStore) DeletePeople(ctx context.Context, id uint) error {
	return deleteByID[favorites.People](ctx, s.DB, id, entityPerson)
}

// ListFavPlanets returns the favorite planet rows of a user
func (s *FavoritesStore) ListFavPlanets(ctx context.Context, userID uint) ([]favorites.FavPlanet, error) {
	db := reader(ctx, s.DB, "fav_planets.list")
	if err := s.requireUser(db, userID); err != nil {
		return nil, err
	}

	var rows []favorites.FavPlanet
	err := db.Preload("Planet").
		Where("fav_id IN (?)", favoriteIDs(db, userID)).
		Order("fav_id, planet_id").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// ListFavPeoples returns the favorite people rows of a user
func (s *FavoritesStore) ListFavPeoples(ctx context.Context, userID uint) ([]favorites.FavPeople, error) {
	db := reader(ctx, s.DB, "fav_peoples.list")
	if err := s.requireUser(db, userID); err != nil {
		return nil, err
	}

	var rows []favorites.FavPeople
	err := db.Preload("People").
		Where("fav_id IN (?)", favoriteIDs(db, userID)).
		Order("fav_id, people_id").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// AddFavPlanet adds a planet to the favorite list of a user, creating the list
// on first use. A planet already on the list yields a DuplicateError.
func (s *FavoritesStore) AddFavPlanet(ctx context.Context, userID, planetID uint) (*favorites.FavPlanet, error) {
	var row favorites.FavPlanet

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.requireUser(tx, userID); err != nil {
			return err
		}
		planet, err := findByID[favorites.Planet](tx, planetID, entityPlanet)
		if err != nil {
			return err
		}

		fav, err := findOrCreateFavorite(tx, userID)
		if err != nil {
			return err
		}

		var count int64
		if err := tx.Model(&favorites.FavPlanet{}).
			Where("fav_id = ? AND planet_id = ?", fav.ID, planetID).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return alreadyInList(entityPlanet)
		}

		row = favorites.FavPlanet{FavID: fav.ID, PlanetID: planetID}
		if err := tx.Omit("Favorite", "Planet").Create(&row).Error; err != nil {
			return err
		}
		row.Planet = planet
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// AddFavPeople adds a person to the favorite list of a user, creating the list
// on first use. A person already on the list yields a DuplicateError.
func (s *FavoritesStore) AddFavPeople(ctx context.Context, userID, peopleID uint) (*favorites.FavPeople, error) {
	var row favorites.FavPeople

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.requireUser(tx, userID); err != nil {
			return err
		}
		people, err := findByID[favorites.People](tx, peopleID, entityPerson)
		if err != nil {
			return err
		}

		fav, err := findOrCreateFavorite(tx, userID)
		if err != nil {
			return err
		}

		var count int64
		if err := tx.Model(&favorites.FavPeople{}).
			Where("fav_id = ? AND people_id = ?", fav.ID, peopleID).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return alreadyInList(entityPerson)
		}

		row = favorites.FavPeople{FavID: fav.ID, PeopleID: peopleID}
		if err := tx.Omit("Favorite", "People").Create(&row).Error; err != nil {
			return err
		}
		row.People = people
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// RemoveFavPlanet removes a planet from the favorite lists of a user
func (s *FavoritesStore) RemoveFavPlanet(ctx context.Context, userID, planetID uint) error {
	db := s.DB.WithContext(ctx)

	var row favorites.FavPlanet
	err := db.Where("fav_id IN (?) AND planet_id = ?", favoriteIDs(db, userID), planetID).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notInList(entityPlanet)
		}
		return err
	}

	return db.Where("fav_id = ? AND planet_id = ?", row.FavID, row.PlanetID).
		Delete(&favorites.FavPlanet{}).Error
}

// RemoveFavPeople removes a person from the favorite lists of a user
func (s *FavoritesStore) RemoveFavPeople(ctx context.Context, userID, peopleID uint) error {
	db := s.DB.WithContext(ctx)

	var row favorites.FavPeople
	err := db.Where("fav_id IN (?) AND people_id = ?", favoriteIDs(db, userID), peopleID).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notInList(entityPerson)
		}
		return err
	}

	return db.Where("fav_id = ? AND people_id = ?", row.FavID, row.PeopleID).
		Delete(&favorites.FavPeople{}).Error
}

func (s *FavoritesStore) requireUser(db *gorm.DB, userID uint) error {
	ok, err := exists[favorites.User](db, userID)
	if err != nil {
		return err
	}
	if !ok {
		return notFound(entityUser)
	}
	return nil
}

// favoriteIDs is a subquery selecting the favorite list ids of a user
func favoriteIDs(db *gorm.DB, userID uint) *gorm.DB {
	return db.Session(&gorm.Session{NewDB: true}).
		Model(&favorites.Favorite{}).
		Select("id").
		Where("user_id = ?", userID)
}

func findOrCreateFavorite(tx *gorm.DB, userID uint) (*favorites.Favorite, error) {
	var fav favorites.Favorite
	err := tx.Where("user_id = ?", userID).Order("id").First(&fav).Error
	if err == nil {
		return &fav, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	fav = favorites.Favorite{UserID: userID}
	if err := tx.Omit("User").Create(&fav).Error; err != nil {
		return nil, err
	}
	return &fav, nil
}
