// profile_store.go
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

	"github.com/4GeeksAcademy/vbarbosa-API-REST-StarWars/internal/models/profiles"
	"gorm.io/gorm"
)

// ProfileStore implements the operations of the profile schema
type ProfileStore struct {
	DB *gorm.DB
}

// ListUsers returns every user
func (s *ProfileStore) ListUsers(ctx context.Context) ([]profiles.User, error) {
	return listAll[profiles.User](reader(ctx, s.DB, "users.list"))
}

// GetUser returns one user
func (s *ProfileStore) GetUser(ctx context.Context, id uint) (*profiles.User, error) {
	return findByID[profiles.User](reader(ctx, s.DB, "users.get"), id, entityUser)
}

// CreateUser inserts a user. A duplicate email fails on the unique index.
func (s *ProfileStore) CreateUser(ctx context.Context, email, password string) (*profiles.User, error) {
	user := profiles.User{Email: email, Password: password}
	if err := s.DB.WithContext(ctx).Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// DeleteUser removes a user. The profile of the user is left in place.
func (s *ProfileStore) DeleteUser(ctx context.Context, id uint) error {
	return deleteByID[profiles.User](ctx, s.DB, id, entityUser)
}

// ListProfiles returns every profile with its favorites loaded
func (s *ProfileStore) ListProfiles(ctx context.Context) ([]profiles.Profile, error) {
	var rows []profiles.Profile
	err := reader(ctx, s.DB, "profiles.list").
		Preload("Planets", orderByID).
		Preload("Peoples", orderByID).
		Order("id").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// GetProfile returns one profile with its favorites loaded
func (s *ProfileStore) GetProfile(ctx context.Context, id uint) (*profiles.Profile, error) {
	db := reader(ctx, s.DB, "profiles.get").
		Preload("Planets", orderByID).
		Preload("Peoples", orderByID)
	return findByID[profiles.Profile](db, id, entityProfile)
}

// CreateProfile creates a profile for an existing user. Nothing prevents a
// user from holding several profiles.
func (s *ProfileStore) CreateProfile(ctx context.Context, userID uint) (*profiles.Profile, error) {
	db := s.DB.WithContext(ctx)

	ok, err := exists[profiles.User](db, userID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, notFound(entityUser)
	}

	profile := profiles.Profile{UserID: userID}
	if err := db.Omit("User").Create(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

// DeleteProfile removes a profile. Its association rows are left in place.
func (s *ProfileStore) DeleteProfile(ctx context.Context, id uint) error {
	return deleteByID[profiles.Profile](ctx, s.DB, id, entityProfile)
}

// ListPlanets returns the planet catalog
func (s *ProfileStore) ListPlanets(ctx context.Context) ([]profiles.Planet, error) {
	return listAll[profiles.Planet](reader(ctx, s.DB, "planets.list"))
}

// GetPlanet returns one planet
func (s *ProfileStore) GetPlanet(ctx context.Context, id uint) (*profiles.Planet, error) {
	return findByID[profiles.Planet](reader(ctx, s.DB, "planets.get"), id, entityPlanet)
}

// CreatePlanet inserts a planet
func (s *ProfileStore) CreatePlanet(ctx context.Context, name string) (*profiles.Planet, error) {
	planet := profiles.Planet{NamePlanet: name}
	if err := s.DB.WithContext(ctx).Create(&planet).Error; err != nil {
		return nil, err
	}
	return &planet, nil
}

// DeletePlanet removes a planet
func (s *ProfileStore) DeletePlanet(ctx context.Context, id uint) error {
	return deleteByID[profiles.Planet](ctx, s.DB, id, entityPlanet)
}

// ListPeoples returns the people catalog
func (s *ProfileStore) ListPeoples(ctx context.Context) ([]profiles.People, error) {
	return listAll[profiles.People](reader(ctx, s.DB, "peoples.list"))
}

// GetPeople returns one person
func (s *ProfileStore) GetPeople(ctx context.Context, id uint) (*profiles.People, error) {
	return findByID[profiles.People](reader(ctx, s.DB, "peoples.get"), id, entityPerson)
}

// CreatePeople inserts a person
func (s *ProfileStore) CreatePeople(ctx context.Context, name string) (*profiles.People, error) {
	people := profiles.People{NamePeople: name}
	if err := s.DB.WithContext(ctx).Create(&people).Error; err != nil {
		return nil, err
	}
	return &people, nil
}

// DeletePeople removes a person
func (s *ProfileStore) DeletePeople(ctx context.Context, id uint) error {
	return deleteByID[profiles.People](ctx, s.DB, id, entityPerson)
}

// ProfilePlanets returns the favorite planets of a profile
func (s *ProfileStore) ProfilePlanets(ctx context.Context, profileID uint) ([]profiles.Planet, error) {
	profile, err := s.GetProfile(ctx, profileID)
	if err != nil {
		return nil, err
	}
	return profile.Planets, nil
}

// ProfilePeoples returns the favorite people of a profile
func (s *ProfileStore) ProfilePeoples(ctx context.Context, profileID uint) ([]profiles.People, error) {
	profile, err := s.GetProfile(ctx, profileID)
	if err != nil {
		return nil, err
	}
	return profile.Peoples, nil
}

// AddProfilePlanet associates a planet with a profile
func (s *ProfileStore) AddProfilePlanet(ctx context.Context, profileID, planetID uint) (*profiles.Profile, error) {
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		profile, err := findByID[profiles.Profile](tx, profileID, entityProfile)
		if err != nil {
			return err
		}
		planet, err := findByID[profiles.Planet](tx, planetID, entityPlanet)
		if err != nil {
			return err
		}

		linked, err := associated(tx, "profile_planet", "planet_id", profileID, planetID)
		if err != nil {
			return err
		}
		if linked {
			return alreadyInList(entityPlanet)
		}
		return tx.Model(profile).Association("Planets").Append(planet)
	})
	if err != nil {
		return nil, err
	}
	return s.GetProfile(ctx, profileID)
}

// AddProfilePeople associates a person with a profile
func (s *ProfileStore) AddProfilePeople(ctx context.Context, profileID, peopleID uint) (*profiles.Profile, error) {
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		profile, err := findByID[profiles.Profile](tx, profileID, entityProfile)
		if err != nil {
			return err
		}
		people, err := findByID[profiles.People](tx, peopleID, entityPerson)
		if err != nil {
			return err
		}

		linked, err := associated(tx, "profile_people", "people_id", profileID, peopleID)
		if err != nil {
			return err
		}
		if linked {
			return alreadyInList(entityPerson)
		}
		return tx.Model(profile).Association("Peoples").Append(people)
	})
	if err != nil {
		return nil, err
	}
	return s.GetProfile(ctx, profileID)
}

// RemoveProfilePlanet dissociates a planet from a profile
func (s *ProfileStore) RemoveProfilePlanet(ctx context.Context, profileID, planetID uint) error {
	return dissociate(s.DB.WithContext(ctx), "profile_planet", "planet_id", profileID, planetID, entityPlanet)
}

// RemoveProfilePeople dissociates a person from a profile
func (s *ProfileStore) RemoveProfilePeople(ctx context.Context, profileID, peopleID uint) error {
	return dissociate(s.DB.WithContext(ctx), "profile_people", "people_id", profileID, peopleID, entityPerson)
}

func orderByID(db *gorm.DB) *gorm.DB {
	return db.Order("id")
}

// associated reports whether the association table holds the pair
func associated(db *gorm.DB, table, column string, profileID, targetID uint) (bool, error) {
	var count int64
	err := db.Table(table).
		Where("profile_id = ? AND "+column+" = ?", profileID, targetID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func dissociate(db *gorm.DB, table, column string, profileID, targetID uint, entity string) error {
	result := db.Exec("DELETE FROM "+table+" WHERE profile_id = ? AND "+column+" = ?", profileID, targetID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return notInList(entity)
	}
	return nil
}
