package services

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/hints"
)

// Entity names used in error messages
const (
	entityUser    = "User"
	entityPlanet  = "Planet"
	entityPerson  = "Person"
	entityProfile = "Profile"
)

// reader returns a request scoped handle whose SELECTs carry a comment
// naming the operation, so statements can be traced in the database log.
// The returned handle is a session and may be reused for several statements.
func reader(ctx context.Context, db *gorm.DB, op string) *gorm.DB {
	return db.WithContext(ctx).
		Clauses(hints.Comment("select", "starwars:"+op)).
		Session(&gorm.Session{})
}

// findByID loads a single row by primary key
func findByID[T any](db *gorm.DB, id uint, entity string) (*T, error) {
	var row T
	if err := db.First(&row, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound(entity)
		}
		return nil, err
	}
	return &row, nil
}

// listAll loads every row of a table ordered by primary key
func listAll[T any](db *gorm.DB) ([]T, error) {
	var rows []T
	if err := db.Order("id").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// deleteByID looks a row up and deletes it
func deleteByID[T any](ctx context.Context, db *gorm.DB, id uint, entity string) error {
	row, err := findByID[T](db.WithContext(ctx), id, entity)
	if err != nil {
		return err
	}
	return db.WithContext(ctx).Delete(row).Error
}

// exists reports whether a row with the given primary key exists
func exists[T any](db *gorm.DB, id uint) (bool, error) {
	var count int64
	if err := db.Model(new(T)).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
