package services

import "errors"

// Sentinel errors matched with errors.Is by the handlers
var (
	ErrNotFound  = errors.New("not found")
	ErrDuplicate = errors.New("duplicate association")
)

// NotFoundError reports a lookup that yielded no row
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	return e.Message
}

// Is makes NotFoundError match ErrNotFound
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// DuplicateError reports an association that already exists
type DuplicateError struct {
	Message string
}

func (e *DuplicateError) Error() string {
	return e.Message
}

// Is makes DuplicateError match ErrDuplicate
func (e *DuplicateError) Is(target error) bool {
	return target == ErrDuplicate
}

func notFound(entity string) error {
	return &NotFoundError{Message: entity + " not found"}
}

func notInList(entity string) error {
	return &NotFoundError{Message: entity + " not in list"}
}

func alreadyInList(entity string) error {
	return &DuplicateError{Message: entity + " already added to list"}
}
