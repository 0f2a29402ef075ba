package services

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorMatching(t *testing.T) {
	tests := []struct {
		err       error
		message   string
		notFound  bool
		duplicate bool
	}{
		{notFound(entityUser), "User not found", true, false},
		{notInList(entityPlanet), "Planet not in list", true, false},
		{alreadyInList(entityPerson), "Person already added to list", false, true},
		{fmt.Errorf("add favorite: %w", notFound(entityProfile)), "add favorite: Profile not found", true, false},
	}

	for _, tt := range tests {
		if tt.err.Error() != tt.message {
			t.Errorf("Expected %q, got %q", tt.message, tt.err.Error())
		}
		if errors.Is(tt.err, ErrNotFound) != tt.notFound {
			t.Errorf("%q: errors.Is(ErrNotFound) should be %v", tt.message, tt.notFound)
		}
		if errors.Is(tt.err, ErrDuplicate) != tt.duplicate {
			t.Errorf("%q: errors.Is(ErrDuplicate) should be %v", tt.message, tt.duplicate)
		}
	}
}
