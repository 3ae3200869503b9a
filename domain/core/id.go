package core

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// ID represents a domain identifier
type ID string

// NewID creates a new unique identifier using UUID v7 for time-ordered generation
func NewID() ID {
	// Use UUID v7 for time-ordered, sortable IDs
	// Falls back to v4 if v7 is not available (for compatibility)
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to v4 if v7 fails
		id = uuid.New()
	}
	return ID(id.String())
}

// String returns the string representation
func (id ID) String() string {
	return string(id)
}

// IsEmpty checks if the ID is empty
func (id ID) IsEmpty() bool {
	return id == ""
}

// ProfileID identifies one column profiling report
type ProfileID ID

// String returns the string representation
func (id ProfileID) String() string { return ID(id).String() }

// IsEmpty checks if the ID is empty
func (id ProfileID) IsEmpty() bool { return ID(id).IsEmpty() }

// ParseProfileID parses a string into ProfileID
func ParseProfileID(s string) (ProfileID, error) {
	if strings.TrimSpace(s) == "" {
		return "", fmt.Errorf("profile ID cannot be empty")
	}
	return ProfileID(s), nil
}
