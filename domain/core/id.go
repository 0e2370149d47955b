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

// Domain-specific ID types
type (
	UserID        ID
	ItemID        ID
	TransactionID ID
	ResultID      ID
)

// String conversions for domain IDs
func (id UserID) String() string        { return ID(id).String() }
func (id ItemID) String() string        { return ID(id).String() }
func (id TransactionID) String() string { return ID(id).String() }
func (id ResultID) String() string      { return ID(id).String() }

// IsEmpty checks for the placeholder identity a result carries before persistence
func (id ResultID) IsEmpty() bool { return ID(id).IsEmpty() }

// ParseUserID parses a string into UserID
func ParseUserID(s string) (UserID, error) {
	if strings.TrimSpace(s) == "" {
		return "", fmt.Errorf("user ID cannot be empty")
	}
	return UserID(s), nil
}

// ParseTransactionID parses a string into TransactionID
func ParseTransactionID(s string) (TransactionID, error) {
	if strings.TrimSpace(s) == "" {
		return "", fmt.Errorf("transaction ID cannot be empty")
	}
	return TransactionID(s), nil
}

// ParseResultID parses a string into ResultID
func ParseResultID(s string) (ResultID, error) {
	if strings.TrimSpace(s) == "" {
		return "", fmt.Errorf("result ID cannot be empty")
	}
	return ResultID(s), nil
}
