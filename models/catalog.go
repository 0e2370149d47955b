package models

import (
	"time"

	"github.com/google/uuid"
)

// Item represents a catalog item available to appear in transactions
type Item struct {
	ID          uuid.UUID `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Category    string    `json:"category" db:"category"`
	Description string    `json:"description" db:"description"`
	CreatedBy   uuid.UUID `json:"created_by" db:"created_by"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

// Transaction represents one purchase with its line items
type Transaction struct {
	ID         uuid.UUID         `json:"id" db:"id"`
	ExternalID string            `json:"external_id" db:"external_id"`
	CreatedBy  uuid.UUID         `json:"created_by" db:"created_by"`
	CreatedAt  time.Time         `json:"created_at" db:"created_at"`
	Items      []TransactionItem `json:"items" db:"-"`
}

// TransactionItem is one line of a transaction. Quantity is bookkeeping
// only; basket extraction reduces lines to item presence.
type TransactionItem struct {
	ID            uuid.UUID `json:"id" db:"id"`
	TransactionID uuid.UUID `json:"transaction_id" db:"transaction_id"`
	ItemName      string    `json:"item_name" db:"item_name"`
	Quantity      int       `json:"quantity" db:"quantity"`
}
