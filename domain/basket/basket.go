package basket

import (
	"sort"

	"gobasket/domain/core"
)

// Basket is the set of distinct item identifiers in one transaction.
// Quantities are discarded: mining cares about presence only.
type Basket map[string]struct{}

// New builds a basket from item identifiers, deduplicating as it goes
func New(items ...string) Basket {
	b := make(Basket, len(items))
	for _, item := range items {
		if item == "" {
			continue
		}
		b[item] = struct{}{}
	}
	return b
}

// Has reports whether the basket contains the item
func (b Basket) Has(item string) bool {
	_, ok := b[item]
	return ok
}

// ContainsAll reports whether the basket contains every given item
func (b Basket) ContainsAll(items []string) bool {
	for _, item := range items {
		if !b.Has(item) {
			return false
		}
	}
	return true
}

// Items returns the basket members in sorted order
func (b Basket) Items() []string {
	items := make([]string, 0, len(b))
	for item := range b {
		items = append(items, item)
	}
	sort.Strings(items)
	return items
}

// LineItem is one purchased line of a transaction. Quantity is kept for the
// CRUD surface but ignored by basket extraction.
type LineItem struct {
	ItemName string `json:"item_name"`
	Quantity int    `json:"quantity"`
}

// TransactionRecord is a persisted transaction with its line items
type TransactionRecord struct {
	ID         core.TransactionID `json:"id"`
	ExternalID string             `json:"external_id,omitempty"`
	Items      []LineItem         `json:"items"`
	CreatedBy  core.UserID        `json:"created_by"`
	CreatedAt  core.Timestamp     `json:"created_at"`
}

// ExtractBaskets converts transaction records into baskets, one per
// transaction. Repeated items within a transaction collapse to one member
// and transactions with no usable items are dropped.
func ExtractBaskets(records []TransactionRecord) []Basket {
	baskets := make([]Basket, 0, len(records))
	for _, record := range records {
		b := make(Basket, len(record.Items))
		for _, line := range record.Items {
			if line.ItemName == "" {
				continue
			}
			b[line.ItemName] = struct{}{}
		}
		if len(b) == 0 {
			continue
		}
		baskets = append(baskets, b)
	}
	return baskets
}

// Fingerprint produces a stable identity for a basket collection, used for
// audit logging on mining results. Basket order does not affect the value.
func Fingerprint(baskets []Basket) core.InputFingerprint {
	lines := make([]string, 0, len(baskets))
	for _, b := range baskets {
		items := b.Items()
		line := ""
		for i, item := range items {
			if i > 0 {
				line += "\x1f"
			}
			line += item
		}
		lines = append(lines, line)
	}
	sort.Strings(lines)
	joined := ""
	for i, line := range lines {
		if i > 0 {
			joined += "\x1e"
		}
		joined += line
	}
	return core.NewInputFingerprint([]byte(joined))
}
