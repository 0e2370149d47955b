package ports

import (
	"context"

	"gobasket/domain/basket"
	"gobasket/domain/core"
)

// BasketSource supplies the mining core with ready basket data. The core
// never queries storage itself; this is its only view of persisted
// transactions.
type BasketSource interface {
	// Baskets returns one deduplicated basket per transaction. A zero
	// ownerID means all transactions.
	Baskets(ctx context.Context, ownerID core.UserID) ([]basket.Basket, error)
}
