package postgres

import (
	"context"

	"gobasket/domain/basket"
	"gobasket/domain/core"
	"gobasket/internal/errors"
	"gobasket/ports"
)

// basketSource adapts the transaction repository into the mining core's
// basket view: persisted transaction+line-item records become one
// deduplicated item set per transaction
type basketSource struct {
	transactions ports.TransactionRepository
}

// NewBasketSource creates the repository-backed basket source
func NewBasketSource(transactions ports.TransactionRepository) ports.BasketSource {
	return &basketSource{transactions: transactions}
}

// Baskets returns one basket per stored transaction, optionally filtered by
// owner
func (s *basketSource) Baskets(ctx context.Context, ownerID core.UserID) ([]basket.Basket, error) {
	records, err := s.transactions.Records(ctx, ownerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load transaction records")
	}
	return basket.ExtractBaskets(records), nil
}
