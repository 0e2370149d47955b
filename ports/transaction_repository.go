package ports

import (
	"context"

	"gobasket/domain/basket"
	"gobasket/domain/core"
	"gobasket/models"

	"github.com/google/uuid"
)

// TransactionRepository defines the interface for transaction storage
// operations. A transaction row owns its line items; writes are atomic over
// both.
type TransactionRepository interface {
	Create(ctx context.Context, tx *models.Transaction) error
	CreateBatch(ctx context.Context, txs []*models.Transaction) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Transaction, error)
	List(ctx context.Context, limit, offset int) ([]*models.Transaction, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]*models.Transaction, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int, error)

	// Records returns every transaction (optionally owner-filtered) in the
	// domain shape basket extraction consumes
	Records(ctx context.Context, ownerID core.UserID) ([]basket.TransactionRecord, error)
}
