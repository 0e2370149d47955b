package ports

import (
	"context"

	"gobasket/models"

	"github.com/google/uuid"
)

// ItemRepository defines the interface for catalog item storage operations
type ItemRepository interface {
	Create(ctx context.Context, item *models.Item) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Item, error)
	GetByName(ctx context.Context, name string) (*models.Item, error)
	List(ctx context.Context, limit, offset int) ([]*models.Item, error)
	Update(ctx context.Context, item *models.Item) error
	Delete(ctx context.Context, id uuid.UUID) error
}
