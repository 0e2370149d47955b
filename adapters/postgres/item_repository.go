package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"gobasket/domain/core"
	"gobasket/models"
	"gobasket/ports"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// itemRepository implements the ItemRepository interface
type itemRepository struct {
	db *sqlx.DB
}

// NewItemRepository creates a new item repository
func NewItemRepository(db *sqlx.DB) ports.ItemRepository {
	return &itemRepository{db: db}
}

// Create inserts a new catalog item
func (r *itemRepository) Create(ctx context.Context, item *models.Item) error {
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	_, err := r.db.NamedExecContext(ctx, `
		INSERT INTO items (id, name, category, description, created_by, created_at, updated_at)
		VALUES (:id, :name, :category, :description, :created_by, NOW(), NOW())
	`, item)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" { // unique_violation
			return fmt.Errorf("%w: %s", core.ErrDuplicateItem, item.Name)
		}
		return fmt.Errorf("failed to create item: %w", err)
	}
	return nil
}

// GetByID retrieves an item by its ID
func (r *itemRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Item, error) {
	var item models.Item
	err := r.db.GetContext(ctx, &item, `
		SELECT id, name, category, description, created_by, created_at, updated_at
		FROM items WHERE id = $1
	`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, core.NewNotFoundError("item", id.String())
		}
		return nil, fmt.Errorf("failed to get item: %w", err)
	}
	return &item, nil
}

// GetByName retrieves an item by its unique name
func (r *itemRepository) GetByName(ctx context.Context, name string) (*models.Item, error) {
	var item models.Item
	err := r.db.GetContext(ctx, &item, `
		SELECT id, name, category, description, created_by, created_at, updated_at
		FROM items WHERE name = $1
	`, name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, core.NewNotFoundError("item", name)
		}
		return nil, fmt.Errorf("failed to get item: %w", err)
	}
	return &item, nil
}

// List returns items with pagination, newest first
func (r *itemRepository) List(ctx context.Context, limit, offset int) ([]*models.Item, error) {
	if limit <= 0 {
		limit = 100
	}
	items := []*models.Item{}
	err := r.db.SelectContext(ctx, &items, `
		SELECT id, name, category, description, created_by, created_at, updated_at
		FROM items
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}
	return items, nil
}

// Update modifies an existing item
func (r *itemRepository) Update(ctx context.Context, item *models.Item) error {
	result, err := r.db.NamedExecContext(ctx, `
		UPDATE items
		SET name = :name, category = :category, description = :description, updated_at = NOW()
		WHERE id = :id
	`, item)
	if err != nil {
		return fmt.Errorf("failed to update item: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return core.NewNotFoundError("item", item.ID.String())
	}
	return nil
}

// Delete removes an item
func (r *itemRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete item: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return core.NewNotFoundError("item", id.String())
	}
	return nil
}
