package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"gobasket/domain/basket"
	"gobasket/domain/core"
	"gobasket/models"
	"gobasket/ports"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// transactionRepository implements the TransactionRepository interface
type transactionRepository struct {
	db *sqlx.DB
}

// NewTransactionRepository creates a new transaction repository
func NewTransactionRepository(db *sqlx.DB) ports.TransactionRepository {
	return &transactionRepository{db: db}
}

// Create inserts a transaction with its line items atomically
func (r *transactionRepository) Create(ctx context.Context, tx *models.Transaction) error {
	if len(tx.Items) == 0 {
		return core.ErrEmptyTransaction
	}
	dbTx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer dbTx.Rollback()

	if err := insertTransaction(ctx, dbTx, tx); err != nil {
		return err
	}
	return dbTx.Commit()
}

// CreateBatch inserts many transactions in one database transaction. Used by
// the import pipeline.
func (r *transactionRepository) CreateBatch(ctx context.Context, txs []*models.Transaction) error {
	if len(txs) == 0 {
		return nil
	}
	dbTx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer dbTx.Rollback()

	for _, tx := range txs {
		if len(tx.Items) == 0 {
			continue
		}
		if err := insertTransaction(ctx, dbTx, tx); err != nil {
			return err
		}
	}
	return dbTx.Commit()
}

func insertTransaction(ctx context.Context, dbTx *sqlx.Tx, tx *models.Transaction) error {
	if tx.ID == uuid.Nil {
		tx.ID = uuid.New()
	}
	_, err := dbTx.ExecContext(ctx, `
		INSERT INTO transactions (id, external_id, created_by, created_at)
		VALUES ($1, $2, $3, NOW())
	`, tx.ID, tx.ExternalID, tx.CreatedBy)
	if err != nil {
		return fmt.Errorf("failed to insert transaction: %w", err)
	}

	for i := range tx.Items {
		line := &tx.Items[i]
		if line.ID == uuid.Nil {
			line.ID = uuid.New()
		}
		line.TransactionID = tx.ID
		if line.Quantity <= 0 {
			line.Quantity = 1
		}
		_, err := dbTx.ExecContext(ctx, `
			INSERT INTO transaction_items (id, transaction_id, item_name, quantity)
			VALUES ($1, $2, $3, $4)
		`, line.ID, line.TransactionID, line.ItemName, line.Quantity)
		if err != nil {
			return fmt.Errorf("failed to insert transaction item: %w", err)
		}
	}
	return nil
}

// GetByID retrieves a transaction with its line items
func (r *transactionRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Transaction, error) {
	var tx models.Transaction
	err := r.db.GetContext(ctx, &tx, `
		SELECT id, external_id, created_by, created_at
		FROM transactions WHERE id = $1
	`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, core.NewNotFoundError("transaction", id.String())
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}

	if err := r.attachItems(ctx, []*models.Transaction{&tx}); err != nil {
		return nil, err
	}
	return &tx, nil
}

// List returns transactions with pagination, newest first
func (r *transactionRepository) List(ctx context.Context, limit, offset int) ([]*models.Transaction, error) {
	if limit <= 0 {
		limit = 100
	}
	txs := []*models.Transaction{}
	err := r.db.SelectContext(ctx, &txs, `
		SELECT id, external_id, created_by, created_at
		FROM transactions
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	if err := r.attachItems(ctx, txs); err != nil {
		return nil, err
	}
	return txs, nil
}

// ListByOwner returns one owner's transactions with pagination
func (r *transactionRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]*models.Transaction, error) {
	if limit <= 0 {
		limit = 100
	}
	txs := []*models.Transaction{}
	err := r.db.SelectContext(ctx, &txs, `
		SELECT id, external_id, created_by, created_at
		FROM transactions
		WHERE created_by = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`, ownerID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	if err := r.attachItems(ctx, txs); err != nil {
		return nil, err
	}
	return txs, nil
}

// Delete removes a transaction; line items cascade
func (r *transactionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM transactions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return core.NewNotFoundError("transaction", id.String())
	}
	return nil
}

// Count returns the total transaction count
func (r *transactionRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM transactions`); err != nil {
		return 0, fmt.Errorf("failed to count transactions: %w", err)
	}
	return count, nil
}

// Records returns every transaction in the domain shape basket extraction
// consumes. A zero ownerID returns all transactions.
func (r *transactionRepository) Records(ctx context.Context, ownerID core.UserID) ([]basket.TransactionRecord, error) {
	query := `
		SELECT t.id, t.external_id, t.created_by, t.created_at, ti.item_name, ti.quantity
		FROM transactions t
		JOIN transaction_items ti ON ti.transaction_id = t.id`
	args := []interface{}{}
	if !core.ID(ownerID).IsEmpty() {
		query += ` WHERE t.created_by = $1`
		args = append(args, ownerID.String())
	}
	query += ` ORDER BY t.created_at, t.id`

	rows, err := r.db.QueryxContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to load transaction records: %w", err)
	}
	defer rows.Close()

	byID := make(map[string]*basket.TransactionRecord)
	order := make([]string, 0)
	for rows.Next() {
		var (
			id, externalID, createdBy string
			createdAt                 sql.NullTime
			itemName                  string
			quantity                  int
		)
		if err := rows.Scan(&id, &externalID, &createdBy, &createdAt, &itemName, &quantity); err != nil {
			return nil, fmt.Errorf("failed to scan transaction record: %w", err)
		}
		record, ok := byID[id]
		if !ok {
			record = &basket.TransactionRecord{
				ID:         core.TransactionID(id),
				ExternalID: externalID,
				CreatedBy:  core.UserID(createdBy),
				CreatedAt:  core.NewTimestamp(createdAt.Time),
			}
			byID[id] = record
			order = append(order, id)
		}
		record.Items = append(record.Items, basket.LineItem{ItemName: itemName, Quantity: quantity})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate transaction records: %w", err)
	}

	records := make([]basket.TransactionRecord, 0, len(order))
	for _, id := range order {
		records = append(records, *byID[id])
	}
	return records, nil
}

// attachItems loads line items for a batch of transactions
func (r *transactionRepository) attachItems(ctx context.Context, txs []*models.Transaction) error {
	if len(txs) == 0 {
		return nil
	}
	ids := make([]uuid.UUID, 0, len(txs))
	byID := make(map[uuid.UUID]*models.Transaction, len(txs))
	for _, tx := range txs {
		ids = append(ids, tx.ID)
		byID[tx.ID] = tx
	}

	query, args, err := sqlx.In(`
		SELECT id, transaction_id, item_name, quantity
		FROM transaction_items
		WHERE transaction_id IN (?)
		ORDER BY item_name
	`, ids)
	if err != nil {
		return fmt.Errorf("failed to build item query: %w", err)
	}
	query = r.db.Rebind(query)

	items := []models.TransactionItem{}
	if err := r.db.SelectContext(ctx, &items, query, args...); err != nil {
		return fmt.Errorf("failed to load transaction items: %w", err)
	}
	for _, item := range items {
		if tx, ok := byID[item.TransactionID]; ok {
			tx.Items = append(tx.Items, item)
		}
	}
	return nil
}
