package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gobasket/domain/core"
	"gobasket/domain/mining"
	"gobasket/ports"

	"github.com/jmoiron/sqlx"
)

// miningResultRepository implements the MiningResultRepository interface.
// Itemsets and rules are stored as JSONB documents; results are immutable
// once written.
type miningResultRepository struct {
	db *sqlx.DB
}

// NewMiningResultRepository creates a new mining result repository
func NewMiningResultRepository(db *sqlx.DB) ports.MiningResultRepository {
	return &miningResultRepository{db: db}
}

// Create persists a run result, assigning identity and creation timestamp
func (r *miningResultRepository) Create(ctx context.Context, result *mining.MiningResult) error {
	itemsetsJSON, err := json.Marshal(result.FrequentItemsets)
	if err != nil {
		return fmt.Errorf("failed to marshal itemsets: %w", err)
	}
	rulesJSON, err := json.Marshal(result.AssociationRules)
	if err != nil {
		return fmt.Errorf("failed to marshal rules: %w", err)
	}

	result.ID = core.ResultID(core.NewID())
	result.CreatedAt = core.Now()

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO mining_results (
			id, algorithm, min_support, min_confidence,
			frequent_itemsets, association_rules,
			execution_time_ms, input_fingerprint, created_by, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`,
		result.ID.String(), result.Algorithm.String(),
		result.Parameters.MinSupport, result.Parameters.MinConfidence,
		itemsetsJSON, rulesJSON,
		result.ExecutionTimeMs, result.InputFingerprint.String(),
		result.CreatedBy.String(), result.CreatedAt.Time(),
	)
	if err != nil {
		return fmt.Errorf("failed to create mining result: %w", err)
	}
	return nil
}

// resultRow is the flat row shape for scanning
type resultRow struct {
	ID               string    `db:"id"`
	Algorithm        string    `db:"algorithm"`
	MinSupport       float64   `db:"min_support"`
	MinConfidence    float64   `db:"min_confidence"`
	FrequentItemsets []byte    `db:"frequent_itemsets"`
	AssociationRules []byte    `db:"association_rules"`
	ExecutionTimeMs  float64   `db:"execution_time_ms"`
	InputFingerprint string    `db:"input_fingerprint"`
	CreatedBy        string    `db:"created_by"`
	CreatedAt        time.Time `db:"created_at"`
}

func (row *resultRow) toDomain() (*mining.MiningResult, error) {
	result := &mining.MiningResult{
		ID:        core.ResultID(row.ID),
		Algorithm: mining.Algorithm(row.Algorithm),
		Parameters: mining.ResultParameters{
			MinSupport:    row.MinSupport,
			MinConfidence: row.MinConfidence,
		},
		ExecutionTimeMs:  row.ExecutionTimeMs,
		InputFingerprint: core.InputFingerprint(row.InputFingerprint),
		CreatedBy:        core.UserID(row.CreatedBy),
		CreatedAt:        core.NewTimestamp(row.CreatedAt),
	}
	if err := json.Unmarshal(row.FrequentItemsets, &result.FrequentItemsets); err != nil {
		return nil, fmt.Errorf("failed to unmarshal itemsets: %w", err)
	}
	if err := json.Unmarshal(row.AssociationRules, &result.AssociationRules); err != nil {
		return nil, fmt.Errorf("failed to unmarshal rules: %w", err)
	}
	return result, nil
}

const resultColumns = `id, algorithm, min_support, min_confidence,
	frequent_itemsets, association_rules,
	execution_time_ms, input_fingerprint, created_by, created_at`

// GetByID retrieves one result
func (r *miningResultRepository) GetByID(ctx context.Context, id core.ResultID) (*mining.MiningResult, error) {
	var row resultRow
	err := r.db.GetContext(ctx, &row,
		`SELECT `+resultColumns+` FROM mining_results WHERE id = $1`, id.String())
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, core.NewNotFoundError("mining result", id.String())
		}
		return nil, fmt.Errorf("failed to get mining result: %w", err)
	}
	return row.toDomain()
}

// ListByOwner returns one owner's results, newest first
func (r *miningResultRepository) ListByOwner(ctx context.Context, ownerID core.UserID, limit, offset int) ([]*mining.MiningResult, error) {
	if limit <= 0 {
		limit = 50
	}
	rows := []resultRow{}
	err := r.db.SelectContext(ctx, &rows, `
		SELECT `+resultColumns+`
		FROM mining_results
		WHERE created_by = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`, ownerID.String(), limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list mining results: %w", err)
	}

	results := make([]*mining.MiningResult, 0, len(rows))
	for i := range rows {
		result, err := rows[i].toDomain()
		if err != nil {
			return nil, err
		}
		results = append(results, result)
	}
	return results, nil
}

// Delete removes a result
func (r *miningResultRepository) Delete(ctx context.Context, id core.ResultID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM mining_results WHERE id = $1`, id.String())
	if err != nil {
		return fmt.Errorf("failed to delete mining result: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return core.NewNotFoundError("mining result", id.String())
	}
	return nil
}
