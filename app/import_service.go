package app

import (
	"context"
	"io"

	"gobasket/adapters/excel"
	"gobasket/internal"
	"gobasket/internal/errors"
	"gobasket/models"
	"gobasket/ports"

	"github.com/google/uuid"
)

// ImportService turns uploaded tabular basket data into persisted
// transactions. It feeds the store the mining core later reads baskets from;
// the core itself never sees files.
type ImportService struct {
	reader       *excel.TransactionReader
	transactions ports.TransactionRepository
	logger       *internal.Logger
}

// NewImportService creates an import pipeline
func NewImportService(reader *excel.TransactionReader, transactions ports.TransactionRepository, logger *internal.Logger) *ImportService {
	return &ImportService{
		reader:       reader,
		transactions: transactions,
		logger:       logger.With("import"),
	}
}

// Import parses one uploaded file and persists its transactions for the
// owner in a single batch
func (s *ImportService) Import(ctx context.Context, filename string, data io.Reader, ownerID uuid.UUID) (*excel.ImportSummary, error) {
	imported, summary, err := s.reader.Read(filename, data)
	if err != nil {
		return nil, errors.ImportError("failed to parse upload", err)
	}

	txs := make([]*models.Transaction, 0, len(imported))
	for _, tx := range imported {
		record := &models.Transaction{
			ExternalID: tx.ExternalID,
			CreatedBy:  ownerID,
		}
		for _, line := range tx.Items {
			record.Items = append(record.Items, models.TransactionItem{
				ItemName: line.ItemName,
				Quantity: line.Quantity,
			})
		}
		txs = append(txs, record)
	}

	if err := s.transactions.CreateBatch(ctx, txs); err != nil {
		return nil, errors.ImportError("failed to persist imported transactions", err)
	}

	s.logger.Info("imported %s: %d transactions, %d rows (%d skipped)",
		filename, summary.TransactionCount, summary.RowsRead, summary.RowsSkipped)
	return summary, nil
}
