package excel

import (
	"encoding/csv"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// TransactionReader parses uploaded tabular basket data (.xlsx or .csv)
// into transactions. Expected columns: a transaction identifier, an item
// name, and optionally a quantity; the header row names them.
type TransactionReader struct {
	// MaxRows caps data rows read from one file; 0 means unlimited
	MaxRows int
}

// NewTransactionReader creates a reader with the given row ceiling
func NewTransactionReader(maxRows int) *TransactionReader {
	return &TransactionReader{MaxRows: maxRows}
}

// header column aliases, matched case-insensitively
var (
	transactionColumns = []string{"transaction_id", "transaction", "order_id", "invoice"}
	itemColumns        = []string{"item_name", "item", "product", "product_name"}
	quantityColumns    = []string{"quantity", "qty", "count"}
)

// Read parses a file by extension. The filename decides the format; data
// comes from the reader so uploads never touch disk.
func (r *TransactionReader) Read(filename string, data io.Reader) ([]ImportedTransaction, *ImportSummary, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv":
		return r.readCSV(data)
	case ".xlsx":
		return r.readExcel(data)
	default:
		return nil, nil, fmt.Errorf("unsupported file type: %s", filepath.Ext(filename))
	}
}

func (r *TransactionReader) readCSV(data io.Reader) ([]ImportedTransaction, *ImportSummary, error) {
	reader := csv.NewReader(data)
	reader.FieldsPerRecord = -1

	rows := [][]string{}
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("failed to read CSV row: %w", err)
		}
		rows = append(rows, row)
		if r.MaxRows > 0 && len(rows) > r.MaxRows+1 {
			return nil, nil, fmt.Errorf("file exceeds row limit of %d", r.MaxRows)
		}
	}
	return r.assemble(rows)
}

func (r *TransactionReader) readExcel(data io.Reader) ([]ImportedTransaction, *ImportSummary, error) {
	f, err := excelize.OpenReader(data)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil, fmt.Errorf("workbook has no sheets")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read sheet %s: %w", sheets[0], err)
	}
	if r.MaxRows > 0 && len(rows) > r.MaxRows+1 {
		return nil, nil, fmt.Errorf("file exceeds row limit of %d", r.MaxRows)
	}
	return r.assemble(rows)
}

// assemble groups data rows by transaction identifier, preserving first-seen
// transaction order
func (r *TransactionReader) assemble(rows [][]string) ([]ImportedTransaction, *ImportSummary, error) {
	if len(rows) == 0 {
		return nil, nil, fmt.Errorf("file is empty")
	}

	txCol, itemCol, qtyCol, err := resolveColumns(rows[0])
	if err != nil {
		return nil, nil, err
	}

	summary := &ImportSummary{}
	byID := make(map[string]*ImportedTransaction)
	order := []string{}
	items := make(map[string]bool)

	for _, row := range rows[1:] {
		summary.RowsRead++

		txID := cell(row, txCol)
		itemName := cell(row, itemCol)
		if txID == "" || itemName == "" {
			summary.RowsSkipped++
			continue
		}

		quantity := 1
		if qtyCol >= 0 {
			if parsed, err := strconv.Atoi(cell(row, qtyCol)); err == nil && parsed > 0 {
				quantity = parsed
			}
		}

		tx, ok := byID[txID]
		if !ok {
			tx = &ImportedTransaction{ExternalID: txID}
			byID[txID] = tx
			order = append(order, txID)
		}
		tx.Items = append(tx.Items, ImportedLine{ItemName: itemName, Quantity: quantity})
		items[itemName] = true
	}

	transactions := make([]ImportedTransaction, 0, len(order))
	for _, id := range order {
		transactions = append(transactions, *byID[id])
	}
	summary.TransactionCount = len(transactions)
	summary.DistinctItems = len(items)
	return transactions, summary, nil
}

// resolveColumns matches header names against the known aliases
func resolveColumns(header []string) (txCol, itemCol, qtyCol int, err error) {
	txCol, itemCol, qtyCol = -1, -1, -1
	for i, name := range header {
		normalized := strings.ToLower(strings.TrimSpace(name))
		switch {
		case txCol < 0 && matchesAny(normalized, transactionColumns):
			txCol = i
		case itemCol < 0 && matchesAny(normalized, itemColumns):
			itemCol = i
		case qtyCol < 0 && matchesAny(normalized, quantityColumns):
			qtyCol = i
		}
	}
	if txCol < 0 || itemCol < 0 {
		return 0, 0, 0, fmt.Errorf("header must include transaction and item columns, got: %s", strings.Join(header, ", "))
	}
	return txCol, itemCol, qtyCol, nil
}

func matchesAny(name string, aliases []string) bool {
	for _, alias := range aliases {
		if name == alias {
			return true
		}
	}
	return false
}

func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}
