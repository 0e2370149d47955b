package excel

// ImportedTransaction is one transaction assembled from uploaded tabular
// rows sharing a transaction identifier
type ImportedTransaction struct {
	ExternalID string
	Items      []ImportedLine
}

// ImportedLine is one parsed row: an item name and its quantity
type ImportedLine struct {
	ItemName string
	Quantity int
}

// ImportSummary reports what an import run read and skipped
type ImportSummary struct {
	RowsRead         int `json:"rows_read"`
	RowsSkipped      int `json:"rows_skipped"`
	TransactionCount int `json:"transaction_count"`
	DistinctItems    int `json:"distinct_items"`
}
