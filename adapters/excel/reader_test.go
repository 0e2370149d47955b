package excel

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransactionReader_CSV(t *testing.T) {
	data := strings.Join([]string{
		"transaction_id,item,quantity",
		"t1,Bread,2",
		"t1,Milk,1",
		"t2,Bread,1",
		"t2,,3",
		",Milk,1",
	}, "\n")

	reader := NewTransactionReader(0)
	transactions, summary, err := reader.Read("baskets.csv", strings.NewReader(data))
	require.NoError(t, err)

	require.Len(t, transactions, 2)
	assert.Equal(t, "t1", transactions[0].ExternalID)
	require.Len(t, transactions[0].Items, 2)
	assert.Equal(t, "Bread", transactions[0].Items[0].ItemName)
	assert.Equal(t, 2, transactions[0].Items[0].Quantity)
	assert.Equal(t, "t2", transactions[1].ExternalID)

	assert.Equal(t, 5, summary.RowsRead)
	assert.Equal(t, 2, summary.RowsSkipped)
	assert.Equal(t, 2, summary.TransactionCount)
	assert.Equal(t, 2, summary.DistinctItems)
}

func TestTransactionReader_HeaderAliases(t *testing.T) {
	data := "Order_ID,Product,Qty\no1,Eggs,6\n"
	reader := NewTransactionReader(0)
	transactions, _, err := reader.Read("export.csv", strings.NewReader(data))
	require.NoError(t, err)
	require.Len(t, transactions, 1)
	assert.Equal(t, "o1", transactions[0].ExternalID)
	assert.Equal(t, 6, transactions[0].Items[0].Quantity)
}

func TestTransactionReader_MissingColumns(t *testing.T) {
	reader := NewTransactionReader(0)
	_, _, err := reader.Read("bad.csv", strings.NewReader("foo,bar\n1,2\n"))
	assert.Error(t, err)
}

func TestTransactionReader_RowLimit(t *testing.T) {
	data := "transaction_id,item\nt1,a\nt2,b\nt3,c\n"
	reader := NewTransactionReader(2)
	_, _, err := reader.Read("big.csv", strings.NewReader(data))
	assert.Error(t, err)
}

func TestTransactionReader_UnsupportedExtension(t *testing.T) {
	reader := NewTransactionReader(0)
	_, _, err := reader.Read("data.parquet", strings.NewReader(""))
	assert.Error(t, err)
}

func TestTransactionReader_DefaultQuantity(t *testing.T) {
	data := "transaction,item_name\nt1,Bread\n"
	reader := NewTransactionReader(0)
	transactions, _, err := reader.Read("min.csv", strings.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 1, transactions[0].Items[0].Quantity)
}
