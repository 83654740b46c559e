package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewRawRow_SplitsKnownColumns(t *testing.T) {
	row := NewRawRow(map[string]interface{}{
		"Date":              45001.0,
		"Merchant Name":     "A",
		"Withdrawal Amount": 100.0,
		"Withdrawal Fees":   2.0,
		"Reference":         "REF-1",
		"merchant name":     "lowercase is an extra column",
	})

	assert.Equal(t, 45001.0, row.Date)
	assert.Equal(t, "A", row.MerchantName)
	assert.Equal(t, 100.0, row.WithdrawalAmount)
	assert.Equal(t, 2.0, row.WithdrawalFees)
	assert.Equal(t, map[string]interface{}{
		"Reference":     "REF-1",
		"merchant name": "lowercase is an extra column",
	}, row.Extra)
}

func TestRawRow_GetAndValues(t *testing.T) {
	source := map[string]interface{}{
		"Date":          "2024-01-31",
		"Merchant Name": "Shop",
		"Branch":        "North",
	}
	row := NewRawRow(source)

	assert.Equal(t, "Shop", row.Get(ColumnMerchantName))
	assert.Equal(t, "North", row.Get("Branch"))
	assert.Nil(t, row.Get(ColumnWithdrawalFees))
	assert.Nil(t, row.Get("Missing"))
	assert.Equal(t, source, row.Values())

	values := row.Values()
	values["Branch"] = "changed"
	assert.Equal(t, "North", row.Get("Branch"), "Values must return a copy")
}

func TestSummaryResult_TotalAndMerchantRows(t *testing.T) {
	result := &SummaryResult{Rows: []SummaryRow{
		{Merchant: "A", Count: 1},
		{Merchant: "B", Count: 2},
		{Merchant: TotalMerchant, Count: 3},
	}}

	assert.True(t, result.Total().IsTotal())
	assert.Equal(t, 3, result.Total().Count)
	assert.Len(t, result.MerchantRows(), 2)

	var empty *SummaryResult
	assert.True(t, empty.Total().IsTotal())
	assert.Nil(t, empty.MerchantRows())
}
