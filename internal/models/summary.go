package models

import (
	"github.com/shopspring/decimal"
)

// TotalMerchant is the reserved merchant name of the grand-total summary row
const TotalMerchant = "TOTAL"

// SummaryParams selects the records that go into a report
type SummaryParams struct {
	Merchants   []string
	StartDate   string
	EndDate     string
	RatePercent float64
}

// FilteredRow is a record that matched the report filters, with its
// percentage amount already rounded to 2 decimal places.
type FilteredRow struct {
	Record
	PercentAmount decimal.Decimal
}

// SummaryRow holds per-merchant totals, or the grand total when Merchant is TOTAL
type SummaryRow struct {
	Merchant         string
	WithdrawalAmount decimal.Decimal
	WithdrawalFees   decimal.Decimal
	PercentAmount    decimal.Decimal
	Count            int
}

// IsTotal reports whether the row is the grand-total row
func (r SummaryRow) IsTotal() bool {
	return r.Merchant == TotalMerchant
}

// SummaryResult is the output of one summarize call. Rows always ends with
// exactly one TOTAL row.
type SummaryResult struct {
	Params       SummaryParams
	RateLabel    string
	FilteredRows []FilteredRow
	Rows         []SummaryRow
}

// Total returns the grand-total row
func (r *SummaryResult) Total() SummaryRow {
	if r == nil || len(r.Rows) == 0 {
		return SummaryRow{Merchant: TotalMerchant}
	}
	return r.Rows[len(r.Rows)-1]
}

// MerchantRows returns the per-merchant rows without the grand total
func (r *SummaryResult) MerchantRows() []SummaryRow {
	if r == nil || len(r.Rows) == 0 {
		return nil
	}
	return r.Rows[:len(r.Rows)-1]
}
