package models

// Column names expected in the first sheet of an uploaded export.
// Matching is case- and spacing-sensitive.
const (
	ColumnDate             = "Date"
	ColumnMerchantName     = "Merchant Name"
	ColumnWithdrawalAmount = "Withdrawal Amount"
	ColumnWithdrawalFees   = "Withdrawal Fees"
)

// RawRow is one row of the source sheet. The four columns the report needs are
// addressed directly; every other column is carried in Extra so it can be
// passed through to the exported workbook untouched.
//
// Cell values are nil, string, bool, time.Time or a numeric type.
type RawRow struct {
	Date             interface{}
	MerchantName     interface{}
	WithdrawalAmount interface{}
	WithdrawalFees   interface{}
	Extra            map[string]interface{}
}

// NewRawRow splits a column->value mapping into known columns and extras.
// The input map is not retained.
func NewRawRow(values map[string]interface{}) RawRow {
	row := RawRow{}
	for column, value := range values {
		switch column {
		case ColumnDate:
			row.Date = value
		case ColumnMerchantName:
			row.MerchantName = value
		case ColumnWithdrawalAmount:
			row.WithdrawalAmount = value
		case ColumnWithdrawalFees:
			row.WithdrawalFees = value
		default:
			if row.Extra == nil {
				row.Extra = make(map[string]interface{})
			}
			row.Extra[column] = value
		}
	}
	return row
}

// Get returns the value stored under column, or nil
func (r RawRow) Get(column string) interface{} {
	switch column {
	case ColumnDate:
		return r.Date
	case ColumnMerchantName:
		return r.MerchantName
	case ColumnWithdrawalAmount:
		return r.WithdrawalAmount
	case ColumnWithdrawalFees:
		return r.WithdrawalFees
	default:
		return r.Extra[column]
	}
}

// Values returns a fresh column->value mapping of the row. Known columns are
// only present when they hold a value.
func (r RawRow) Values() map[string]interface{} {
	values := make(map[string]interface{}, len(r.Extra)+4)
	for column, value := range r.Extra {
		values[column] = value
	}
	for column, value := range map[string]interface{}{
		ColumnDate:             r.Date,
		ColumnMerchantName:     r.MerchantName,
		ColumnWithdrawalAmount: r.WithdrawalAmount,
		ColumnWithdrawalFees:   r.WithdrawalFees,
	} {
		if value != nil {
			values[column] = value
		}
	}
	return values
}
