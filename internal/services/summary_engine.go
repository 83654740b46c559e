package services

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"withdrawal-report/internal/models"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidParameter = errors.New("invalid summary parameter")
	ErrNoMatchingData   = errors.New("no records match the selected merchants and date range")
)

var hundred = decimal.NewFromInt(100)

// ParameterError names the summary parameter that was rejected
type ParameterError struct {
	Field  string
	Reason string
}

func (e *ParameterError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func (e *ParameterError) Unwrap() error {
	return ErrInvalidParameter
}

// ValidateSummaryParams checks the parameters before any record is read
func ValidateSummaryParams(params models.SummaryParams) error {
	if len(selectedMerchants(params.Merchants)) == 0 {
		return &ParameterError{Field: "merchants", Reason: "at least one merchant must be selected"}
	}
	if !IsCanonicalDate(params.StartDate) {
		return &ParameterError{Field: "start_date", Reason: "must be a valid date (YYYY-MM-DD)"}
	}
	if !IsCanonicalDate(params.EndDate) {
		return &ParameterError{Field: "end_date", Reason: "must be a valid date (YYYY-MM-DD)"}
	}
	if params.StartDate > params.EndDate {
		return &ParameterError{Field: "start_date", Reason: "must not be after end_date"}
	}
	rate := params.RatePercent
	if math.IsNaN(rate) || math.IsInf(rate, 0) || rate < 0 || rate > 100 {
		return &ParameterError{Field: "percentage", Reason: "must be between 0 and 100"}
	}
	return nil
}

// RateLabel is the column heading for the computed percentage, e.g. "2.5% Amount"
func RateLabel(ratePercent float64) string {
	return decimal.NewFromFloat(ratePercent).String() + "% Amount"
}

type merchantTotals struct {
	withdrawal decimal.Decimal
	fees       decimal.Decimal
	percent    decimal.Decimal
	count      int
}

type SummaryEngine struct{}

func NewSummaryEngine() *SummaryEngine {
	return &SummaryEngine{}
}

// Summarize filters the dataset to the selected merchants within the inclusive
// date range and totals them per merchant. Rows follow the order merchants
// were selected in; a selected merchant without matches gets no row. The last
// row is always TOTAL.
//
// Sums are kept unrounded and each merchant row is rounded to two decimals.
// TOTAL is the sum of the rounded merchant rows so the sheet always adds up.
func (e *SummaryEngine) Summarize(dataset *models.Dataset, params models.SummaryParams) (*models.SummaryResult, error) {
	if err := ValidateSummaryParams(params); err != nil {
		return nil, err
	}
	if dataset == nil {
		return nil, ErrNoDataset
	}

	selected := selectedMerchants(params.Merchants)
	position := make(map[string]int, len(selected))
	for idx, name := range selected {
		position[name] = idx
	}

	rate := decimal.NewFromFloat(params.RatePercent)
	totals := make([]merchantTotals, len(selected))
	filtered := make([]models.FilteredRow, 0)

	for _, record := range dataset.Records {
		if !record.HasDate() || record.DateOnly < params.StartDate || record.DateOnly > params.EndDate {
			continue
		}
		idx, ok := position[record.Merchant]
		if !ok {
			continue
		}

		withdrawal := cellDecimal(record.Row.WithdrawalAmount)
		fees := cellDecimal(record.Row.WithdrawalFees)
		percent := withdrawal.Mul(rate).Div(hundred)

		acc := &totals[idx]
		acc.withdrawal = acc.withdrawal.Add(withdrawal)
		acc.fees = acc.fees.Add(fees)
		acc.percent = acc.percent.Add(percent)
		acc.count++

		filtered = append(filtered, models.FilteredRow{
			Record:        record,
			PercentAmount: percent.Round(2),
		})
	}

	if len(filtered) == 0 {
		return nil, ErrNoMatchingData
	}

	rows := make([]models.SummaryRow, 0, len(selected)+1)
	total := models.SummaryRow{Merchant: models.TotalMerchant}

	for idx, name := range selected {
		acc := totals[idx]
		if acc.count == 0 {
			continue
		}
		row := models.SummaryRow{
			Merchant:         name,
			WithdrawalAmount: acc.withdrawal.Round(2),
			WithdrawalFees:   acc.fees.Round(2),
			PercentAmount:    acc.percent.Round(2),
			Count:            acc.count,
		}
		rows = append(rows, row)

		total.WithdrawalAmount = total.WithdrawalAmount.Add(row.WithdrawalAmount)
		total.WithdrawalFees = total.WithdrawalFees.Add(row.WithdrawalFees)
		total.PercentAmount = total.PercentAmount.Add(row.PercentAmount)
		total.Count += row.Count
	}

	total.WithdrawalAmount = total.WithdrawalAmount.Round(2)
	total.WithdrawalFees = total.WithdrawalFees.Round(2)
	total.PercentAmount = total.PercentAmount.Round(2)
	rows = append(rows, total)

	return &models.SummaryResult{
		Params:       params,
		RateLabel:    RateLabel(params.RatePercent),
		FilteredRows: filtered,
		Rows:         rows,
	}, nil
}

// selectedMerchants trims the selection and drops blanks and repeats while
// keeping the caller's order.
func selectedMerchants(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	out := make([]string, 0, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}
	return out
}
