package workbook

import (
	"fmt"
	"os"

	"withdrawal-report/internal/models"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

const (
	TransactionsSheet = "Transactions"
	SummarySheet      = "Summary"

	HeaderTransactions = "Transactions"

	// excelize built-in number format 0.00
	numFmtTwoDecimals = 2
)

// Writer produces the export workbook: a Transactions sheet with every
// matching record and a Summary sheet with one row per merchant and TOTAL.
type Writer struct{}

func NewWriter() *Writer {
	return &Writer{}
}

// Write creates the workbook at path. The path must not exist yet.
func (w *Writer) Write(path string, columns []string, result *models.SummaryResult) error {
	if result == nil {
		return fmt.Errorf("summary result is required")
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), TransactionsSheet); err != nil {
		return fmt.Errorf("failed to name transactions sheet: %w", err)
	}
	if _, err := f.NewSheet(SummarySheet); err != nil {
		return fmt.Errorf("failed to create summary sheet: %w", err)
	}

	styles, err := newSheetStyles(f)
	if err != nil {
		return err
	}
	if err := writeTransactions(f, styles, columns, result); err != nil {
		return err
	}
	if err := writeSummary(f, styles, result); err != nil {
		return err
	}
	f.SetActiveSheet(0)

	return saveNew(f, path)
}

// WriteRows writes rows as a single-sheet export in the layout uploads are
// expected to have. The path must not exist yet.
func (w *Writer) WriteRows(path, sheet string, columns []string, rows []models.RawRow) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	styles, err := newSheetStyles(f)
	if err != nil {
		return err
	}
	if err := writeHeader(f, sheet, columns, styles.header); err != nil {
		return err
	}

	for i, row := range rows {
		for colIdx, column := range columns {
			value := row.Get(column)
			if value == nil {
				continue
			}
			if err := setCell(f, sheet, colIdx+1, i+2, value); err != nil {
				return err
			}
		}
	}

	return saveNew(f, path)
}

// saveNew writes f to path, failing if path already exists
func saveNew(f *excelize.File, path string) error {
	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return fmt.Errorf("failed to create workbook file: %w", err)
	}
	if _, err := f.WriteTo(file); err != nil {
		file.Close()
		os.Remove(path)
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return file.Close()
}

type sheetStyles struct {
	header int
	amount int
	total  int
}

func newSheetStyles(f *excelize.File) (sheetStyles, error) {
	header, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return sheetStyles{}, fmt.Errorf("failed to create header style: %w", err)
	}
	amount, err := f.NewStyle(&excelize.Style{NumFmt: numFmtTwoDecimals})
	if err != nil {
		return sheetStyles{}, fmt.Errorf("failed to create amount style: %w", err)
	}
	total, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}, NumFmt: numFmtTwoDecimals})
	if err != nil {
		return sheetStyles{}, fmt.Errorf("failed to create total style: %w", err)
	}
	return sheetStyles{header: header, amount: amount, total: total}, nil
}

// writeTransactions writes the matching rows followed by the rate column. A
// source column already carrying the rate label, as in a re-uploaded export,
// is left out so the header stays unique.
func writeTransactions(f *excelize.File, styles sheetStyles, columns []string, result *models.SummaryResult) error {
	columns = withoutColumn(columns, result.RateLabel)
	header := append(append([]string(nil), columns...), result.RateLabel)
	if err := writeHeader(f, TransactionsSheet, header, styles.header); err != nil {
		return err
	}

	rateCol := len(header)
	for i, row := range result.FilteredRows {
		rowNum := i + 2
		for colIdx, column := range columns {
			value := row.Row.Get(column)
			if value == nil {
				continue
			}
			if err := setCell(f, TransactionsSheet, colIdx+1, rowNum, value); err != nil {
				return err
			}
		}
		if err := setCell(f, TransactionsSheet, rateCol, rowNum, row.PercentAmount); err != nil {
			return err
		}
	}

	if len(result.FilteredRows) > 0 {
		top, _ := excelize.CoordinatesToCellName(rateCol, 2)
		bottom, _ := excelize.CoordinatesToCellName(rateCol, len(result.FilteredRows)+1)
		if err := f.SetCellStyle(TransactionsSheet, top, bottom, styles.amount); err != nil {
			return fmt.Errorf("failed to style transactions sheet: %w", err)
		}
	}
	return nil
}

func withoutColumn(columns []string, name string) []string {
	kept := make([]string, 0, len(columns))
	for _, column := range columns {
		if column != name {
			kept = append(kept, column)
		}
	}
	return kept
}

func writeSummary(f *excelize.File, styles sheetStyles, result *models.SummaryResult) error {
	header := []string{
		models.ColumnMerchantName,
		models.ColumnWithdrawalAmount,
		models.ColumnWithdrawalFees,
		result.RateLabel,
		HeaderTransactions,
	}
	if err := writeHeader(f, SummarySheet, header, styles.header); err != nil {
		return err
	}

	for i, row := range result.Rows {
		rowNum := i + 2
		values := []interface{}{row.Merchant, row.WithdrawalAmount, row.WithdrawalFees, row.PercentAmount, row.Count}
		for colIdx, value := range values {
			if err := setCell(f, SummarySheet, colIdx+1, rowNum, value); err != nil {
				return err
			}
		}

		style := styles.amount
		first, last := "B", "D"
		if row.IsTotal() {
			style = styles.total
			first, last = "A", "E"
		}
		if err := f.SetCellStyle(SummarySheet, fmt.Sprintf("%s%d", first, rowNum), fmt.Sprintf("%s%d", last, rowNum), style); err != nil {
			return fmt.Errorf("failed to style summary row: %w", err)
		}
	}

	if err := f.SetColWidth(SummarySheet, "A", "E", 20); err != nil {
		return fmt.Errorf("failed to size summary columns: %w", err)
	}
	return nil
}

func writeHeader(f *excelize.File, sheet string, header []string, style int) error {
	for i, name := range header {
		if err := setCell(f, sheet, i+1, 1, name); err != nil {
			return err
		}
	}
	last, _ := excelize.CoordinatesToCellName(len(header), 1)
	if err := f.SetCellStyle(sheet, "A1", last, style); err != nil {
		return fmt.Errorf("failed to style %s header: %w", sheet, err)
	}
	return nil
}

func setCell(f *excelize.File, sheet string, col, row int, value interface{}) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	if d, ok := value.(decimal.Decimal); ok {
		value = d.InexactFloat64()
	}
	if err := f.SetCellValue(sheet, cell, value); err != nil {
		return fmt.Errorf("failed to set %s!%s: %w", sheet, cell, err)
	}
	return nil
}
