package workbook

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"
	"unicode/utf8"

	"withdrawal-report/internal/models"

	"github.com/shakinm/xlsReader/xls"
	"github.com/xuri/excelize/v2"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	ErrUnsupportedFile    = errors.New("unsupported file type")
	ErrUnreadableWorkbook = errors.New("workbook could not be read")
)

// SupportedExtensions lists the upload types Read accepts
var SupportedExtensions = []string{".xlsx", ".xlsm", ".xls", ".csv"}

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Reader parses the first sheet of an uploaded export into raw rows
type Reader struct{}

func NewReader() *Reader {
	return &Reader{}
}

// Read returns the header order and the data rows of the first sheet. The
// first row with any content is the header; rows with no content are
// skipped. An input without data rows yields no rows and no error.
func (rd *Reader) Read(filename string, r io.Reader) ([]string, []models.RawRow, error) {
	ext := strings.ToLower(filepath.Ext(filename))

	var (
		grid [][]interface{}
		err  error
	)
	switch ext {
	case ".xlsx", ".xlsm":
		grid, err = readXLSX(r)
	case ".xls":
		grid, err = readXLS(r)
	case ".csv":
		grid, err = readCSV(r)
	default:
		return nil, nil, fmt.Errorf("%w: %q", ErrUnsupportedFile, ext)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrUnreadableWorkbook, err)
	}

	columns, rows := buildRows(grid)
	return columns, rows, nil
}

// IsSupported reports whether filename has an extension Read accepts
func IsSupported(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	for _, supported := range SupportedExtensions {
		if ext == supported {
			return true
		}
	}
	return false
}

func readXLSX(r io.Reader) ([][]interface{}, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, errors.New("workbook has no sheets")
	}

	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}

	grid := make([][]interface{}, len(rows))
	for rowIdx, row := range rows {
		values := make([]interface{}, len(row))
		for colIdx, raw := range row {
			if raw == "" {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+1)
			if err != nil {
				return nil, err
			}
			cellType, err := f.GetCellType(sheet, cell)
			if err != nil {
				return nil, err
			}
			values[colIdx] = xlsxValue(cellType, raw)
		}
		grid[rowIdx] = values
	}
	return grid, nil
}

// xlsxValue types a raw cell value. Numeric cells carry no type attribute,
// so anything that is not marked as text and parses as a number is one.
func xlsxValue(cellType excelize.CellType, raw string) interface{} {
	switch cellType {
	case excelize.CellTypeSharedString, excelize.CellTypeInlineString, excelize.CellTypeDate, excelize.CellTypeError:
		return raw
	case excelize.CellTypeBool:
		return raw == "1" || strings.EqualFold(raw, "true")
	}
	if f, err := strconv.ParseFloat(raw, 64); err == nil {
		return f
	}
	return raw
}

func readXLS(r io.Reader) (grid [][]interface{}, err error) {
	// the BIFF parser can panic on truncated streams
	defer func() {
		if rec := recover(); rec != nil {
			grid, err = nil, fmt.Errorf("malformed xls stream: %v", rec)
		}
	}()

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	wb, err := xls.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	if len(wb.GetSheets()) == 0 {
		return nil, errors.New("workbook has no sheets")
	}

	sheet, err := wb.GetSheet(0)
	if err != nil {
		return nil, err
	}

	for _, row := range sheet.GetRows() {
		cols := row.GetCols()
		values := make([]interface{}, len(cols))
		for i, cell := range cols {
			values[i] = textValue(cell.GetString(), true)
		}
		grid = append(grid, values)
	}
	return grid, nil
}

func readCSV(r io.Reader) ([][]interface{}, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	data = bytes.TrimPrefix(data, utf8BOM)

	var src io.Reader = bytes.NewReader(data)
	if !utf8.Valid(data) {
		src = transform.NewReader(src, charmap.Windows1252.NewDecoder())
	}

	cr := csv.NewReader(src)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}

	grid := make([][]interface{}, len(records))
	for i, record := range records {
		values := make([]interface{}, len(record))
		for j, field := range record {
			values[j] = textValue(field, false)
		}
		grid[i] = values
	}
	return grid, nil
}

// textValue maps an empty cell to nil. Formats that only store text can ask
// for numeric-looking cells to be returned as numbers.
func textValue(s string, numeric bool) interface{} {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	if numeric {
		if f, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
			return f
		}
	}
	return s
}

func buildRows(grid [][]interface{}) ([]string, []models.RawRow) {
	headerIdx := -1
	for i, row := range grid {
		if !blankRow(row) {
			headerIdx = i
			break
		}
	}
	if headerIdx < 0 {
		return nil, nil
	}

	columns := headerNames(grid[headerIdx])
	rows := make([]models.RawRow, 0, len(grid)-headerIdx-1)

	for _, row := range grid[headerIdx+1:] {
		if blankRow(row) {
			continue
		}
		values := make(map[string]interface{}, len(row))
		for i, value := range row {
			if value == nil {
				continue
			}
			if i >= len(columns) {
				columns = append(columns, positionalName(len(columns)))
			}
			values[columns[i]] = value
		}
		rows = append(rows, models.NewRawRow(values))
	}
	return columns, rows
}

// headerNames trims header cells. Blank or repeated names are replaced by
// their position so every column keeps a distinct key.
func headerNames(row []interface{}) []string {
	names := make([]string, len(row))
	seen := make(map[string]struct{}, len(row))
	for i, value := range row {
		name := ""
		if value != nil {
			name = norm.NFC.String(strings.TrimSpace(fmt.Sprint(value)))
		}
		if _, dup := seen[name]; name == "" || dup {
			name = positionalName(i)
		}
		seen[name] = struct{}{}
		names[i] = name
	}
	return names
}

func positionalName(idx int) string {
	return "Column " + strconv.Itoa(idx+1)
}

func blankRow(row []interface{}) bool {
	for _, value := range row {
		if value == nil {
			continue
		}
		if s, ok := value.(string); ok && strings.TrimSpace(s) == "" {
			continue
		}
		return false
	}
	return true
}
