package services

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"withdrawal-report/internal/models"

	"github.com/google/uuid"
)

var (
	ErrEmptyInput   = errors.New("no data rows found")
	ErrRowTransform = errors.New("row could not be transformed")
)

type ingestOptions struct {
	sourceName string
	columns    []string
	logger     *slog.Logger
}

// IngestOption configures a single Ingest call
type IngestOption func(*ingestOptions)

// WithSourceName records the uploaded file name on the dataset
func WithSourceName(name string) IngestOption {
	return func(o *ingestOptions) {
		o.sourceName = name
	}
}

// WithColumns keeps the header order of the source sheet. Without it the
// known columns come first followed by extra columns in name order.
func WithColumns(columns []string) IngestOption {
	return func(o *ingestOptions) {
		o.columns = append([]string(nil), columns...)
	}
}

// WithIngestLogger sets the logger used for dropped-row warnings
func WithIngestLogger(logger *slog.Logger) IngestOption {
	return func(o *ingestOptions) {
		o.logger = logger
	}
}

type RowIngestor struct {
	now func() time.Time
}

func NewRowIngestor() *RowIngestor {
	return &RowIngestor{now: time.Now}
}

// Ingest turns raw sheet rows into a Dataset. Every record keeps its original
// row and gains a normalized DateOnly (empty when the date is unreadable) and
// a trimmed merchant name. A row whose transformation fails is logged and
// dropped; the rest of the batch still loads. Merchants lists each distinct
// non-empty merchant once, sorted.
func (i *RowIngestor) Ingest(rows []models.RawRow, opts ...IngestOption) (*models.Dataset, error) {
	if len(rows) == 0 {
		return nil, ErrEmptyInput
	}

	options := ingestOptions{logger: slog.Default()}
	for _, opt := range opts {
		opt(&options)
	}

	records := make([]models.Record, 0, len(rows))
	merchants := make(map[string]struct{})
	dropped := 0

	for idx, raw := range rows {
		record, err := ingestRow(raw)
		if err != nil {
			dropped++
			options.logger.Warn("Dropping unreadable row",
				"source", options.sourceName,
				"row", idx+1,
				"error", err,
			)
			continue
		}

		records = append(records, record)
		if record.Merchant != "" {
			merchants[record.Merchant] = struct{}{}
		}
	}

	columns := options.columns
	if len(columns) == 0 {
		columns = deriveColumns(rows)
	}

	return &models.Dataset{
		ID:          uuid.New(),
		SourceName:  options.sourceName,
		Columns:     columns,
		Records:     records,
		Merchants:   sortedKeys(merchants),
		TotalRows:   len(rows),
		DroppedRows: dropped,
		LoadedAt:    i.now().UTC(),
	}, nil
}

func ingestRow(raw models.RawRow) (record models.Record, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrRowTransform, r)
		}
	}()

	dateOnly, _ := NormalizeDate(raw.Date)

	return models.Record{
		Row:      raw,
		DateOnly: dateOnly,
		Merchant: strings.TrimSpace(cellString(raw.MerchantName)),
	}, nil
}

func deriveColumns(rows []models.RawRow) []string {
	columns := []string{
		models.ColumnDate,
		models.ColumnMerchantName,
		models.ColumnWithdrawalAmount,
		models.ColumnWithdrawalFees,
	}

	extra := make(map[string]struct{})
	for _, row := range rows {
		for name := range row.Extra {
			extra[name] = struct{}{}
		}
	}
	return append(columns, sortedKeys(extra)...)
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for key := range set {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
