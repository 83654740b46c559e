package models

import (
	"time"

	"github.com/google/uuid"
)

// Record is a RawRow after ingestion.
type Record struct {
	Row RawRow

	// DateOnly is the canonical YYYY-MM-DD form of Row.Date, empty when the
	// source value could not be read as a date.
	DateOnly string

	// Merchant is the trimmed string form of Row.MerchantName. It is a lookup
	// key only and is never exported.
	Merchant string
}

// HasDate reports whether the record's date was normalized successfully
func (r Record) HasDate() bool {
	return r.DateOnly != ""
}

// Dataset is the full set of records ingested from one uploaded file.
// It must not be modified after construction.
type Dataset struct {
	ID         uuid.UUID
	SourceName string
	// Columns holds the source header order, used when re-exporting rows.
	Columns     []string
	Records     []Record
	Merchants   []string
	TotalRows   int
	DroppedRows int
	LoadedAt    time.Time
}

// Len returns the number of ingested records
func (d *Dataset) Len() int {
	if d == nil {
		return 0
	}
	return len(d.Records)
}
