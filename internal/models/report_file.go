package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrReportPathRequired   = errors.New("report path is required")
	ErrReportDateRange      = errors.New("report start date must not be after end date")
	ErrReportRateOutOfRange = errors.New("report rate must be between 0 and 100")
)

// ReportFile is the registry entry of one generated export workbook.
// Only metadata is stored; the workbook itself lives on disk at Path.
type ReportFile struct {
	ID               uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	DatasetID        uuid.UUID       `gorm:"type:uuid;not null;index:idx_report_dataset" json:"dataset_id"`
	FileName         string          `gorm:"type:varchar(255);not null" json:"file_name"`
	Path             string          `gorm:"type:text;not null" json:"-"`
	StartDate        string          `gorm:"type:varchar(10);not null" json:"start_date"`
	EndDate          string          `gorm:"type:varchar(10);not null" json:"end_date"`
	RatePercent      decimal.Decimal `gorm:"type:decimal(7,4);not null" json:"rate_percent"`
	MerchantCount    int             `gorm:"not null" json:"merchant_count"`
	TransactionCount int             `gorm:"not null" json:"transaction_count"`
	TotalWithdrawal  decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"total_withdrawal"`
	CreatedAt        time.Time       `gorm:"not null;index:idx_report_created_at" json:"created_at"`
	ExpiresAt        time.Time       `gorm:"not null;index:idx_report_expires_at" json:"expires_at"`
}

// BeforeCreate hook for ReportFile
func (r *ReportFile) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}

	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now().UTC()
	}

	return r.Validate()
}

// Validate validates the report fields
func (r *ReportFile) Validate() error {
	if r.Path == "" {
		return ErrReportPathRequired
	}
	if r.StartDate > r.EndDate {
		return ErrReportDateRange
	}
	if r.RatePercent.IsNegative() || r.RatePercent.GreaterThan(decimal.NewFromInt(100)) {
		return ErrReportRateOutOfRange
	}
	return nil
}

// IsExpired reports whether the report has passed its expiry time
func (r *ReportFile) IsExpired(now time.Time) bool {
	return !r.ExpiresAt.IsZero() && !now.Before(r.ExpiresAt)
}
