package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	IngestionStatusSucceeded = "succeeded"
	IngestionStatusFailed    = "failed"
)

// IngestionRun records the outcome of one upload. Row data is never persisted.
type IngestionRun struct {
	ID            uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	DatasetID     *uuid.UUID `gorm:"type:uuid;index" json:"dataset_id,omitempty"`
	SourceName    string     `gorm:"type:varchar(255);not null" json:"source_name"`
	Status        string     `gorm:"type:varchar(20);not null;index" json:"status"`
	TotalRows     int        `gorm:"not null" json:"total_rows"`
	IngestedRows  int        `gorm:"not null" json:"ingested_rows"`
	DroppedRows   int        `gorm:"not null" json:"dropped_rows"`
	MerchantCount int        `gorm:"not null" json:"merchant_count"`
	ErrorMessage  *string    `gorm:"type:text" json:"error_message,omitempty"`
	CreatedAt     time.Time  `gorm:"not null;index" json:"created_at"`
}

// BeforeCreate hook for IngestionRun
func (r *IngestionRun) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	if r.Status == "" {
		r.Status = IngestionStatusSucceeded
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now().UTC()
	}
	return nil
}

// MarkFailed sets the run to failed with the given cause
func (r *IngestionRun) MarkFailed(err error) {
	r.Status = IngestionStatusFailed
	if err != nil {
		msg := err.Error()
		r.ErrorMessage = &msg
	}
}
