package repositories

import (
	"context"
	"time"

	"withdrawal-report/internal/models"

	"github.com/google/uuid"
)

// ReportFileRepositoryInterface defines the contract for the export registry
type ReportFileRepositoryInterface interface {
	Create(ctx context.Context, report *models.ReportFile) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.ReportFile, error)
	ListRecent(ctx context.Context, limit int) ([]models.ReportFile, error)
	ListExpired(ctx context.Context, now time.Time) ([]models.ReportFile, error)
	DeleteByIDs(ctx context.Context, ids []uuid.UUID) (int64, error)
}

// IngestionRunRepositoryInterface defines the contract for upload history
type IngestionRunRepositoryInterface interface {
	Create(ctx context.Context, run *models.IngestionRun) error
	ListRecent(ctx context.Context, limit int) ([]models.IngestionRun, error)
}
