package repositories

import (
	"context"
	"fmt"

	"withdrawal-report/internal/models"

	"gorm.io/gorm"
)

type ingestionRunRepository struct {
	db *gorm.DB
}

// NewIngestionRunRepository creates a new upload history repository
func NewIngestionRunRepository(db *gorm.DB) IngestionRunRepositoryInterface {
	return &ingestionRunRepository{
		db: db,
	}
}

func (r *ingestionRunRepository) Create(ctx context.Context, run *models.IngestionRun) error {
	if err := r.db.WithContext(ctx).Create(run).Error; err != nil {
		return fmt.Errorf("failed to create ingestion run: %w", err)
	}
	return nil
}

func (r *ingestionRunRepository) ListRecent(ctx context.Context, limit int) ([]models.IngestionRun, error) {
	var runs []models.IngestionRun
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(clampLimit(limit)).
		Find(&runs).Error; err != nil {
		return nil, fmt.Errorf("failed to list ingestion runs: %w", err)
	}
	return runs, nil
}
