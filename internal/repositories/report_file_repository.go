package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"withdrawal-report/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrReportNotFound = errors.New("report not found")
)

const (
	defaultListLimit = 20
	maxListLimit     = 100
)

// reportFileRepository implements ReportFileRepositoryInterface
type reportFileRepository struct {
	db *gorm.DB
}

// NewReportFileRepository creates a new report registry repository
func NewReportFileRepository(db *gorm.DB) ReportFileRepositoryInterface {
	return &reportFileRepository{
		db: db,
	}
}

// Create registers a generated workbook
func (r *reportFileRepository) Create(ctx context.Context, report *models.ReportFile) error {
	if err := r.db.WithContext(ctx).Create(report).Error; err != nil {
		return fmt.Errorf("failed to create report: %w", err)
	}
	return nil
}

// GetByID retrieves a report by ID
func (r *reportFileRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.ReportFile, error) {
	var report models.ReportFile
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&report).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReportNotFound
		}
		return nil, fmt.Errorf("failed to get report: %w", err)
	}
	return &report, nil
}

// ListRecent returns the newest reports first
func (r *reportFileRepository) ListRecent(ctx context.Context, limit int) ([]models.ReportFile, error) {
	var reports []models.ReportFile
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(clampLimit(limit)).
		Find(&reports).Error; err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}
	return reports, nil
}

// ListExpired returns reports whose expiry is at or before now
func (r *reportFileRepository) ListExpired(ctx context.Context, now time.Time) ([]models.ReportFile, error) {
	var reports []models.ReportFile
	if err := r.db.WithContext(ctx).
		Where("expires_at <= ?", now).
		Order("expires_at ASC").
		Find(&reports).Error; err != nil {
		return nil, fmt.Errorf("failed to list expired reports: %w", err)
	}
	return reports, nil
}

// DeleteByIDs removes registry entries and returns how many were deleted
func (r *reportFileRepository) DeleteByIDs(ctx context.Context, ids []uuid.UUID) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	result := r.db.WithContext(ctx).Where("id IN ?", ids).Delete(&models.ReportFile{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete reports: %w", result.Error)
	}
	return result.RowsAffected, nil
}

func clampLimit(limit int) int {
	if limit <= 0 {
		return defaultListLimit
	}
	if limit > maxListLimit {
		return maxListLimit
	}
	return limit
}
