package services

import (
	"context"
	"io"
	"time"

	"withdrawal-report/internal/models"

	"github.com/google/uuid"
)

// ReportServiceInterface defines dataset upload and report generation operations
type ReportServiceInterface interface {
	LoadDataset(ctx context.Context, filename string, r io.Reader) (*models.Dataset, error)
	CurrentDataset() (*models.Dataset, error)
	GenerateReport(ctx context.Context, params models.SummaryParams) (*models.ReportFile, *models.SummaryResult, error)
	GetReport(ctx context.Context, id uuid.UUID) (*models.ReportFile, error)
	ListReports(ctx context.Context, limit int) ([]models.ReportFile, error)
	ListIngestionRuns(ctx context.Context, limit int) ([]models.IngestionRun, error)
	PurgeExpiredReports(ctx context.Context, now time.Time) (int, error)
}

// WorkbookReaderInterface parses an uploaded export into header order and rows
type WorkbookReaderInterface interface {
	Read(filename string, r io.Reader) ([]string, []models.RawRow, error)
}

// WorkbookWriterInterface writes the two-sheet summary workbook to path
type WorkbookWriterInterface interface {
	Write(path string, columns []string, result *models.SummaryResult) error
}

// ReportLoggerInterface provides structured logging for dataset and report events
type ReportLoggerInterface interface {
	LogDatasetLoaded(ctx context.Context, dataset *models.Dataset, duration time.Duration)
	LogDatasetRejected(ctx context.Context, filename string, err error)
	LogReportGenerated(ctx context.Context, report *models.ReportFile, duration time.Duration)
	LogReportFailed(ctx context.Context, params models.SummaryParams, err error)
	LogReportsPurged(ctx context.Context, count int)
}

type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}
