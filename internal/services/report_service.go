package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"withdrawal-report/internal/models"
	"withdrawal-report/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrReportNotFound = errors.New("report not found")
)

type ReportServiceConfig struct {
	ExportDir string
	ReportTTL time.Duration
	// Logger receives operational warnings. slog.Default() when nil.
	Logger *slog.Logger
}

type reportService struct {
	store    *DatasetStore
	ingestor *RowIngestor
	engine   *SummaryEngine
	reader   WorkbookReaderInterface
	writer   WorkbookWriterInterface
	reports  repositories.ReportFileRepositoryInterface
	runs     repositories.IngestionRunRepositoryInterface
	logger   ReportLoggerInterface
	metrics  MetricsRecorderInterface
	config   ReportServiceConfig
	log      *slog.Logger
	now      func() time.Time
}

// NewReportService creates the service behind the dataset and report endpoints
func NewReportService(
	store *DatasetStore,
	reader WorkbookReaderInterface,
	writer WorkbookWriterInterface,
	reports repositories.ReportFileRepositoryInterface,
	runs repositories.IngestionRunRepositoryInterface,
	logger ReportLoggerInterface,
	metrics MetricsRecorderInterface,
	config ReportServiceConfig,
) ReportServiceInterface {
	log := config.Logger
	if log == nil {
		log = slog.Default()
	}
	return &reportService{
		store:    store,
		ingestor: NewRowIngestor(),
		engine:   NewSummaryEngine(),
		reader:   reader,
		writer:   writer,
		reports:  reports,
		runs:     runs,
		logger:   logger,
		metrics:  metrics,
		config:   config,
		log:      log,
		now:      time.Now,
	}
}

// LoadDataset parses an uploaded file and makes it the current dataset. The
// previous dataset stays current when anything fails.
func (s *reportService) LoadDataset(ctx context.Context, filename string, r io.Reader) (*models.Dataset, error) {
	start := s.now()

	columns, rows, err := s.reader.Read(filename, r)
	if err != nil {
		s.rejectDataset(ctx, filename, 0, err)
		return nil, err
	}

	dataset, err := s.ingestor.Ingest(rows,
		WithSourceName(filename),
		WithColumns(columns),
		WithIngestLogger(s.requestLogger(ctx)),
	)
	if err != nil {
		s.rejectDataset(ctx, filename, len(rows), err)
		return nil, err
	}

	s.store.Replace(dataset)

	datasetID := dataset.ID
	run := &models.IngestionRun{
		DatasetID:     &datasetID,
		SourceName:    filename,
		Status:        models.IngestionStatusSucceeded,
		TotalRows:     dataset.TotalRows,
		IngestedRows:  dataset.Len(),
		DroppedRows:   dataset.DroppedRows,
		MerchantCount: len(dataset.Merchants),
	}
	if err := s.runs.Create(ctx, run); err != nil {
		s.requestLogger(ctx).WarnContext(ctx, "Failed to record ingestion run", "dataset_id", datasetID, "error", err)
	}

	duration := s.now().Sub(start)
	s.metrics.IncrementCounter(MetricDatasetIngest, map[string]string{"status": models.IngestionStatusSucceeded})
	s.metrics.RecordProcessingTime(MetricDatasetIngest, duration)
	s.metrics.RecordGauge(MetricDatasetRecords, float64(dataset.Len()), nil)
	s.metrics.RecordGauge(MetricDatasetDroppedRows, float64(dataset.DroppedRows), nil)
	s.logger.LogDatasetLoaded(ctx, dataset, duration)

	return dataset, nil
}

// requestLogger tags warnings with the trace ID of the request that caused them
func (s *reportService) requestLogger(ctx context.Context) *slog.Logger {
	return s.log.With(slog.String("trace_id", TraceIDFromContext(ctx)))
}

func (s *reportService) rejectDataset(ctx context.Context, filename string, totalRows int, cause error) {
	run := &models.IngestionRun{
		SourceName: filename,
		TotalRows:  totalRows,
	}
	run.MarkFailed(cause)
	if err := s.runs.Create(ctx, run); err != nil {
		s.requestLogger(ctx).WarnContext(ctx, "Failed to record ingestion run", "source", filename, "error", err)
	}

	s.metrics.IncrementCounter(MetricDatasetIngest, map[string]string{"status": models.IngestionStatusFailed})
	s.logger.LogDatasetRejected(ctx, filename, cause)
}

func (s *reportService) CurrentDataset() (*models.Dataset, error) {
	return s.store.Current()
}

// GenerateReport summarizes the current dataset and writes the export
// workbook to a fresh path under the export directory.
func (s *reportService) GenerateReport(ctx context.Context, params models.SummaryParams) (*models.ReportFile, *models.SummaryResult, error) {
	start := s.now()

	report, result, err := s.generate(ctx, params)
	if err != nil {
		s.metrics.IncrementCounter(MetricReportGenerate, map[string]string{"status": "failed"})
		s.logger.LogReportFailed(ctx, params, err)
		return nil, nil, err
	}

	duration := s.now().Sub(start)
	s.metrics.IncrementCounter(MetricReportGenerate, map[string]string{"status": "succeeded"})
	s.metrics.RecordProcessingTime(MetricReportGenerate, duration)
	s.logger.LogReportGenerated(ctx, report, duration)

	return report, result, nil
}

func (s *reportService) generate(ctx context.Context, params models.SummaryParams) (*models.ReportFile, *models.SummaryResult, error) {
	dataset, err := s.store.Current()
	if err != nil {
		return nil, nil, err
	}

	result, err := s.engine.Summarize(dataset, params)
	if err != nil {
		return nil, nil, err
	}

	if err := os.MkdirAll(s.config.ExportDir, 0o755); err != nil {
		return nil, nil, fmt.Errorf("failed to create export directory: %w", err)
	}

	id := uuid.New()
	path := filepath.Join(s.config.ExportDir, id.String()+".xlsx")
	if err := s.writer.Write(path, dataset.Columns, result); err != nil {
		return nil, nil, fmt.Errorf("failed to write report workbook: %w", err)
	}

	createdAt := s.now().UTC()
	total := result.Total()
	report := &models.ReportFile{
		ID:               id,
		DatasetID:        dataset.ID,
		FileName:         ReportFileName(params.StartDate, params.EndDate),
		Path:             path,
		StartDate:        params.StartDate,
		EndDate:          params.EndDate,
		RatePercent:      decimal.NewFromFloat(params.RatePercent),
		MerchantCount:    len(result.MerchantRows()),
		TransactionCount: total.Count,
		TotalWithdrawal:  total.WithdrawalAmount,
		CreatedAt:        createdAt,
		ExpiresAt:        createdAt.Add(s.config.ReportTTL),
	}

	if err := s.reports.Create(ctx, report); err != nil {
		if removeErr := os.Remove(path); removeErr != nil && !os.IsNotExist(removeErr) {
			s.requestLogger(ctx).WarnContext(ctx, "Failed to remove unregistered report file", "path", path, "error", removeErr)
		}
		return nil, nil, err
	}

	return report, result, nil
}

// ReportFileName is the download name offered for a report
func ReportFileName(startDate, endDate string) string {
	return fmt.Sprintf("withdrawal_summary_%s_to_%s.xlsx", startDate, endDate)
}

// GetReport returns a downloadable report. Expired reports and reports whose
// file has gone missing are reported as not found.
func (s *reportService) GetReport(ctx context.Context, id uuid.UUID) (*models.ReportFile, error) {
	report, err := s.reports.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrReportNotFound) {
			return nil, ErrReportNotFound
		}
		return nil, err
	}

	if report.IsExpired(s.now()) {
		return nil, ErrReportNotFound
	}

	if _, err := os.Stat(report.Path); err != nil {
		s.requestLogger(ctx).WarnContext(ctx, "Registered report file is missing", "report_id", id, "error", err)
		return nil, ErrReportNotFound
	}

	return report, nil
}

func (s *reportService) ListReports(ctx context.Context, limit int) ([]models.ReportFile, error) {
	return s.reports.ListRecent(ctx, limit)
}

func (s *reportService) ListIngestionRuns(ctx context.Context, limit int) ([]models.IngestionRun, error) {
	return s.runs.ListRecent(ctx, limit)
}

// PurgeExpiredReports deletes expired workbooks and their registry entries
func (s *reportService) PurgeExpiredReports(ctx context.Context, now time.Time) (int, error) {
	expired, err := s.reports.ListExpired(ctx, now)
	if err != nil {
		return 0, err
	}
	if len(expired) == 0 {
		return 0, nil
	}

	ids := make([]uuid.UUID, 0, len(expired))
	for _, report := range expired {
		if err := os.Remove(report.Path); err != nil && !os.IsNotExist(err) {
			s.requestLogger(ctx).WarnContext(ctx, "Failed to remove expired report file", "report_id", report.ID, "error", err)
			continue
		}
		ids = append(ids, report.ID)
	}

	deleted, err := s.reports.DeleteByIDs(ctx, ids)
	if err != nil {
		return 0, err
	}

	s.metrics.RecordGauge(MetricReportsPurged, float64(deleted), nil)
	s.logger.LogReportsPurged(ctx, int(deleted))

	return int(deleted), nil
}
