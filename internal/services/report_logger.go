package services

import (
	"context"
	"log/slog"
	"time"

	"withdrawal-report/internal/models"
)

type traceIDKey struct{}

// WithTraceID returns a context carrying the request trace ID
func WithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, traceIDKey{}, traceID)
}

// TraceIDFromContext returns the trace ID stored by WithTraceID, or ""
func TraceIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if traceID, ok := ctx.Value(traceIDKey{}).(string); ok {
		return traceID
	}
	return ""
}

// ReportLogger provides structured logging for dataset and report events.
// Row contents and merchant names are never logged.
type ReportLogger struct {
	logger *slog.Logger
}

func NewReportLogger(logger *slog.Logger) ReportLoggerInterface {
	return &ReportLogger{
		logger: logger,
	}
}

func (rl *ReportLogger) LogDatasetLoaded(ctx context.Context, dataset *models.Dataset, duration time.Duration) {
	rl.logger.InfoContext(ctx, "dataset loaded",
		slog.String("event_type", "dataset_loaded"),
		slog.String("dataset_id", dataset.ID.String()),
		slog.String("source", dataset.SourceName),
		slog.Int("total_rows", dataset.TotalRows),
		slog.Int("records", dataset.Len()),
		slog.Int("dropped_rows", dataset.DroppedRows),
		slog.Int("merchants", len(dataset.Merchants)),
		slog.Int64("duration_ms", duration.Milliseconds()),
		slog.String("trace_id", TraceIDFromContext(ctx)),
	)
}

func (rl *ReportLogger) LogDatasetRejected(ctx context.Context, filename string, err error) {
	rl.logger.WarnContext(ctx, "dataset rejected",
		slog.String("event_type", "dataset_rejected"),
		slog.String("source", filename),
		slog.String("error", err.Error()),
		slog.String("trace_id", TraceIDFromContext(ctx)),
	)
}

func (rl *ReportLogger) LogReportGenerated(ctx context.Context, report *models.ReportFile, duration time.Duration) {
	rl.logger.InfoContext(ctx, "report generated",
		slog.String("event_type", "report_generated"),
		slog.String("report_id", report.ID.String()),
		slog.String("dataset_id", report.DatasetID.String()),
		slog.String("start_date", report.StartDate),
		slog.String("end_date", report.EndDate),
		slog.String("rate_percent", report.RatePercent.String()),
		slog.Int("merchants", report.MerchantCount),
		slog.Int("transactions", report.TransactionCount),
		slog.Int64("duration_ms", duration.Milliseconds()),
		slog.String("trace_id", TraceIDFromContext(ctx)),
	)
}

func (rl *ReportLogger) LogReportFailed(ctx context.Context, params models.SummaryParams, err error) {
	rl.logger.WarnContext(ctx, "report generation failed",
		slog.String("event_type", "report_failed"),
		slog.String("start_date", params.StartDate),
		slog.String("end_date", params.EndDate),
		slog.Int("merchants", len(params.Merchants)),
		slog.String("error", err.Error()),
		slog.String("trace_id", TraceIDFromContext(ctx)),
	)
}

func (rl *ReportLogger) LogReportsPurged(ctx context.Context, count int) {
	rl.logger.InfoContext(ctx, "expired reports purged",
		slog.String("event_type", "reports_purged"),
		slog.Int("count", count),
		slog.Time("timestamp", time.Now()),
	)
}
