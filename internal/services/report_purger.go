package services

import (
	"context"
	"log/slog"
	"time"
)

// ReportPurger periodically removes expired report workbooks
type ReportPurger struct {
	service  ReportServiceInterface
	interval time.Duration
	logger   *slog.Logger
}

// NewReportPurger creates a purger that runs every interval
func NewReportPurger(service ReportServiceInterface, interval time.Duration, logger *slog.Logger) *ReportPurger {
	if logger == nil {
		logger = slog.Default()
	}
	return &ReportPurger{service: service, interval: interval, logger: logger}
}

// Run purges once immediately, then on every tick until ctx is cancelled.
// Purge failures are logged and retried on the next tick.
func (p *ReportPurger) Run(ctx context.Context) error {
	p.purge(ctx, time.Now())

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case now := <-ticker.C:
			p.purge(ctx, now)
		}
	}
}

func (p *ReportPurger) purge(ctx context.Context, now time.Time) {
	count, err := p.service.PurgeExpiredReports(ctx, now.UTC())
	if err != nil {
		p.logger.Error("Report purge failed", "error", err)
		return
	}
	if count > 0 {
		p.logger.Info("Report purge complete", "reports_purged", count)
	}
}
