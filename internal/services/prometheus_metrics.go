package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metric names accepted by PrometheusMetrics
const (
	MetricDatasetIngest      = "dataset.ingest"
	MetricDatasetRecords     = "dataset.records"
	MetricDatasetDroppedRows = "dataset.dropped_rows"
	MetricReportGenerate     = "report.generate"
	MetricReportsPurged      = "report.purged"
)

type PrometheusMetrics struct {
	datasetIngestions *prometheus.CounterVec
	ingestDuration    prometheus.Histogram
	datasetRecords    prometheus.Gauge
	droppedRows       prometheus.Counter
	reportsGenerated  *prometheus.CounterVec
	reportDuration    prometheus.Histogram
	reportsPurged     prometheus.Counter
}

// NewPrometheusMetrics registers the service metrics with reg
func NewPrometheusMetrics(reg prometheus.Registerer) MetricsRecorderInterface {
	factory := promauto.With(reg)

	return &PrometheusMetrics{
		datasetIngestions: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dataset_ingestions_total",
				Help: "Total number of dataset uploads by outcome",
			},
			[]string{"status"},
		),
		ingestDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "dataset_ingest_duration_milliseconds",
				Help:    "Dataset parse and ingest duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 14),
			},
		),
		datasetRecords: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "dataset_records",
				Help: "Number of records in the current dataset",
			},
		),
		droppedRows: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "dataset_dropped_rows_total",
				Help: "Total number of source rows dropped during ingestion",
			},
		),
		reportsGenerated: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "reports_generated_total",
				Help: "Total number of report generation attempts by outcome",
			},
			[]string{"status"},
		),
		reportDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "report_generation_duration_milliseconds",
				Help:    "Summary and workbook export duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 14),
			},
		),
		reportsPurged: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "reports_purged_total",
				Help: "Total number of expired report files removed",
			},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	status := tags["status"]

	switch name {
	case MetricDatasetIngest:
		if status != "" {
			m.datasetIngestions.WithLabelValues(status).Inc()
		}
	case MetricReportGenerate:
		if status != "" {
			m.reportsGenerated.WithLabelValues(status).Inc()
		}
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case MetricDatasetIngest:
		m.ingestDuration.Observe(float64(duration.Milliseconds()))
	case MetricReportGenerate:
		m.reportDuration.Observe(float64(duration.Milliseconds()))
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case MetricDatasetRecords:
		m.datasetRecords.Set(value)
	case MetricDatasetDroppedRows:
		if value > 0 {
			m.droppedRows.Add(value)
		}
	case MetricReportsPurged:
		if value > 0 {
			m.reportsPurged.Add(value)
		}
	}
}
