package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"withdrawal-report/internal/models"

	"github.com/google/uuid"
)

// Percentage accepts a JSON number or a numeric string such as "2.5"
type Percentage float64

// UnmarshalJSON implements json.Unmarshaler
func (p *Percentage) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var text string
		if err := json.Unmarshal(data, &text); err != nil {
			return err
		}
		data = []byte(strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(text), "%")))
	}

	value, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		return fmt.Errorf("percentage must be a number: %w", err)
	}
	*p = Percentage(value)
	return nil
}

// GenerateReportRequest represents the request body for generating a summary report
type GenerateReportRequest struct {
	SelectedMerchants []string    `json:"selected_merchants" validate:"required,merchant_selection"`
	StartDate         string      `json:"start_date" validate:"required,canonical_date"`
	EndDate           string      `json:"end_date" validate:"required,canonical_date"`
	Percentage        *Percentage `json:"percentage" validate:"required,rate_percent"`
}

// ToParams converts the request into engine parameters
func (r *GenerateReportRequest) ToParams() models.SummaryParams {
	params := models.SummaryParams{
		Merchants: r.SelectedMerchants,
		StartDate: r.StartDate,
		EndDate:   r.EndDate,
	}
	if r.Percentage != nil {
		params.RatePercent = float64(*r.Percentage)
	}
	return params
}

// SummaryRowResponse is one row of the Summary sheet
type SummaryRowResponse struct {
	Merchant         string `json:"merchant"`
	WithdrawalAmount string `json:"withdrawal_amount"`
	WithdrawalFees   string `json:"withdrawal_fees"`
	PercentAmount    string `json:"percent_amount"`
	Transactions     int    `json:"transactions"`
}

// ReportResponse describes a generated report
type ReportResponse struct {
	ID               uuid.UUID            `json:"id"`
	FileName         string               `json:"file_name"`
	StartDate        string               `json:"start_date"`
	EndDate          string               `json:"end_date"`
	RatePercent      string               `json:"rate_percent"`
	RateLabel        string               `json:"rate_label,omitempty"`
	MerchantCount    int                  `json:"merchant_count"`
	TransactionCount int                  `json:"transaction_count"`
	TotalWithdrawal  string               `json:"total_withdrawal"`
	DownloadURL      string               `json:"download_url"`
	CreatedAt        time.Time            `json:"created_at"`
	ExpiresAt        time.Time            `json:"expires_at"`
	Summary          []SummaryRowResponse `json:"summary,omitempty"`
}

// ListReportsResponse represents the response for listing reports
type ListReportsResponse struct {
	Reports []ReportResponse `json:"reports"`
}

// DatasetResponse describes the currently loaded dataset
type DatasetResponse struct {
	ID          uuid.UUID `json:"id"`
	SourceName  string    `json:"source_name"`
	Columns     []string  `json:"columns"`
	TotalRows   int       `json:"total_rows"`
	Records     int       `json:"records"`
	DroppedRows int       `json:"dropped_rows"`
	Merchants   int       `json:"merchants"`
	LoadedAt    time.Time `json:"loaded_at"`
}

// MerchantsResponse lists the distinct merchants of the current dataset
type MerchantsResponse struct {
	Merchants []string `json:"merchants"`
}

// IngestionRunResponse is one entry of the upload history
type IngestionRunResponse struct {
	ID            uuid.UUID  `json:"id"`
	DatasetID     *uuid.UUID `json:"dataset_id,omitempty"`
	SourceName    string     `json:"source_name"`
	Status        string     `json:"status"`
	TotalRows     int        `json:"total_rows"`
	IngestedRows  int        `json:"ingested_rows"`
	DroppedRows   int        `json:"dropped_rows"`
	MerchantCount int        `json:"merchant_count"`
	ErrorMessage  *string    `json:"error_message,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}

// ListIngestionRunsResponse represents the response for listing upload history
type ListIngestionRunsResponse struct {
	Runs []IngestionRunResponse `json:"runs"`
}

// NewReportResponse builds the response for a report. result may be nil when
// the report is read back from the registry.
func NewReportResponse(report *models.ReportFile, result *models.SummaryResult) ReportResponse {
	resp := ReportResponse{
		ID:               report.ID,
		FileName:         report.FileName,
		StartDate:        report.StartDate,
		EndDate:          report.EndDate,
		RatePercent:      report.RatePercent.String(),
		MerchantCount:    report.MerchantCount,
		TransactionCount: report.TransactionCount,
		TotalWithdrawal:  report.TotalWithdrawal.StringFixed(2),
		DownloadURL:      fmt.Sprintf("/api/v1/reports/%s/download", report.ID),
		CreatedAt:        report.CreatedAt,
		ExpiresAt:        report.ExpiresAt,
	}

	if result != nil {
		resp.RateLabel = result.RateLabel
		resp.Summary = make([]SummaryRowResponse, 0, len(result.Rows))
		for _, row := range result.Rows {
			resp.Summary = append(resp.Summary, SummaryRowResponse{
				Merchant:         row.Merchant,
				WithdrawalAmount: row.WithdrawalAmount.StringFixed(2),
				WithdrawalFees:   row.WithdrawalFees.StringFixed(2),
				PercentAmount:    row.PercentAmount.StringFixed(2),
				Transactions:     row.Count,
			})
		}
	}

	return resp
}

// NewDatasetResponse builds the response for a loaded dataset
func NewDatasetResponse(dataset *models.Dataset) DatasetResponse {
	return DatasetResponse{
		ID:          dataset.ID,
		SourceName:  dataset.SourceName,
		Columns:     dataset.Columns,
		TotalRows:   dataset.TotalRows,
		Records:     dataset.Len(),
		DroppedRows: dataset.DroppedRows,
		Merchants:   len(dataset.Merchants),
		LoadedAt:    dataset.LoadedAt,
	}
}

// NewIngestionRunResponse builds the response for one upload history entry
func NewIngestionRunResponse(run models.IngestionRun) IngestionRunResponse {
	return IngestionRunResponse{
		ID:            run.ID,
		DatasetID:     run.DatasetID,
		SourceName:    run.SourceName,
		Status:        run.Status,
		TotalRows:     run.TotalRows,
		IngestedRows:  run.IngestedRows,
		DroppedRows:   run.DroppedRows,
		MerchantCount: run.MerchantCount,
		ErrorMessage:  run.ErrorMessage,
		CreatedAt:     run.CreatedAt,
	}
}
