package handlers

import (
	"net/http"

	"withdrawal-report/internal/dto"
	apierrors "withdrawal-report/internal/errors"
	"withdrawal-report/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ReportHandler handles summary report requests
type ReportHandler struct {
	reportService services.ReportServiceInterface
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportService services.ReportServiceInterface) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// GenerateReport summarizes the current dataset and registers the export workbook
// @Summary Generate withdrawal summary
// @Description Filters the current dataset by merchants and an inclusive date range, computes per-merchant totals and writes the two-sheet workbook
// @Tags Reports
// @Accept json
// @Produce json
// @Param request body dto.GenerateReportRequest true "Report parameters"
// @Success 201 {object} dto.ReportResponse "Report generated"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid parameters"
// @Failure 404 {object} errors.ErrorResponse "REPORT_001 - No matching transactions"
// @Failure 409 {object} errors.ErrorResponse "DATASET_002 - No dataset uploaded"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /reports [post]
func (h *ReportHandler) GenerateReport(c echo.Context) error {
	var req dto.GenerateReportRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	report, result, err := h.reportService.GenerateReport(c.Request().Context(), req.ToParams())
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(http.StatusCreated, SuccessResponse{
		Data:    dto.NewReportResponse(report, result),
		Message: "Report generated",
	})
}

// ListReports returns the most recently generated reports
// @Summary List reports
// @Tags Reports
// @Produce json
// @Param limit query int false "Number of reports (max 100)" default(20)
// @Success 200 {object} dto.ListReportsResponse "Reports"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /reports [get]
func (h *ReportHandler) ListReports(c echo.Context) error {
	reports, err := h.reportService.ListReports(c.Request().Context(), getLimitParam(c))
	if err != nil {
		return SendSystemError(c, err)
	}

	resp := dto.ListReportsResponse{Reports: make([]dto.ReportResponse, 0, len(reports))}
	for i := range reports {
		resp.Reports = append(resp.Reports, dto.NewReportResponse(&reports[i], nil))
	}

	return c.JSON(http.StatusOK, SuccessResponse{Data: resp})
}

// GetReport returns the metadata of one report
// @Summary Get report
// @Tags Reports
// @Produce json
// @Param id path string true "Report ID (UUID)"
// @Success 200 {object} dto.ReportResponse "Report"
// @Failure 400 {object} errors.ErrorResponse "REPORT_003 - Invalid report ID"
// @Failure 404 {object} errors.ErrorResponse "REPORT_002 - Report not found or expired"
// @Router /reports/{id} [get]
func (h *ReportHandler) GetReport(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, apierrors.ReportInvalidID)
	}

	report, err := h.reportService.GetReport(c.Request().Context(), id)
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: dto.NewReportResponse(report, nil),
	})
}

// DownloadReport streams the report workbook as an attachment
// @Summary Download report
// @Tags Reports
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param id path string true "Report ID (UUID)"
// @Success 200 {file} file "Workbook"
// @Failure 400 {object} errors.ErrorResponse "REPORT_003 - Invalid report ID"
// @Failure 404 {object} errors.ErrorResponse "REPORT_002 - Report not found or expired"
// @Router /reports/{id}/download [get]
func (h *ReportHandler) DownloadReport(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, apierrors.ReportInvalidID)
	}

	report, err := h.reportService.GetReport(c.Request().Context(), id)
	if err != nil {
		return handleServiceError(c, err)
	}

	c.Response().Header().Set(echo.HeaderContentType, xlsxContentType)
	return c.Attachment(report.Path, report.FileName)
}
