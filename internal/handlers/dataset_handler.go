package handlers

import (
	"errors"
	"net/http"

	"withdrawal-report/internal/dto"
	apierrors "withdrawal-report/internal/errors"
	"withdrawal-report/internal/services"
	"withdrawal-report/internal/workbook"

	"github.com/labstack/echo/v4"
)

// uploadFormField is the multipart field carrying the uploaded export
const uploadFormField = "file"

// DatasetHandler handles dataset upload and inspection requests
type DatasetHandler struct {
	reportService services.ReportServiceInterface
}

// NewDatasetHandler creates a new dataset handler
func NewDatasetHandler(reportService services.ReportServiceInterface) *DatasetHandler {
	return &DatasetHandler{reportService: reportService}
}

// UploadDataset loads a transaction export and makes it the current dataset
// @Summary Upload dataset
// @Description Upload an .xlsx, .xls or .csv transaction export. It replaces the current dataset when it loads successfully.
// @Tags Datasets
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Transaction export"
// @Success 201 {object} dto.DatasetResponse "Dataset loaded"
// @Failure 400 {object} errors.ErrorResponse "DATASET_004 - Missing file or VALIDATION_007 - Unsupported file type"
// @Failure 413 {object} errors.ErrorResponse "SYSTEM_007 - Upload too large"
// @Failure 422 {object} errors.ErrorResponse "DATASET_001 - No data or DATASET_003 - Unreadable workbook"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /datasets [post]
func (h *DatasetHandler) UploadDataset(c echo.Context) error {
	header, err := c.FormFile(uploadFormField)
	if err != nil {
		if errors.Is(err, echo.ErrStatusRequestEntityTooLarge) {
			return SendError(c, apierrors.SystemPayloadTooLarge)
		}
		return SendError(c, apierrors.DatasetFileMissing)
	}

	if !workbook.IsSupported(header.Filename) {
		return SendError(c, apierrors.ValidationUnsupportedFile)
	}

	src, err := header.Open()
	if err != nil {
		return SendSystemError(c, err)
	}
	defer src.Close()

	dataset, err := h.reportService.LoadDataset(c.Request().Context(), header.Filename, src)
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(http.StatusCreated, SuccessResponse{
		Data:    dto.NewDatasetResponse(dataset),
		Message: "Dataset loaded",
	})
}

// GetCurrentDataset describes the dataset reports are currently generated from
// @Summary Current dataset
// @Tags Datasets
// @Produce json
// @Success 200 {object} dto.DatasetResponse "Current dataset"
// @Failure 409 {object} errors.ErrorResponse "DATASET_002 - No dataset uploaded"
// @Router /datasets/current [get]
func (h *DatasetHandler) GetCurrentDataset(c echo.Context) error {
	dataset, err := h.reportService.CurrentDataset()
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: dto.NewDatasetResponse(dataset),
	})
}

// ListMerchants returns the merchants that can be selected for a report
// @Summary List merchants
// @Description Distinct merchant names of the current dataset in sorted order
// @Tags Datasets
// @Produce json
// @Success 200 {object} dto.MerchantsResponse "Merchant names"
// @Failure 409 {object} errors.ErrorResponse "DATASET_002 - No dataset uploaded"
// @Router /datasets/current/merchants [get]
func (h *DatasetHandler) ListMerchants(c echo.Context) error {
	dataset, err := h.reportService.CurrentDataset()
	if err != nil {
		return handleServiceError(c, err)
	}

	merchants := dataset.Merchants
	if merchants == nil {
		merchants = []string{}
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: dto.MerchantsResponse{Merchants: merchants},
	})
}

// ListIngestionRuns returns the most recent uploads, newest first
// @Summary Upload history
// @Tags Datasets
// @Produce json
// @Param limit query int false "Number of entries (max 100)" default(20)
// @Success 200 {object} dto.ListIngestionRunsResponse "Upload history"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /datasets/runs [get]
func (h *DatasetHandler) ListIngestionRuns(c echo.Context) error {
	runs, err := h.reportService.ListIngestionRuns(c.Request().Context(), getLimitParam(c))
	if err != nil {
		return SendSystemError(c, err)
	}

	resp := dto.ListIngestionRunsResponse{Runs: make([]dto.IngestionRunResponse, 0, len(runs))}
	for _, run := range runs {
		resp.Runs = append(resp.Runs, dto.NewIngestionRunResponse(run))
	}

	return c.JSON(http.StatusOK, SuccessResponse{Data: resp})
}
