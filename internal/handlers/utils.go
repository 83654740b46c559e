package handlers

import (
	"errors"
	"fmt"

	apierrors "withdrawal-report/internal/errors"
	"withdrawal-report/internal/services"
	"withdrawal-report/internal/workbook"

	"github.com/labstack/echo/v4"
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

func getIntParam(c echo.Context, name string, defaultValue int) int {
	param := c.QueryParam(name)
	if param == "" {
		return defaultValue
	}

	var value int
	if _, err := fmt.Sscanf(param, "%d", &value); err != nil {
		return defaultValue
	}

	return value
}

// getLimitParam reads the "limit" query parameter clamped to [1, maxPageLimit]
func getLimitParam(c echo.Context) int {
	limit := getIntParam(c, "limit", defaultPageLimit)
	if limit <= 0 {
		return defaultPageLimit
	}
	if limit > maxPageLimit {
		return maxPageLimit
	}
	return limit
}

// handleServiceError maps dataset and report service errors to API error codes
func handleServiceError(c echo.Context, err error) error {
	var paramErr *services.ParameterError
	if errors.As(err, &paramErr) {
		return SendError(c, parameterErrorCode(paramErr.Field), apierrors.WithDetails(paramErr.Error()))
	}

	if errors.Is(err, services.ErrInvalidParameter) {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails(err.Error()))
	}

	if errors.Is(err, workbook.ErrUnsupportedFile) {
		return SendError(c, apierrors.ValidationUnsupportedFile)
	}

	if errors.Is(err, workbook.ErrUnreadableWorkbook) {
		return SendError(c, apierrors.DatasetUnreadable)
	}

	if errors.Is(err, services.ErrEmptyInput) {
		return SendError(c, apierrors.DatasetEmptyInput)
	}

	if errors.Is(err, services.ErrNoDataset) {
		return SendError(c, apierrors.DatasetNotLoaded)
	}

	if errors.Is(err, services.ErrNoMatchingData) {
		return SendError(c, apierrors.ReportNoMatchingData)
	}

	if errors.Is(err, services.ErrReportNotFound) {
		return SendError(c, apierrors.ReportNotFound)
	}

	return SendSystemError(c, err)
}

func parameterErrorCode(field string) apierrors.ErrorCode {
	switch field {
	case "merchants":
		return apierrors.ValidationEmptySelection
	case "start_date", "end_date":
		return apierrors.ValidationInvalidDate
	case "percentage":
		return apierrors.ValidationOutOfRange
	default:
		return apierrors.ValidationGeneral
	}
}
