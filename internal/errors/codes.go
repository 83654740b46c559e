package errors

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral         ErrorCode = "VALIDATION_001"
	ValidationRequiredField   ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat   ErrorCode = "VALIDATION_003"
	ValidationOutOfRange      ErrorCode = "VALIDATION_004"
	ValidationInvalidDate     ErrorCode = "VALIDATION_005"
	ValidationEmptySelection  ErrorCode = "VALIDATION_006"
	ValidationUnsupportedFile ErrorCode = "VALIDATION_007"
)

// Dataset error codes (DATASET_*)
const (
	DatasetEmptyInput  ErrorCode = "DATASET_001"
	DatasetNotLoaded   ErrorCode = "DATASET_002"
	DatasetUnreadable  ErrorCode = "DATASET_003"
	DatasetFileMissing ErrorCode = "DATASET_004"
)

// Report error codes (REPORT_*)
const (
	ReportNoMatchingData ErrorCode = "REPORT_001"
	ReportNotFound       ErrorCode = "REPORT_002"
	ReportInvalidID      ErrorCode = "REPORT_003"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemDatabaseError      ErrorCode = "SYSTEM_002"
	SystemServiceUnavailable ErrorCode = "SYSTEM_003"
	SystemConfigurationError ErrorCode = "SYSTEM_004"
	SystemUnexpectedError    ErrorCode = "SYSTEM_005"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_006"
	SystemPayloadTooLarge    ErrorCode = "SYSTEM_007"
	SystemRouteNotFound      ErrorCode = "SYSTEM_008"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	// Validation errors
	ValidationGeneral:         "Validation failed",
	ValidationRequiredField:   "Required field is missing",
	ValidationInvalidFormat:   "Invalid field format",
	ValidationOutOfRange:      "Field value is out of allowed range",
	ValidationInvalidDate:     "Invalid date format or range",
	ValidationEmptySelection:  "At least one merchant must be selected",
	ValidationUnsupportedFile: "Unsupported file type, upload an .xlsx, .xls or .csv file",

	// Dataset errors
	DatasetEmptyInput:  "No data found in the uploaded file",
	DatasetNotLoaded:   "No dataset has been uploaded yet",
	DatasetUnreadable:  "The uploaded file could not be read as a spreadsheet",
	DatasetFileMissing: "A file must be provided in the 'file' form field",

	// Report errors
	ReportNoMatchingData: "No transactions match the selected merchants and date range",
	ReportNotFound:       "Report not found or expired",
	ReportInvalidID:      "Invalid report ID format",

	// System errors
	SystemInternalError:      "An unexpected error occurred. Please contact support with trace ID",
	SystemDatabaseError:      "Database connection error",
	SystemServiceUnavailable: "Service temporarily unavailable",
	SystemConfigurationError: "System configuration error",
	SystemUnexpectedError:    "An unexpected error occurred",
	SystemRateLimitExceeded:  "Rate limit exceeded. Please try again later",
	SystemPayloadTooLarge:    "Request body is too large",
	SystemRouteNotFound:      "The requested resource does not exist",
}

// GetErrorMessage returns the default message for a given error code
// If the error code is not found, it returns a generic error message
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}

// IsValidErrorCode checks if the provided error code is a valid registered code
func IsValidErrorCode(code ErrorCode) bool {
	_, ok := errorMessages[code]
	return ok
}
