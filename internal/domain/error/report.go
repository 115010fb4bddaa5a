// Package error defines domain-specific errors for the Hotel Ops backend.
package error

import "errors"

// Report domain errors.
var (
	// ErrInvalidDateRange is returned when dateTo is before dateFrom.
	ErrInvalidDateRange = errors.New("dateTo must not be before dateFrom")

	// ErrMissingDateRange is returned when either end of the range is absent.
	ErrMissingDateRange = errors.New("dateFrom and dateTo are required")

	// ErrInvalidDateFormat is returned when a date does not parse as YYYY-MM-DD.
	ErrInvalidDateFormat = errors.New("invalid date format, expected YYYY-MM-DD")

	// ErrInvalidShiftNumber is returned when a shift filter entry is negative.
	ErrInvalidShiftNumber = errors.New("shift numbers must be zero or positive")

	// ErrInvalidCurrency is returned when a currency filter entry is unknown.
	ErrInvalidCurrency = errors.New("unknown currency")

	// ErrInvalidPaymentType is returned when a payment-type filter entry is unknown.
	ErrInvalidPaymentType = errors.New("unknown payment type")

	// ErrInvalidMovementType is returned when a movement-type filter entry is unknown.
	ErrInvalidMovementType = errors.New("unknown movement type")

	// ErrInvalidGroupKey is returned when the grouping key is not supported.
	ErrInvalidGroupKey = errors.New("groupBy must be: turno, date, user, currency or paymentType")

	// ErrInvalidFormat is returned when the output format is not supported.
	ErrInvalidFormat = errors.New("format must be: document, print or data")

	// ErrNegativeRate is returned when a tax or service-fee rate is negative.
	ErrNegativeRate = errors.New("tax and service-fee rates must not be negative")

	// ErrInvalidRequestBody is returned when the request body cannot be decoded.
	ErrInvalidRequestBody = errors.New("malformed request body")

	// ErrMovementFetchFailed is returned when the movement source query fails.
	ErrMovementFetchFailed = errors.New("failed to fetch movements")

	// ErrShiftLookupFailed is returned when shift metadata cannot be loaded.
	ErrShiftLookupFailed = errors.New("failed to load shift metadata")

	// ErrUnsupportedFormat is returned when the export pipeline has no
	// renderer for the requested format.
	ErrUnsupportedFormat = errors.New("unsupported report format")

	// ErrRenderFailed is returned when document rendering or encoding fails.
	ErrRenderFailed = errors.New("failed to render report document")

	// ErrDispatchFailed is returned when emailing the finished artifact fails.
	ErrDispatchFailed = errors.New("failed to dispatch report")
)

// ReportErrorCode defines error codes for report errors.
// Format: RPT-XXYYYY where XX is category and YYYY is specific error.
type ReportErrorCode string

const (
	// Validation errors (01XXXX): rejected before any data is fetched.
	ErrCodeInvalidDateRange    ReportErrorCode = "RPT-010001"
	ErrCodeMissingDateRange    ReportErrorCode = "RPT-010002"
	ErrCodeInvalidDateFormat   ReportErrorCode = "RPT-010003"
	ErrCodeInvalidShiftNumber  ReportErrorCode = "RPT-010004"
	ErrCodeInvalidCurrency     ReportErrorCode = "RPT-010005"
	ErrCodeInvalidPaymentType  ReportErrorCode = "RPT-010006"
	ErrCodeInvalidMovementType ReportErrorCode = "RPT-010007"
	ErrCodeInvalidGroupKey     ReportErrorCode = "RPT-010008"
	ErrCodeInvalidFormat       ReportErrorCode = "RPT-010009"
	ErrCodeNegativeRate        ReportErrorCode = "RPT-010010"
	ErrCodeInvalidRequestBody  ReportErrorCode = "RPT-010011"

	// Source errors (02XXXX): not retried, fatal for the request.
	ErrCodeMovementFetchFailed ReportErrorCode = "RPT-020001"
	ErrCodeShiftLookupFailed   ReportErrorCode = "RPT-020002"

	// Render errors (03XXXX): caught at the export pipeline boundary.
	ErrCodeUnsupportedFormat ReportErrorCode = "RPT-030001"
	ErrCodeRenderFailed      ReportErrorCode = "RPT-030002"

	// Dispatch errors (04XXXX)
	ErrCodeDispatchFailed ReportErrorCode = "RPT-040001"

	// Rate limiting (05XXXX)
	ErrCodeReportRateLimited ReportErrorCode = "RPT-050001"
)

// ReportError represents a report error with code and message.
type ReportError struct {
	Code    ReportErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ReportError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ReportError) Unwrap() error {
	return e.Err
}

// NewReportError creates a new ReportError with the given code and message.
func NewReportError(code ReportErrorCode, message string, err error) *ReportError {
	return &ReportError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// IsValidation reports whether the error code belongs to the validation category.
func (e *ReportError) IsValidation() bool {
	return len(e.Code) >= 6 && e.Code[4:6] == "01"
}
