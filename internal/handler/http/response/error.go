package response

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/cmlabs-hris/wps-backend-go/internal/domain/payroll"
	"github.com/cmlabs-hris/wps-backend-go/internal/domain/wagefile"
	"github.com/cmlabs-hris/wps-backend-go/internal/pkg/sif"
	"github.com/cmlabs-hris/wps-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// Per-row encoder failures carry the 0-based row index so the operator
	// can fix the exact payroll row instead of re-uploading blind.
	var lineItemErr *sif.LineItemError
	if errors.As(err, &lineItemErr) {
		ValidationError(w, map[string]string{
			fmt.Sprintf("line_items[%d].%s", lineItemErr.Index, lineItemErr.Field): lineItemErr.Message,
		})
		return
	}

	switch {
	// Encoder request errors
	case errors.Is(err, sif.ErrEmployerIDRequired):
		ValidationError(w, map[string]string{"employer_id": "is required"})
	case errors.Is(err, sif.ErrEstablishmentIDRequired):
		ValidationError(w, map[string]string{"establishment_id": "is required"})
	case errors.Is(err, sif.ErrPeriodLabelRequired),
		errors.Is(err, sif.ErrPaymentDateRequired):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, sif.ErrNoLineItems),
		errors.Is(err, payroll.ErrNoLineItems):
		BadRequest(w, "Payroll batch has no line items", nil)

	// Payroll domain errors
	case errors.Is(err, payroll.ErrBatchNotFound):
		NotFound(w, "Payroll batch not found")
	case errors.Is(err, payroll.ErrLineItemNotFound):
		NotFound(w, "Payroll line item not found")

	// Wage file domain errors
	case errors.Is(err, wagefile.ErrWageFileNotFound):
		NotFound(w, "Wage file not found")
	case errors.Is(err, wagefile.ErrBatchNotProcessed):
		Conflict(w, "Payroll batch has not been processed")
	case errors.Is(err, wagefile.ErrContentMissing):
		InternalServerError(w, "Wage file content missing from storage")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
