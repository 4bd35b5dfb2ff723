package wagefile

import (
	"io"

	"github.com/cmlabs-hris/wps-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type GenerateWageFileRequest struct {
	BatchID         string `json:"-"`
	EmployerID      string `json:"employer_id"`
	EstablishmentID string `json:"establishment_id"`
}

func (r *GenerateWageFileRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.BatchID) {
		errs = append(errs, validator.ValidationError{Field: "batch_id", Message: "is required"})
	}
	if validator.IsEmpty(r.EmployerID) {
		errs = append(errs, validator.ValidationError{Field: "employer_id", Message: "is required"})
	} else if !validator.IsAlphanumeric(r.EmployerID) {
		errs = append(errs, validator.ValidationError{Field: "employer_id", Message: "must be alphanumeric"})
	}
	if validator.IsEmpty(r.EstablishmentID) {
		errs = append(errs, validator.ValidationError{Field: "establishment_id", Message: "is required"})
	} else if !validator.IsAlphanumeric(r.EstablishmentID) {
		errs = append(errs, validator.ValidationError{Field: "establishment_id", Message: "must be alphanumeric"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type WageFileResponse struct {
	ID          string          `json:"id"`
	BatchID     string          `json:"batch_id"`
	FileName    string          `json:"file_name"`
	RecordCount int             `json:"record_count"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	Warnings    []string        `json:"warnings,omitempty"`
	Status      string          `json:"status"`
	CreatedAt   string          `json:"created_at"`
}

// WageFileDownload streams the stored content back to the caller. The caller
// owns closing Content.
type WageFileDownload struct {
	FileName string
	Content  io.ReadCloser
}
