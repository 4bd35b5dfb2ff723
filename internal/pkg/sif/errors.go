package sif

import (
	"errors"
	"fmt"
)

var (
	ErrEmployerIDRequired      = errors.New("employer id is required")
	ErrEstablishmentIDRequired = errors.New("establishment id is required")
	ErrPeriodLabelRequired     = errors.New("period label is required")
	ErrPaymentDateRequired     = errors.New("payment date is required")
	ErrNoLineItems             = errors.New("wage file requires at least one line item")
)

// LineItemError reports a validation failure on one payroll row. The index is
// 0-based so the operator can be pointed at the exact row to fix. Any line
// item failure aborts the whole encode: a wage file is an atomic financial
// submission, and silently dropping one employee from a pay run is a worse
// failure mode than rejecting the batch.
type LineItemError struct {
	Index   int
	Field   string
	Message string
}

func (e *LineItemError) Error() string {
	return fmt.Sprintf("line item %d: %s %s", e.Index, e.Field, e.Message)
}
