package payroll

import "errors"

var (
	ErrBatchNotFound    = errors.New("payroll batch not found")
	ErrNoLineItems      = errors.New("payroll batch has no line items")
	ErrLineItemNotFound = errors.New("payroll line item not found")
)
