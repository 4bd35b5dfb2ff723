package wagefile

import "errors"

var (
	ErrWageFileNotFound  = errors.New("wage file not found")
	ErrBatchNotProcessed = errors.New("payroll batch has not been processed")
	ErrContentMissing    = errors.New("wage file content missing from storage")
)
