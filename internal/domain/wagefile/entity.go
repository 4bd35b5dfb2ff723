package wagefile

import (
	"time"

	"github.com/shopspring/decimal"
)

// FileStatus enum
type FileStatus string

const (
	FileStatusGenerated  FileStatus = "generated"
	FileStatusDownloaded FileStatus = "downloaded"
)

// WageFile - audit record of one generated wage payment file. The rendered
// content is immutable once stored; regenerating a batch creates a new record
// rather than mutating this one.
type WageFile struct {
	ID          string
	CompanyID   string
	BatchID     string
	FileName    string
	StoragePath string
	RecordCount int
	TotalAmount decimal.Decimal
	Warnings    []string // truncation warnings surfaced to the operator
	Status      FileStatus
	GeneratedBy *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
