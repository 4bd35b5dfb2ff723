package wagefile

import "context"

// WageFileRepository persists the audit trail of generated files.
// All methods include companyID to prevent cross-company data access.
type WageFileRepository interface {
	Create(ctx context.Context, file WageFile) (WageFile, error)
	GetByID(ctx context.Context, id string, companyID string) (WageFile, error)
	ListByBatchID(ctx context.Context, batchID string, companyID string) ([]WageFile, error)
	MarkDownloaded(ctx context.Context, id string, companyID string) error
}
