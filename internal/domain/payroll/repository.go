package payroll

import "context"

// PayrollRepository defines read access to payroll batches and their line
// items. All methods include companyID to prevent cross-company data access.
// Line items are returned in stable insertion order so that wage file output
// is reproducible and diffable across regenerations.
type PayrollRepository interface {
	GetBatchByID(ctx context.Context, id string, companyID string) (PayrollBatch, error)
	ListBatches(ctx context.Context, companyID string, filter BatchFilter) ([]PayrollBatch, int64, error)
	GetLineItemsByBatchID(ctx context.Context, batchID string, companyID string) ([]PayrollLineItem, error)
}
