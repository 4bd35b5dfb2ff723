package payroll

import "context"

// PayrollService exposes the read surface operators use to pick the batch to
// export. Batch lifecycle management lives in the wider HRIS, not here.
type PayrollService interface {
	GetBatch(ctx context.Context, id string) (BatchDetailResponse, error)
	ListBatches(ctx context.Context, filter BatchFilter) (ListBatchResponse, error)
}
