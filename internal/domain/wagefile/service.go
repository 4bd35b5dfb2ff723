package wagefile

import "context"

type WageFileService interface {
	// Generate renders the wage payment file for a processed batch, stores
	// the content and persists an audit record. Truncation warnings ride on
	// the response; the caller must surface them to the operator.
	Generate(ctx context.Context, req GenerateWageFileRequest) (WageFileResponse, error)

	GetByID(ctx context.Context, id string) (WageFileResponse, error)
	ListByBatch(ctx context.Context, batchID string) ([]WageFileResponse, error)
	Download(ctx context.Context, id string) (WageFileDownload, error)
}
