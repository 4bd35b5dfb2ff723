package wagefile

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/cmlabs-hris/wps-backend-go/internal/domain/payroll"
	"github.com/cmlabs-hris/wps-backend-go/internal/domain/wagefile"
	"github.com/cmlabs-hris/wps-backend-go/internal/pkg/sif"
	"github.com/cmlabs-hris/wps-backend-go/internal/pkg/storage"
	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
)

type WageFileServiceImpl struct {
	payrollRepo  payroll.PayrollRepository
	wageFileRepo wagefile.WageFileRepository
	encoder      *sif.Encoder
	fileStorage  storage.FileStorage
}

func NewWageFileService(
	payrollRepo payroll.PayrollRepository,
	wageFileRepo wagefile.WageFileRepository,
	encoder *sif.Encoder,
	fileStorage storage.FileStorage,
) wagefile.WageFileService {
	return &WageFileServiceImpl{
		payrollRepo:  payrollRepo,
		wageFileRepo: wageFileRepo,
		encoder:      encoder,
		fileStorage:  fileStorage,
	}
}

// Helper to get company_id and user_id from JWT context
func getClaimsFromContext(ctx context.Context) (companyID, userID string, err error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	companyID, ok := claims["company_id"].(string)
	if !ok || companyID == "" {
		return "", "", fmt.Errorf("company_id claim is missing or invalid")
	}

	userID, _ = claims["user_id"].(string)

	return companyID, userID, nil
}

func (s *WageFileServiceImpl) Generate(ctx context.Context, req wagefile.GenerateWageFileRequest) (wagefile.WageFileResponse, error) {
	if err := req.Validate(); err != nil {
		return wagefile.WageFileResponse{}, err
	}

	companyID, userID, err := getClaimsFromContext(ctx)
	if err != nil {
		return wagefile.WageFileResponse{}, err
	}

	batch, err := s.payrollRepo.GetBatchByID(ctx, req.BatchID, companyID)
	if err != nil {
		return wagefile.WageFileResponse{}, err
	}

	// The approval workflow is owned by the caller, but a wage file for an
	// unfinished batch is silently-wrong input, so the status is re-checked
	// here rather than trusted.
	if batch.Status != payroll.BatchStatusProcessed {
		return wagefile.WageFileResponse{}, wagefile.ErrBatchNotProcessed
	}

	items, err := s.payrollRepo.GetLineItemsByBatchID(ctx, req.BatchID, companyID)
	if err != nil {
		return wagefile.WageFileResponse{}, err
	}
	if len(items) == 0 {
		return wagefile.WageFileResponse{}, payroll.ErrNoLineItems
	}

	lineItems := make([]sif.LineItem, 0, len(items))
	for _, item := range items {
		lineItems = append(lineItems, sif.LineItem{
			EmployeeNumber: item.EmployeeNumber,
			EmployeeName:   item.EmployeeName,
			Account:        item.AccountReference(),
			NetSalary:      item.NetSalary,
		})
	}

	file, err := s.encoder.Encode(sif.Request{
		EmployerID:      req.EmployerID,
		EstablishmentID: req.EstablishmentID,
		PeriodLabel:     batch.PeriodLabel(),
		PaymentDate:     batch.PeriodEnd,
		LineItems:       lineItems,
	})
	if err != nil {
		return wagefile.WageFileResponse{}, err
	}

	// The file name is deterministic per batch; the storage key is not, so
	// regenerations never overwrite an earlier audit trail.
	storagePath := filepath.Join("wagefiles", companyID, fmt.Sprintf("%s-%s", uuid.New().String(), file.FileName))
	uploadedPath, err := s.fileStorage.Upload(ctx, strings.NewReader(file.Content), storagePath, "text/plain")
	if err != nil {
		return wagefile.WageFileResponse{}, fmt.Errorf("failed to store wage file: %w", err)
	}

	warnings := make([]string, 0, len(file.Warnings))
	for _, w := range file.Warnings {
		warnings = append(warnings, w.String())
	}

	record := wagefile.WageFile{
		CompanyID:   companyID,
		BatchID:     batch.ID,
		FileName:    file.FileName,
		StoragePath: uploadedPath,
		RecordCount: file.RecordCount,
		TotalAmount: file.TotalAmount,
		Warnings:    warnings,
		Status:      wagefile.FileStatusGenerated,
	}
	if userID != "" {
		record.GeneratedBy = &userID
	}

	created, err := s.wageFileRepo.Create(ctx, record)
	if err != nil {
		return wagefile.WageFileResponse{}, err
	}

	return mapToResponse(created), nil
}

func (s *WageFileServiceImpl) GetByID(ctx context.Context, id string) (wagefile.WageFileResponse, error) {
	companyID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return wagefile.WageFileResponse{}, err
	}

	record, err := s.wageFileRepo.GetByID(ctx, id, companyID)
	if err != nil {
		return wagefile.WageFileResponse{}, err
	}

	return mapToResponse(record), nil
}

func (s *WageFileServiceImpl) ListByBatch(ctx context.Context, batchID string) ([]wagefile.WageFileResponse, error) {
	companyID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return nil, err
	}

	records, err := s.wageFileRepo.ListByBatchID(ctx, batchID, companyID)
	if err != nil {
		return nil, err
	}

	result := make([]wagefile.WageFileResponse, 0, len(records))
	for _, r := range records {
		result = append(result, mapToResponse(r))
	}

	return result, nil
}

func (s *WageFileServiceImpl) Download(ctx context.Context, id string) (wagefile.WageFileDownload, error) {
	companyID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return wagefile.WageFileDownload{}, err
	}

	record, err := s.wageFileRepo.GetByID(ctx, id, companyID)
	if err != nil {
		return wagefile.WageFileDownload{}, err
	}

	content, err := s.fileStorage.Download(ctx, record.StoragePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return wagefile.WageFileDownload{}, wagefile.ErrContentMissing
		}
		return wagefile.WageFileDownload{}, fmt.Errorf("failed to read wage file content: %w", err)
	}

	if err := s.wageFileRepo.MarkDownloaded(ctx, id, companyID); err != nil {
		content.Close()
		return wagefile.WageFileDownload{}, err
	}

	return wagefile.WageFileDownload{
		FileName: record.FileName,
		Content:  content,
	}, nil
}

// ========== HELPERS ==========

func mapToResponse(r wagefile.WageFile) wagefile.WageFileResponse {
	return wagefile.WageFileResponse{
		ID:          r.ID,
		BatchID:     r.BatchID,
		FileName:    r.FileName,
		RecordCount: r.RecordCount,
		TotalAmount: r.TotalAmount,
		Warnings:    r.Warnings,
		Status:      string(r.Status),
		CreatedAt:   r.CreatedAt.Format(time.RFC3339),
	}
}
