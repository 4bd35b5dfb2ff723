package payroll

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/wps-backend-go/internal/domain/payroll"
	"github.com/go-chi/jwtauth/v5"
	"github.com/shopspring/decimal"
)

type PayrollServiceImpl struct {
	payrollRepo payroll.PayrollRepository
}

func NewPayrollService(payrollRepo payroll.PayrollRepository) payroll.PayrollService {
	return &PayrollServiceImpl{payrollRepo: payrollRepo}
}

// Helper to get company_id from JWT context
func getClaimsFromContext(ctx context.Context) (companyID string, err error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	companyID, ok := claims["company_id"].(string)
	if !ok || companyID == "" {
		return "", fmt.Errorf("company_id claim is missing or invalid")
	}

	return companyID, nil
}

func (s *PayrollServiceImpl) GetBatch(ctx context.Context, id string) (payroll.BatchDetailResponse, error) {
	companyID, err := getClaimsFromContext(ctx)
	if err != nil {
		return payroll.BatchDetailResponse{}, err
	}

	batch, err := s.payrollRepo.GetBatchByID(ctx, id, companyID)
	if err != nil {
		return payroll.BatchDetailResponse{}, err
	}

	items, err := s.payrollRepo.GetLineItemsByBatchID(ctx, id, companyID)
	if err != nil {
		return payroll.BatchDetailResponse{}, err
	}

	totalNet := decimal.Zero
	lineItems := make([]payroll.LineItemResponse, 0, len(items))
	for _, item := range items {
		totalNet = totalNet.Add(item.NetSalary)
		lineItems = append(lineItems, payroll.LineItemResponse{
			ID:             item.ID,
			EmployeeID:     item.EmployeeID,
			EmployeeNumber: item.EmployeeNumber,
			EmployeeName:   item.EmployeeName,
			BankAccount:    item.BankAccount,
			NetSalary:      item.NetSalary,
		})
	}

	return payroll.BatchDetailResponse{
		BatchResponse: mapToBatchResponse(batch),
		LineItems:     lineItems,
		TotalNet:      totalNet,
	}, nil
}

func (s *PayrollServiceImpl) ListBatches(ctx context.Context, filter payroll.BatchFilter) (payroll.ListBatchResponse, error) {
	companyID, err := getClaimsFromContext(ctx)
	if err != nil {
		return payroll.ListBatchResponse{}, err
	}

	batches, totalCount, err := s.payrollRepo.ListBatches(ctx, companyID, filter)
	if err != nil {
		return payroll.ListBatchResponse{}, err
	}

	data := make([]payroll.BatchResponse, 0, len(batches))
	for _, b := range batches {
		data = append(data, mapToBatchResponse(b))
	}

	return payroll.ListBatchResponse{
		Data:       data,
		TotalCount: totalCount,
		Page:       filter.Page,
		Limit:      filter.Limit,
	}, nil
}

// ========== HELPERS ==========

func mapToBatchResponse(b payroll.PayrollBatch) payroll.BatchResponse {
	return payroll.BatchResponse{
		ID:          b.ID,
		CompanyID:   b.CompanyID,
		PeriodStart: b.PeriodStart.Format("2006-01-02"),
		PeriodEnd:   b.PeriodEnd.Format("2006-01-02"),
		PeriodLabel: b.PeriodLabel(),
		Status:      string(b.Status),
		CreatedAt:   b.CreatedAt.Format(time.RFC3339),
	}
}
