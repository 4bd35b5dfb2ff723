package postgresql

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/wps-backend-go/internal/domain/payroll"
	"github.com/cmlabs-hris/wps-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type payrollRepository struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.PayrollRepository {
	return &payrollRepository{db: db}
}

func (r *payrollRepository) GetBatchByID(ctx context.Context, id string, companyID string) (payroll.PayrollBatch, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, company_id, period_start, period_end, status, created_at, updated_at
		FROM payroll_batches
		WHERE id = $1 AND company_id = $2
	`

	var b payroll.PayrollBatch
	err := q.QueryRow(ctx, query, id, companyID).Scan(
		&b.ID, &b.CompanyID, &b.PeriodStart, &b.PeriodEnd, &b.Status, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.PayrollBatch{}, payroll.ErrBatchNotFound
		}
		return payroll.PayrollBatch{}, fmt.Errorf("failed to get payroll batch: %w", err)
	}

	return b, nil
}

var batchSortColumns = map[string]string{
	"created_at":   "created_at",
	"period_start": "period_start",
	"period_end":   "period_end",
	"status":       "status",
}

func (r *payrollRepository) ListBatches(ctx context.Context, companyID string, filter payroll.BatchFilter) ([]payroll.PayrollBatch, int64, error) {
	q := GetQuerier(ctx, r.db)

	where := "WHERE company_id = $1"
	args := []interface{}{companyID}
	if filter.Status != nil {
		where += fmt.Sprintf(" AND status = $%d", len(args)+1)
		args = append(args, *filter.Status)
	}

	var totalCount int64
	countQuery := "SELECT COUNT(*) FROM payroll_batches " + where
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&totalCount); err != nil {
		return nil, 0, fmt.Errorf("failed to count payroll batches: %w", err)
	}

	// Sort column comes from a whitelist, never from user input directly.
	sortBy, ok := batchSortColumns[filter.SortBy]
	if !ok {
		sortBy = "created_at"
	}
	sortOrder := "DESC"
	if filter.SortOrder == "asc" {
		sortOrder = "ASC"
	}

	query := fmt.Sprintf(`
		SELECT id, company_id, period_start, period_end, status, created_at, updated_at
		FROM payroll_batches
		%s
		ORDER BY %s %s
		LIMIT $%d OFFSET $%d
	`, where, sortBy, sortOrder, len(args)+1, len(args)+2)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list payroll batches: %w", err)
	}
	defer rows.Close()

	var batches []payroll.PayrollBatch
	for rows.Next() {
		var b payroll.PayrollBatch
		if err := rows.Scan(
			&b.ID, &b.CompanyID, &b.PeriodStart, &b.PeriodEnd, &b.Status, &b.CreatedAt, &b.UpdatedAt,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan payroll batch: %w", err)
		}
		batches = append(batches, b)
	}

	return batches, totalCount, nil
}

func (r *payrollRepository) GetLineItemsByBatchID(ctx context.Context, batchID string, companyID string) ([]payroll.PayrollLineItem, error) {
	q := GetQuerier(ctx, r.db)

	// Insertion order: the wage file must be reproducible and diffable, so
	// the ordering can never depend on join plans.
	query := `
		SELECT li.id, li.batch_id, li.employee_id, e.employee_number, e.full_name,
			   e.bank_account, e.national_id, li.net_salary, li.created_at
		FROM payroll_line_items li
		JOIN payroll_batches b ON b.id = li.batch_id
		JOIN employees e ON e.id = li.employee_id
		WHERE li.batch_id = $1 AND b.company_id = $2
		ORDER BY li.created_at, li.id
	`

	rows, err := q.Query(ctx, query, batchID, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payroll line items: %w", err)
	}
	defer rows.Close()

	var items []payroll.PayrollLineItem
	for rows.Next() {
		var item payroll.PayrollLineItem
		if err := rows.Scan(
			&item.ID, &item.BatchID, &item.EmployeeID, &item.EmployeeNumber, &item.EmployeeName,
			&item.BankAccount, &item.NationalID, &item.NetSalary, &item.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan payroll line item: %w", err)
		}
		items = append(items, item)
	}

	return items, nil
}
