package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// BatchStatus enum. The lifecycle is linear; only processed batches may be
// exported to a wage file.
type BatchStatus string

const (
	BatchStatusDraft           BatchStatus = "draft"
	BatchStatusPendingApproval BatchStatus = "pending_approval"
	BatchStatusApproved        BatchStatus = "approved"
	BatchStatusProcessed       BatchStatus = "processed"
)

// PayrollBatch - one payroll run for one legal employer. The period end is
// used as the nominal payment date on the wage file.
type PayrollBatch struct {
	ID          string
	CompanyID   string
	PeriodStart time.Time
	PeriodEnd   time.Time
	Status      BatchStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// PeriodLabel returns the batch period identifier embedded in wage file
// names, e.g. "2025-03".
func (b PayrollBatch) PeriodLabel() string {
	return b.PeriodStart.Format("2006-01")
}

// PayrollLineItem - one employee's pay result within a batch, joined with the
// employee identity fields the wage file needs. NetSalary is in the batch
// currency and is never altered downstream, only reformatted.
type PayrollLineItem struct {
	ID             string
	BatchID        string
	EmployeeID     string
	EmployeeNumber string
	EmployeeName   string
	BankAccount    *string // nil when no account is on file
	NationalID     string  // fallback account reference
	NetSalary      decimal.Decimal
	CreatedAt      time.Time
}

// AccountReference resolves the account field written to the wage file: the
// bank account when one is on file, otherwise the national ID.
func (li PayrollLineItem) AccountReference() string {
	if li.BankAccount != nil && *li.BankAccount != "" {
		return *li.BankAccount
	}
	return li.NationalID
}
