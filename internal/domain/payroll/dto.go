package payroll

import (
	"github.com/shopspring/decimal"
)

type BatchFilter struct {
	Status    *string `json:"status,omitempty"`
	Page      int     `json:"page"`
	Limit     int     `json:"limit"`
	SortBy    string  `json:"sort_by"`
	SortOrder string  `json:"sort_order"`
}

type BatchResponse struct {
	ID          string `json:"id"`
	CompanyID   string `json:"company_id"`
	PeriodStart string `json:"period_start"`
	PeriodEnd   string `json:"period_end"`
	PeriodLabel string `json:"period_label"`
	Status      string `json:"status"`
	CreatedAt   string `json:"created_at"`
}

type LineItemResponse struct {
	ID             string          `json:"id"`
	EmployeeID     string          `json:"employee_id"`
	EmployeeNumber string          `json:"employee_number"`
	EmployeeName   string          `json:"employee_name"`
	BankAccount    *string         `json:"bank_account,omitempty"`
	NetSalary      decimal.Decimal `json:"net_salary"`
}

type BatchDetailResponse struct {
	BatchResponse
	LineItems []LineItemResponse `json:"line_items"`
	TotalNet  decimal.Decimal    `json:"total_net"`
}

type ListBatchResponse struct {
	Data       []BatchResponse `json:"data"`
	TotalCount int64           `json:"total_count"`
	Page       int             `json:"page"`
	Limit      int             `json:"limit"`
}
