// Package sif renders a payroll batch into the wage-protection interchange
// format (SIF): one fixed-layout, pipe-delimited record per employee. The
// receiving bank system rejects malformed files with no feedback loop, so
// field widths, padding, amount encoding and dates must match the format
// byte for byte.
package sif

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// FieldsPerRecord is the number of delimiter-separated fields in one record.
const FieldsPerRecord = 14

// Config carries the interchange-format variant: fixed literals, delimiter
// and nominal field widths. It is immutable once handed to an Encoder, so a
// different bank or regulator variant is a different Config, not a code
// change.
type Config struct {
	RecordTypeCode  string // salary-credit record tag
	BankCode        string // disbursing bank routing code
	AccountTypeCode string
	RoutingTypeCode string
	CountryCode     string // pseudo-IBAN prefix; not a real IBAN
	Delimiter       string
	FileExtension   string

	EmployerIDWidth      int
	EstablishmentIDWidth int
	AccountWidth         int
	EmployeeNumberWidth  int
	NameWidth            int
	AmountWidth          int
	IBANWidth            int
	FillerWidth          int
}

// DefaultConfig returns the reference-format configuration.
func DefaultConfig() Config {
	return Config{
		RecordTypeCode:  "SAL",
		BankCode:        "WPSBNK001",
		AccountTypeCode: "ACC",
		RoutingTypeCode: "RTG",
		CountryCode:     "SA",
		Delimiter:       "|",
		FileExtension:   "sif",

		EmployerIDWidth:      10,
		EstablishmentIDWidth: 10,
		AccountWidth:         24,
		EmployeeNumberWidth:  14,
		NameWidth:            35,
		AmountWidth:          15,
		IBANWidth:            26,
		FillerWidth:          10,
	}
}

// LineItem is one employee's pay result, already joined with identity fields.
type LineItem struct {
	EmployeeNumber string
	EmployeeName   string
	Account        string // bank account number, or the national-ID fallback
	NetSalary      decimal.Decimal
}

// Request is the encoder input envelope for one payroll batch.
type Request struct {
	EmployerID      string
	EstablishmentID string
	PeriodLabel     string // e.g. "2025-03", used for the file name only
	PaymentDate     time.Time
	LineItems       []LineItem
}

// Warning flags a lossy transform the caller must surface to the operator: a
// truncated bank-registered identifier can cause a bank-side rejection this
// component cannot detect.
type Warning struct {
	Record int // 0-based line item index, -1 for request-level fields
	Field  string
	Width  int
}

func (w Warning) String() string {
	if w.Record < 0 {
		return fmt.Sprintf("%s truncated to %d characters", w.Field, w.Width)
	}
	return fmt.Sprintf("line item %d: %s truncated to %d characters", w.Record, w.Field, w.Width)
}

// File is the rendered result. Content is immutable once returned; totals are
// computed once and reused for display and reconciliation.
type File struct {
	FileName    string
	Content     string
	RecordCount int
	TotalAmount decimal.Decimal
	Warnings    []Warning
}

// Encoder renders wage files for one format variant. It performs no I/O and
// holds no mutable state, so a single Encoder is safe for concurrent use.
type Encoder struct {
	cfg Config
}

func NewEncoder(cfg Config) *Encoder {
	return &Encoder{cfg: cfg}
}

// Encode validates the request and renders one record per line item, in input
// order, each terminated by a single newline. Identical input produces
// byte-identical output. On any validation failure no partial file is
// returned.
func (e *Encoder) Encode(req Request) (*File, error) {
	if err := e.validate(req); err != nil {
		return nil, err
	}

	var warnings []Warning

	employerField, truncated := padRight(req.EmployerID, e.cfg.EmployerIDWidth)
	if truncated {
		warnings = append(warnings, Warning{Record: -1, Field: "employer_id", Width: e.cfg.EmployerIDWidth})
	}
	establishmentField, truncated := padRight(req.EstablishmentID, e.cfg.EstablishmentIDWidth)
	if truncated {
		warnings = append(warnings, Warning{Record: -1, Field: "establishment_id", Width: e.cfg.EstablishmentIDWidth})
	}

	// The summary total is the exact decimal sum, computed before any
	// per-record rounding so it never drifts from the true total.
	total := decimal.Zero
	for _, item := range req.LineItems {
		total = total.Add(item.NetSalary)
	}

	var sb strings.Builder
	for i, item := range req.LineItems {
		record, recordWarnings := e.encodeRecord(i, item, req.PaymentDate, employerField, establishmentField)
		warnings = append(warnings, recordWarnings...)
		sb.WriteString(record)
		sb.WriteByte('\n')
	}

	return &File{
		FileName:    e.FileName(req.PeriodLabel, req.PaymentDate),
		Content:     sb.String(),
		RecordCount: len(req.LineItems),
		TotalAmount: total,
		Warnings:    warnings,
	}, nil
}

// FileName derives the deterministic wage file name from the batch period
// label and payment date.
func (e *Encoder) FileName(periodLabel string, paymentDate time.Time) string {
	return fmt.Sprintf("WAGE_%s_%s.%s", periodLabel, wireDate(paymentDate), e.cfg.FileExtension)
}

func (e *Encoder) encodeRecord(index int, item LineItem, paymentDate time.Time, employerField, establishmentField string) (string, []Warning) {
	var warnings []Warning

	accountField, truncated := padRight(item.Account, e.cfg.AccountWidth)
	if truncated {
		warnings = append(warnings, Warning{Record: index, Field: "account", Width: e.cfg.AccountWidth})
	}
	numberField, truncated := padRight(item.EmployeeNumber, e.cfg.EmployeeNumberWidth)
	if truncated {
		warnings = append(warnings, Warning{Record: index, Field: "employee_number", Width: e.cfg.EmployeeNumberWidth})
	}
	// Names vary widely in length; truncation here is an accepted lossy
	// transform and deliberately not flagged, unlike identifier fields.
	nameField, _ := padRight(item.EmployeeName, e.cfg.NameWidth)

	dateField := wireDate(paymentDate)
	// Pseudo-IBAN: legacy compatibility field built from the country literal
	// and the raw account reference. Never validated as a real IBAN.
	ibanField, _ := padRight(e.cfg.CountryCode+item.Account, e.cfg.IBANWidth)

	fields := [FieldsPerRecord]string{
		e.cfg.RecordTypeCode,
		e.cfg.BankCode,
		accountField,
		numberField,
		nameField,
		zeroPadLeft(minorUnits(item.NetSalary), e.cfg.AmountWidth),
		dateField, // payment date
		dateField, // value date, identical until value-dating exists
		employerField,
		establishmentField,
		e.cfg.AccountTypeCode,
		e.cfg.RoutingTypeCode,
		ibanField,
		filler(e.cfg.FillerWidth),
	}

	return strings.Join(fields[:], e.cfg.Delimiter), warnings
}

func (e *Encoder) validate(req Request) error {
	if strings.TrimSpace(req.EmployerID) == "" {
		return ErrEmployerIDRequired
	}
	if strings.TrimSpace(req.EstablishmentID) == "" {
		return ErrEstablishmentIDRequired
	}
	if strings.TrimSpace(req.PeriodLabel) == "" {
		return ErrPeriodLabelRequired
	}
	if req.PaymentDate.IsZero() {
		return ErrPaymentDateRequired
	}
	if len(req.LineItems) == 0 {
		return ErrNoLineItems
	}

	for i, item := range req.LineItems {
		if strings.TrimSpace(item.EmployeeNumber) == "" {
			return &LineItemError{Index: i, Field: "employee_number", Message: "is required"}
		}
		if strings.TrimSpace(item.EmployeeName) == "" {
			return &LineItemError{Index: i, Field: "employee_name", Message: "is required"}
		}
		if strings.TrimSpace(item.Account) == "" {
			return &LineItemError{Index: i, Field: "account", Message: "is required"}
		}
		if item.NetSalary.IsNegative() {
			return &LineItemError{Index: i, Field: "net_salary", Message: "must be non-negative"}
		}
	}

	return nil
}

// minorUnits converts a currency amount to integer minor units, rounding half
// up. Half-to-even would be statistically fairer but bank amounts must round
// predictably so they reconcile against manual calculation. Negative amounts
// are rejected during validation, so decimal's half-away-from-zero rounding
// is half-up here.
func minorUnits(amount decimal.Decimal) int64 {
	return amount.Shift(2).Round(0).IntPart()
}
