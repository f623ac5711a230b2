package payslip

import (
	"time"

	"github.com/paydeck/payroll-backend-go/internal/domain/deduction"
	"github.com/shopspring/decimal"
)

// DeductionLine is a point-in-time snapshot of one rule applied to one
// payslip's gross pay. It must stay reproducible after the rule is
// mutated or deactivated, so it copies name, kind and value.
type DeductionLine struct {
	Name   string          `json:"name"`
	Kind   deduction.Kind  `json:"kind"`
	Value  decimal.Decimal `json:"value"`
	Amount decimal.Decimal `json:"amount"`
}

// Payslip is immutable once written. Regeneration for the same employee
// and period creates a new independent row.
type Payslip struct {
	ID              int64
	EmployeeID      int64
	PayPeriodStart  time.Time
	PayPeriodEnd    time.Time
	GrossPay        decimal.Decimal
	TotalDeductions decimal.Decimal
	NetPay          decimal.Decimal
	RegularHours    decimal.Decimal
	OvertimeHours   decimal.Decimal
	OvertimeRate    decimal.Decimal
	Deductions      []DeductionLine
	GeneratedAt     time.Time
}
