package payslip

import (
	"time"

	"github.com/paydeck/payroll-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type GeneratePayslipRequest struct {
	EmployeeID     int64            `json:"employee_id"`
	PayPeriodStart string           `json:"pay_period_start"`
	PayPeriodEnd   string           `json:"pay_period_end"`
	OvertimeRate   *decimal.Decimal `json:"overtime_rate,omitempty"`
}

func (r *GeneratePayslipRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.EmployeeID <= 0 {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if _, ok := validator.IsValidDate(r.PayPeriodStart); !ok {
		errs = append(errs, validator.ValidationError{Field: "pay_period_start", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	if _, ok := validator.IsValidDate(r.PayPeriodEnd); !ok {
		errs = append(errs, validator.ValidationError{Field: "pay_period_end", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	if r.OvertimeRate != nil && !r.OvertimeRate.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "overtime_rate", Message: "must be positive"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type PayslipFilter struct {
	EmployeeID *int64
	StartDate  *time.Time
	EndDate    *time.Time
}

type PayslipResponse struct {
	ID              int64           `json:"id"`
	EmployeeID      int64           `json:"employee_id"`
	PayPeriodStart  string          `json:"pay_period_start"`
	PayPeriodEnd    string          `json:"pay_period_end"`
	GrossPay        decimal.Decimal `json:"gross_pay"`
	TotalDeductions decimal.Decimal `json:"total_deductions"`
	NetPay          decimal.Decimal `json:"net_pay"`
	RegularHours    decimal.Decimal `json:"regular_hours"`
	OvertimeHours   decimal.Decimal `json:"overtime_hours"`
	OvertimeRate    decimal.Decimal `json:"overtime_rate"`
	Deductions      []DeductionLine `json:"deductions"`
	GeneratedAt     string          `json:"generated_at"`
}
