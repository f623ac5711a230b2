package attendance

import (
	"time"

	"github.com/paydeck/payroll-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

var maxDailyHours = decimal.NewFromInt(24)

type CreateAttendanceRequest struct {
	EmployeeID    int64           `json:"employee_id"`
	Date          string          `json:"date"`
	IsPresent     bool            `json:"is_present"`
	HoursWorked   decimal.Decimal `json:"hours_worked"`
	OvertimeHours decimal.Decimal `json:"overtime_hours"`
	Notes         *string         `json:"notes,omitempty"`
}

func (r *CreateAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.EmployeeID <= 0 {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	if r.HoursWorked.IsNegative() || r.HoursWorked.GreaterThan(maxDailyHours) {
		errs = append(errs, validator.ValidationError{Field: "hours_worked", Message: "must be between 0 and 24"})
	}
	if r.OvertimeHours.IsNegative() || r.OvertimeHours.GreaterThan(maxDailyHours) {
		errs = append(errs, validator.ValidationError{Field: "overtime_hours", Message: "must be between 0 and 24"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateAttendanceRequest struct {
	ID            int64            `json:"-"`
	IsPresent     *bool            `json:"is_present,omitempty"`
	HoursWorked   *decimal.Decimal `json:"hours_worked,omitempty"`
	OvertimeHours *decimal.Decimal `json:"overtime_hours,omitempty"`
	Notes         *string          `json:"notes,omitempty"`
}

func (r *UpdateAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.HoursWorked != nil && (r.HoursWorked.IsNegative() || r.HoursWorked.GreaterThan(maxDailyHours)) {
		errs = append(errs, validator.ValidationError{Field: "hours_worked", Message: "must be between 0 and 24"})
	}
	if r.OvertimeHours != nil && (r.OvertimeHours.IsNegative() || r.OvertimeHours.GreaterThan(maxDailyHours)) {
		errs = append(errs, validator.ValidationError{Field: "overtime_hours", Message: "must be between 0 and 24"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AttendanceFilter struct {
	EmployeeID *int64
	StartDate  *time.Time
	EndDate    *time.Time
}

type AttendanceResponse struct {
	ID            int64           `json:"id"`
	EmployeeID    int64           `json:"employee_id"`
	Date          string          `json:"date"`
	IsPresent     bool            `json:"is_present"`
	HoursWorked   decimal.Decimal `json:"hours_worked"`
	OvertimeHours decimal.Decimal `json:"overtime_hours"`
	Notes         *string         `json:"notes,omitempty"`
}
