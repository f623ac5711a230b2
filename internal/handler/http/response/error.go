package response

import (
	"errors"
	"net/http"

	"github.com/paydeck/payroll-backend-go/internal/domain/attendance"
	"github.com/paydeck/payroll-backend-go/internal/domain/deduction"
	"github.com/paydeck/payroll-backend-go/internal/domain/employee"
	"github.com/paydeck/payroll-backend-go/internal/domain/payslip"
	"github.com/paydeck/payroll-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrBadgeNumberExists):
		Conflict(w, "Badge number already exists")
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, "Email already registered")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrDuplicateAttendance):
		Conflict(w, "Attendance already recorded for this employee and date")

	// Deduction domain errors
	case errors.Is(err, deduction.ErrRuleNotFound):
		NotFound(w, "Deduction rule not found")
	case errors.Is(err, deduction.ErrActiveNameExists):
		Conflict(w, "An active deduction rule with this name already exists")

	// Payslip domain errors
	case errors.Is(err, payslip.ErrPayslipNotFound):
		NotFound(w, "Payslip not found")
	case errors.Is(err, payslip.ErrInvalidPeriod):
		BadRequest(w, "Pay period start must not be after pay period end", nil)
	case errors.Is(err, payslip.ErrEmployeeInactive):
		Conflict(w, "Employee is inactive")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
