package payslip

import "errors"

var (
	ErrInvalidPeriod    = errors.New("pay period start date cannot be after end date")
	ErrEmployeeInactive = errors.New("employee is not active")
	ErrPayslipNotFound  = errors.New("payslip not found")
)
