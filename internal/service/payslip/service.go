package payslip

import (
	"context"
	"fmt"
	"time"

	"github.com/paydeck/payroll-backend-go/internal/domain/attendance"
	"github.com/paydeck/payroll-backend-go/internal/domain/deduction"
	"github.com/paydeck/payroll-backend-go/internal/domain/employee"
	"github.com/paydeck/payroll-backend-go/internal/domain/payslip"
)

type PayslipServiceImpl struct {
	payslipRepo    payslip.PayslipRepository
	employeeRepo   employee.EmployeeRepository
	attendanceRepo attendance.AttendanceRepository
	deductionRepo  deduction.RuleRepository
}

func NewPayslipService(
	payslipRepo payslip.PayslipRepository,
	employeeRepo employee.EmployeeRepository,
	attendanceRepo attendance.AttendanceRepository,
	deductionRepo deduction.RuleRepository,
) payslip.PayslipService {
	return &PayslipServiceImpl{
		payslipRepo:    payslipRepo,
		employeeRepo:   employeeRepo,
		attendanceRepo: attendanceRepo,
		deductionRepo:  deductionRepo,
	}
}

func (s *PayslipServiceImpl) Generate(ctx context.Context, req payslip.GeneratePayslipRequest) (payslip.PayslipResponse, error) {
	if err := req.Validate(); err != nil {
		return payslip.PayslipResponse{}, err
	}

	// Validate already checked the date format.
	start, _ := time.Parse("2006-01-02", req.PayPeriodStart)
	end, _ := time.Parse("2006-01-02", req.PayPeriodEnd)

	if start.After(end) {
		return payslip.PayslipResponse{}, s.wrap(req.EmployeeID, start, end, payslip.ErrInvalidPeriod)
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return payslip.PayslipResponse{}, s.wrap(req.EmployeeID, start, end, err)
	}
	if !emp.IsActive {
		return payslip.PayslipResponse{}, s.wrap(req.EmployeeID, start, end, payslip.ErrEmployeeInactive)
	}

	overtimeRate := payslip.DefaultOvertimeRate
	if req.OvertimeRate != nil {
		overtimeRate = *req.OvertimeRate
	}

	records, err := s.attendanceRepo.ListForPeriod(ctx, emp.ID, start, end)
	if err != nil {
		return payslip.PayslipResponse{}, s.wrap(req.EmployeeID, start, end, fmt.Errorf("fetch attendance: %w", err))
	}

	// Live snapshot of the active rules; a rule toggled mid-request may or
	// may not be included, but the persisted lines stay self-consistent.
	rules, err := s.deductionRepo.List(ctx, true)
	if err != nil {
		return payslip.PayslipResponse{}, s.wrap(req.EmployeeID, start, end, fmt.Errorf("fetch deduction rules: %w", err))
	}

	calc := payslip.Calculate(emp.MonthlySalary, records, rules, overtimeRate)

	created, err := s.payslipRepo.Create(ctx, payslip.Payslip{
		EmployeeID:      emp.ID,
		PayPeriodStart:  start,
		PayPeriodEnd:    end,
		GrossPay:        calc.GrossPay,
		TotalDeductions: calc.TotalDeductions,
		NetPay:          calc.NetPay,
		RegularHours:    calc.RegularHours,
		OvertimeHours:   calc.OvertimeHours,
		OvertimeRate:    overtimeRate,
		Deductions:      calc.Lines,
	})
	if err != nil {
		return payslip.PayslipResponse{}, s.wrap(req.EmployeeID, start, end, fmt.Errorf("save payslip: %w", err))
	}

	return mapToResponse(created), nil
}

func (s *PayslipServiceImpl) Get(ctx context.Context, id int64) (payslip.PayslipResponse, error) {
	slip, err := s.payslipRepo.GetByID(ctx, id)
	if err != nil {
		return payslip.PayslipResponse{}, err
	}
	return mapToResponse(slip), nil
}

func (s *PayslipServiceImpl) List(ctx context.Context, filter payslip.PayslipFilter) ([]payslip.PayslipResponse, error) {
	// Unfiltered listings default to pay periods starting in the last six
	// months.
	if filter.StartDate == nil && filter.EndDate == nil && filter.EmployeeID == nil {
		sixMonthsAgo := time.Now().AddDate(0, -6, 0)
		filter.StartDate = &sixMonthsAgo
	}

	slips, err := s.payslipRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	result := make([]payslip.PayslipResponse, 0, len(slips))
	for _, slip := range slips {
		result = append(result, mapToResponse(slip))
	}
	return result, nil
}

// wrap attaches the failing request's identity so the caller can reconstruct
// it; errors.Is on the domain sentinels still works through the wrapping.
func (s *PayslipServiceImpl) wrap(employeeID int64, start, end time.Time, err error) error {
	return fmt.Errorf("generate payslip for employee %d, period %s to %s: %w",
		employeeID, start.Format("2006-01-02"), end.Format("2006-01-02"), err)
}

func mapToResponse(slip payslip.Payslip) payslip.PayslipResponse {
	return payslip.PayslipResponse{
		ID:              slip.ID,
		EmployeeID:      slip.EmployeeID,
		PayPeriodStart:  slip.PayPeriodStart.Format("2006-01-02"),
		PayPeriodEnd:    slip.PayPeriodEnd.Format("2006-01-02"),
		GrossPay:        slip.GrossPay,
		TotalDeductions: slip.TotalDeductions,
		NetPay:          slip.NetPay,
		RegularHours:    slip.RegularHours,
		OvertimeHours:   slip.OvertimeHours,
		OvertimeRate:    slip.OvertimeRate,
		Deductions:      slip.Deductions,
		GeneratedAt:     slip.GeneratedAt.Format(time.RFC3339),
	}
}
