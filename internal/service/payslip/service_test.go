package payslip

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/paydeck/payroll-backend-go/internal/domain/attendance"
	"github.com/paydeck/payroll-backend-go/internal/domain/deduction"
	"github.com/paydeck/payroll-backend-go/internal/domain/employee"
	"github.com/paydeck/payroll-backend-go/internal/domain/payslip"
	"github.com/paydeck/payroll-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ===== FAKE COLLABORATORS =====

type fakeEmployeeRepo struct {
	employees map[int64]employee.Employee
}

func (f *fakeEmployeeRepo) Create(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	return e, nil
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id int64) (employee.Employee, error) {
	emp, ok := f.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

func (f *fakeEmployeeRepo) ListActive(ctx context.Context) ([]employee.Employee, error) {
	return nil, nil
}

func (f *fakeEmployeeRepo) Update(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) Deactivate(ctx context.Context, id int64) error {
	return nil
}

type fakeAttendanceRepo struct {
	records []attendance.Attendance
}

func (f *fakeAttendanceRepo) Create(ctx context.Context, r attendance.Attendance) (attendance.Attendance, error) {
	return r, nil
}

func (f *fakeAttendanceRepo) GetByID(ctx context.Context, id int64) (attendance.Attendance, error) {
	return attendance.Attendance{}, attendance.ErrAttendanceNotFound
}

func (f *fakeAttendanceRepo) Update(ctx context.Context, req attendance.UpdateAttendanceRequest) (attendance.Attendance, error) {
	return attendance.Attendance{}, attendance.ErrAttendanceNotFound
}

func (f *fakeAttendanceRepo) List(ctx context.Context, filter attendance.AttendanceFilter) ([]attendance.Attendance, error) {
	return f.records, nil
}

func (f *fakeAttendanceRepo) ListForPeriod(ctx context.Context, employeeID int64, start, end time.Time) ([]attendance.Attendance, error) {
	var result []attendance.Attendance
	for _, r := range f.records {
		if r.EmployeeID != employeeID {
			continue
		}
		if r.Date.Before(start) || r.Date.After(end) {
			continue
		}
		result = append(result, r)
	}
	return result, nil
}

type fakeDeductionRepo struct {
	rules []deduction.Rule
}

func (f *fakeDeductionRepo) Create(ctx context.Context, r deduction.Rule) (deduction.Rule, error) {
	return r, nil
}

func (f *fakeDeductionRepo) GetByID(ctx context.Context, id int64) (deduction.Rule, error) {
	return deduction.Rule{}, deduction.ErrRuleNotFound
}

func (f *fakeDeductionRepo) Update(ctx context.Context, req deduction.UpdateRuleRequest) (deduction.Rule, error) {
	return deduction.Rule{}, deduction.ErrRuleNotFound
}

func (f *fakeDeductionRepo) List(ctx context.Context, activeOnly bool) ([]deduction.Rule, error) {
	if !activeOnly {
		return f.rules, nil
	}
	var active []deduction.Rule
	for _, r := range f.rules {
		if r.IsActive {
			active = append(active, r)
		}
	}
	return active, nil
}

func (f *fakeDeductionRepo) ExistsActiveName(ctx context.Context, name string, excludeID int64) (bool, error) {
	return false, nil
}

type fakePayslipRepo struct {
	saved   []payslip.Payslip
	nextID  int64
	failure error
}

func (f *fakePayslipRepo) Create(ctx context.Context, slip payslip.Payslip) (payslip.Payslip, error) {
	if f.failure != nil {
		return payslip.Payslip{}, f.failure
	}
	f.nextID++
	slip.ID = f.nextID
	slip.GeneratedAt = time.Now()
	f.saved = append(f.saved, slip)
	return slip, nil
}

func (f *fakePayslipRepo) GetByID(ctx context.Context, id int64) (payslip.Payslip, error) {
	for _, slip := range f.saved {
		if slip.ID == id {
			return slip, nil
		}
	}
	return payslip.Payslip{}, payslip.ErrPayslipNotFound
}

func (f *fakePayslipRepo) List(ctx context.Context, filter payslip.PayslipFilter) ([]payslip.Payslip, error) {
	return f.saved, nil
}

// ===== FIXTURES =====

func activeEmployee(id int64, salary int64) employee.Employee {
	return employee.Employee{
		ID:            id,
		BadgeNumber:   "EMP-001",
		FirstName:     "Dana",
		LastName:      "Reyes",
		Email:         "dana.reyes@example.com",
		Department:    "Engineering",
		Position:      "Developer",
		MonthlySalary: decimal.NewFromInt(salary),
		IsActive:      true,
	}
}

func presentRecord(employeeID int64, date string, hours, overtime string) attendance.Attendance {
	d, _ := time.Parse("2006-01-02", date)
	return attendance.Attendance{
		EmployeeID:    employeeID,
		Date:          d,
		IsPresent:     true,
		HoursWorked:   decimal.RequireFromString(hours),
		OvertimeHours: decimal.RequireFromString(overtime),
	}
}

func newService(employees *fakeEmployeeRepo, att *fakeAttendanceRepo, ded *fakeDeductionRepo, slips *fakePayslipRepo) payslip.PayslipService {
	return NewPayslipService(slips, employees, att, ded)
}

// ===== GENERATE TESTS =====

func TestGenerate_Success(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	employees := &fakeEmployeeRepo{employees: map[int64]employee.Employee{1: activeEmployee(1, 5000)}}
	att := &fakeAttendanceRepo{records: []attendance.Attendance{
		presentRecord(1, "2024-01-01", "8", "1"),
		presentRecord(1, "2024-01-02", "8", "1"),
		presentRecord(1, "2024-01-03", "8", "1"),
	}}
	ded := &fakeDeductionRepo{rules: []deduction.Rule{
		{ID: 1, Name: "Income Tax", Kind: deduction.KindPercentage, Value: decimal.RequireFromString("0.15"), IsActive: true},
		{ID: 2, Name: "Health Insurance", Kind: deduction.KindFixed, Value: decimal.NewFromInt(100), IsActive: true},
	}}
	slips := &fakePayslipRepo{}

	svc := newService(employees, att, ded, slips)

	result, err := svc.Generate(ctx, payslip.GeneratePayslipRequest{
		EmployeeID:     1,
		PayPeriodStart: "2024-01-01",
		PayPeriodEnd:   "2024-01-31",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), result.EmployeeID)
	assert.Equal(t, "593.75", result.GrossPay.StringFixed(2))
	assert.Equal(t, "189.06", result.TotalDeductions.StringFixed(2))
	assert.Equal(t, "404.69", result.NetPay.StringFixed(2))
	assert.Equal(t, "1.50", result.OvertimeRate.StringFixed(2))
	require.Len(t, result.Deductions, 2)
	assert.Equal(t, "Income Tax", result.Deductions[0].Name)
	assert.Equal(t, "Health Insurance", result.Deductions[1].Name)
	assert.Len(t, slips.saved, 1)
}

func TestGenerate_InvalidPeriod(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	employees := &fakeEmployeeRepo{employees: map[int64]employee.Employee{1: activeEmployee(1, 5000)}}
	slips := &fakePayslipRepo{}
	svc := newService(employees, &fakeAttendanceRepo{}, &fakeDeductionRepo{}, slips)

	_, err := svc.Generate(ctx, payslip.GeneratePayslipRequest{
		EmployeeID:     1,
		PayPeriodStart: "2024-02-01",
		PayPeriodEnd:   "2024-01-01",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, payslip.ErrInvalidPeriod)
	assert.Empty(t, slips.saved)
}

func TestGenerate_SingleDayPeriod(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	employees := &fakeEmployeeRepo{employees: map[int64]employee.Employee{1: activeEmployee(1, 3000)}}
	att := &fakeAttendanceRepo{records: []attendance.Attendance{presentRecord(1, "2024-01-15", "8", "0")}}
	slips := &fakePayslipRepo{}
	svc := newService(employees, att, &fakeDeductionRepo{}, slips)

	result, err := svc.Generate(ctx, payslip.GeneratePayslipRequest{
		EmployeeID:     1,
		PayPeriodStart: "2024-01-15",
		PayPeriodEnd:   "2024-01-15",
	})

	// start == end is a valid one-day period, not an empty one.
	require.NoError(t, err)
	assert.Equal(t, "100.00", result.GrossPay.StringFixed(2))
}

func TestGenerate_EmployeeNotFound(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	slips := &fakePayslipRepo{}
	svc := newService(&fakeEmployeeRepo{employees: map[int64]employee.Employee{}}, &fakeAttendanceRepo{}, &fakeDeductionRepo{}, slips)

	_, err := svc.Generate(ctx, payslip.GeneratePayslipRequest{
		EmployeeID:     9999,
		PayPeriodStart: "2024-01-01",
		PayPeriodEnd:   "2024-01-31",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
	assert.Empty(t, slips.saved, "no payslip row may be written for an unknown employee")
}

func TestGenerate_EmployeeInactive(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	inactive := activeEmployee(1, 5000)
	inactive.IsActive = false
	slips := &fakePayslipRepo{}
	svc := newService(&fakeEmployeeRepo{employees: map[int64]employee.Employee{1: inactive}}, &fakeAttendanceRepo{}, &fakeDeductionRepo{}, slips)

	_, err := svc.Generate(ctx, payslip.GeneratePayslipRequest{
		EmployeeID:     1,
		PayPeriodStart: "2024-01-01",
		PayPeriodEnd:   "2024-01-31",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, payslip.ErrEmployeeInactive)
	assert.Empty(t, slips.saved)
}

func TestGenerate_NonPositiveOvertimeRate(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	employees := &fakeEmployeeRepo{employees: map[int64]employee.Employee{1: activeEmployee(1, 5000)}}
	svc := newService(employees, &fakeAttendanceRepo{}, &fakeDeductionRepo{}, &fakePayslipRepo{})

	zero := decimal.Zero
	_, err := svc.Generate(ctx, payslip.GeneratePayslipRequest{
		EmployeeID:     1,
		PayPeriodStart: "2024-01-01",
		PayPeriodEnd:   "2024-01-31",
		OvertimeRate:   &zero,
	})

	require.Error(t, err)
	var verrs validator.ValidationErrors
	assert.ErrorAs(t, err, &verrs)
}

func TestGenerate_DefaultOvertimeRate(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	employees := &fakeEmployeeRepo{employees: map[int64]employee.Employee{1: activeEmployee(1, 5000)}}
	att := &fakeAttendanceRepo{records: []attendance.Attendance{presentRecord(1, "2024-01-01", "8", "2")}}
	svc := newService(employees, att, &fakeDeductionRepo{}, &fakePayslipRepo{})

	result, err := svc.Generate(ctx, payslip.GeneratePayslipRequest{
		EmployeeID:     1,
		PayPeriodStart: "2024-01-01",
		PayPeriodEnd:   "2024-01-31",
	})

	require.NoError(t, err)
	assert.Equal(t, "1.50", result.OvertimeRate.StringFixed(2))
}

func TestGenerate_RepeatedCallsCoexist(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	employees := &fakeEmployeeRepo{employees: map[int64]employee.Employee{1: activeEmployee(1, 5000)}}
	att := &fakeAttendanceRepo{records: []attendance.Attendance{presentRecord(1, "2024-01-01", "8", "0")}}
	slips := &fakePayslipRepo{}
	svc := newService(employees, att, &fakeDeductionRepo{}, slips)

	req := payslip.GeneratePayslipRequest{
		EmployeeID:     1,
		PayPeriodStart: "2024-01-01",
		PayPeriodEnd:   "2024-01-31",
	}

	first, err := svc.Generate(ctx, req)
	require.NoError(t, err)
	second, err := svc.Generate(ctx, req)
	require.NoError(t, err)

	// Identical math, independent storage: no dedup on (employee, period).
	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, first.GrossPay.String(), second.GrossPay.String())
	assert.Equal(t, first.NetPay.String(), second.NetPay.String())
	assert.Len(t, slips.saved, 2)
}

func TestGenerate_PersistFailureReturnsNoPayslip(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	employees := &fakeEmployeeRepo{employees: map[int64]employee.Employee{1: activeEmployee(1, 5000)}}
	storeErr := errors.New("connection refused")
	slips := &fakePayslipRepo{failure: storeErr}
	svc := newService(employees, &fakeAttendanceRepo{}, &fakeDeductionRepo{}, slips)

	result, err := svc.Generate(ctx, payslip.GeneratePayslipRequest{
		EmployeeID:     1,
		PayPeriodStart: "2024-01-01",
		PayPeriodEnd:   "2024-01-31",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, storeErr)
	assert.Zero(t, result.ID, "a failed persist must not hand a payslip back to the caller")
}
