package payslip

import (
	"testing"
	"time"

	"github.com/paydeck/payroll-backend-go/internal/domain/attendance"
	"github.com/paydeck/payroll-backend-go/internal/domain/deduction"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func day(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		t.Fatalf("bad test date %q: %v", s, err)
	}
	return d
}

func presentDay(t *testing.T, date string, hours, overtime string) attendance.Attendance {
	t.Helper()
	return attendance.Attendance{
		EmployeeID:    1,
		Date:          day(t, date),
		IsPresent:     true,
		HoursWorked:   decimal.RequireFromString(hours),
		OvertimeHours: decimal.RequireFromString(overtime),
	}
}

func percentageRule(name, value string) deduction.Rule {
	return deduction.Rule{Name: name, Kind: deduction.KindPercentage, Value: decimal.RequireFromString(value), IsActive: true}
}

func fixedRule(name, value string) deduction.Rule {
	return deduction.Rule{Name: name, Kind: deduction.KindFixed, Value: decimal.RequireFromString(value), IsActive: true}
}

func TestCalculate_WorkedExample(t *testing.T) {
	t.Parallel()

	// Monthly salary 5000, three present 8-hour days with 3 overtime hours
	// total, 1.5x overtime, one 15% rule and one fixed 100 rule.
	records := []attendance.Attendance{
		presentDay(t, "2024-01-01", "8", "1"),
		presentDay(t, "2024-01-02", "8", "1"),
		presentDay(t, "2024-01-03", "8", "1"),
	}
	rules := []deduction.Rule{
		percentageRule("Income Tax", "0.15"),
		fixedRule("Health Insurance", "100"),
	}

	calc := Calculate(decimal.NewFromInt(5000), records, rules, DefaultOvertimeRate)

	assert.Equal(t, 3, calc.WorkedDays)
	assert.Equal(t, "24.00", calc.RegularHours.StringFixed(2))
	assert.Equal(t, "3.00", calc.OvertimeHours.StringFixed(2))
	assert.Equal(t, "593.75", calc.GrossPay.StringFixed(2))
	assert.Equal(t, "189.06", calc.TotalDeductions.StringFixed(2))
	assert.Equal(t, "404.69", calc.NetPay.StringFixed(2))

	if assert.Len(t, calc.Lines, 2) {
		assert.Equal(t, "Income Tax", calc.Lines[0].Name)
		assert.Equal(t, deduction.KindPercentage, calc.Lines[0].Kind)
		assert.Equal(t, "89.06", calc.Lines[0].Amount.StringFixed(2))
		assert.Equal(t, "Health Insurance", calc.Lines[1].Name)
		assert.Equal(t, deduction.KindFixed, calc.Lines[1].Kind)
		assert.Equal(t, "100.00", calc.Lines[1].Amount.StringFixed(2))
	}
}

func TestCalculate_Invariants(t *testing.T) {
	t.Parallel()

	records := []attendance.Attendance{
		presentDay(t, "2024-03-04", "8", "0"),
		presentDay(t, "2024-03-05", "7.5", "2.25"),
	}
	rules := []deduction.Rule{
		percentageRule("Tax", "0.12"),
		fixedRule("Union Dues", "37.50"),
		percentageRule("Pension", "0.055"),
	}

	calc := Calculate(decimal.NewFromInt(4321), records, rules, decimal.NewFromInt(2))

	sum := decimal.Zero
	for _, line := range calc.Lines {
		sum = sum.Add(line.Amount)
	}
	assert.True(t, calc.TotalDeductions.Equal(sum), "total_deductions must equal sum of line amounts")
	assert.True(t, calc.NetPay.Equal(calc.GrossPay.Sub(calc.TotalDeductions)), "net_pay must equal gross_pay - total_deductions")
}

func TestCalculate_ZeroAttendance(t *testing.T) {
	t.Parallel()

	calc := Calculate(decimal.NewFromInt(5000), nil, []deduction.Rule{fixedRule("Health Insurance", "100")}, DefaultOvertimeRate)

	assert.Equal(t, 0, calc.WorkedDays)
	assert.Equal(t, "0.00", calc.RegularHours.StringFixed(2))
	assert.Equal(t, "0.00", calc.OvertimeHours.StringFixed(2))
	assert.Equal(t, "0.00", calc.GrossPay.StringFixed(2))
	// Fixed deductions still apply; negative net pay is valid output.
	assert.Equal(t, "100.00", calc.TotalDeductions.StringFixed(2))
	assert.Equal(t, "-100.00", calc.NetPay.StringFixed(2))
}

func TestCalculate_ZeroRules(t *testing.T) {
	t.Parallel()

	records := []attendance.Attendance{presentDay(t, "2024-01-01", "8", "0")}
	calc := Calculate(decimal.NewFromInt(3000), records, nil, DefaultOvertimeRate)

	assert.Equal(t, "0.00", calc.TotalDeductions.StringFixed(2))
	assert.True(t, calc.NetPay.Equal(calc.GrossPay), "net pay must equal gross pay with no active rules")
	assert.Empty(t, calc.Lines)
}

func TestCalculate_AbsentDaysExcluded(t *testing.T) {
	t.Parallel()

	absent := attendance.Attendance{
		EmployeeID:    1,
		Date:          day(t, "2024-01-02"),
		IsPresent:     false,
		HoursWorked:   decimal.NewFromInt(8),
		OvertimeHours: decimal.NewFromInt(4),
	}
	withAbsence := Calculate(decimal.NewFromInt(5000),
		[]attendance.Attendance{presentDay(t, "2024-01-01", "8", "1"), absent}, nil, DefaultOvertimeRate)
	without := Calculate(decimal.NewFromInt(5000),
		[]attendance.Attendance{presentDay(t, "2024-01-01", "8", "1")}, nil, DefaultOvertimeRate)

	assert.Equal(t, 1, withAbsence.WorkedDays)
	assert.True(t, withAbsence.RegularHours.Equal(without.RegularHours))
	assert.True(t, withAbsence.OvertimeHours.Equal(without.OvertimeHours))
	assert.True(t, withAbsence.GrossPay.Equal(without.GrossPay), "absent-day hours must never contribute to gross pay")
}

func TestCalculate_OvertimeRateScalesOnlyOvertime(t *testing.T) {
	t.Parallel()

	records := []attendance.Attendance{presentDay(t, "2024-01-01", "8", "0")}
	base := Calculate(decimal.NewFromInt(3000), records, nil, DefaultOvertimeRate)
	doubled := Calculate(decimal.NewFromInt(3000), records, nil, decimal.NewFromInt(3))

	// No overtime hours: the multiplier must not change gross pay.
	assert.True(t, base.GrossPay.Equal(doubled.GrossPay))

	withOT := []attendance.Attendance{presentDay(t, "2024-01-01", "8", "2")}
	at1 := Calculate(decimal.NewFromInt(3000), withOT, nil, decimal.NewFromInt(1))
	at2 := Calculate(decimal.NewFromInt(3000), withOT, nil, decimal.NewFromInt(2))

	// dailyRate = 100, hourlyRate = 12.5: 2 OT hours add 25 at 1x, 50 at 2x.
	assert.Equal(t, "125.00", at1.GrossPay.StringFixed(2))
	assert.Equal(t, "150.00", at2.GrossPay.StringFixed(2))
}

func TestComputeDeduction_PercentageAgainstGross(t *testing.T) {
	t.Parallel()

	gross := decimal.NewFromInt(1000)
	first := ComputeDeduction(gross, percentageRule("A", "0.10"))
	second := ComputeDeduction(gross, percentageRule("B", "0.10"))

	// Both lines are computed against the full gross, never the balance
	// after prior lines.
	assert.Equal(t, "100.00", first.Amount.StringFixed(2))
	assert.Equal(t, "100.00", second.Amount.StringFixed(2))
}

func TestComputeDeduction_FixedIgnoresGross(t *testing.T) {
	t.Parallel()

	rule := fixedRule("Parking", "45.50")
	atZero := ComputeDeduction(decimal.Zero, rule)
	atHigh := ComputeDeduction(decimal.NewFromInt(100000), rule)

	assert.Equal(t, "45.50", atZero.Amount.StringFixed(2))
	assert.Equal(t, "45.50", atHigh.Amount.StringFixed(2))
	assert.Equal(t, "45.5", atZero.Value.String())
}

func TestComputeDeduction_SnapshotsRuleFields(t *testing.T) {
	t.Parallel()

	rule := percentageRule("Income Tax", "0.15")
	line := ComputeDeduction(decimal.NewFromInt(2000), rule)

	assert.Equal(t, rule.Name, line.Name)
	assert.Equal(t, rule.Kind, line.Kind)
	assert.True(t, line.Value.Equal(rule.Value))
	assert.Equal(t, "300.00", line.Amount.StringFixed(2))
}
