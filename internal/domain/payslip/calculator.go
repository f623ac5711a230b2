package payslip

import (
	"github.com/paydeck/payroll-backend-go/internal/domain/attendance"
	"github.com/paydeck/payroll-backend-go/internal/domain/deduction"
	"github.com/shopspring/decimal"
)

// Pro-rating conventions. The daily rate is always monthly salary / 30
// regardless of the calendar month, and the hourly rate assumes an 8-hour
// standard workday.
const (
	DaysPerMonth = 30
	HoursPerDay  = 8
)

// DefaultOvertimeRate multiplies the hourly rate for overtime hours when
// the caller does not specify a rate.
var DefaultOvertimeRate = decimal.NewFromFloat(1.5)

// moneyScale is the precision of the stored currency columns. All monetary
// results are rounded to it exactly once, inside Calculate.
const moneyScale = 2

// Calculation is the computed payroll breakdown for one employee and period,
// before persistence.
type Calculation struct {
	WorkedDays      int
	RegularHours    decimal.Decimal
	OvertimeHours   decimal.Decimal
	GrossPay        decimal.Decimal
	TotalDeductions decimal.Decimal
	NetPay          decimal.Decimal
	Lines           []DeductionLine
}

// Calculate turns a monthly salary, a period's attendance records and the
// active deduction rules into a gross/net breakdown.
//
// Only records with IsPresent contribute to any total; an absent day's hours
// fields are ignored entirely. Deduction lines keep the rule slice order.
// Net pay may be negative: fixed deductions still apply at zero gross, and a
// negative result is an operational signal for downstream review, not an
// error.
func Calculate(monthlySalary decimal.Decimal, records []attendance.Attendance, rules []deduction.Rule, overtimeRate decimal.Decimal) Calculation {
	dailyRate := monthlySalary.Div(decimal.NewFromInt(DaysPerMonth))
	hourlyRate := dailyRate.Div(decimal.NewFromInt(HoursPerDay))

	calc := Calculation{
		RegularHours:  decimal.Zero,
		OvertimeHours: decimal.Zero,
	}
	for _, record := range records {
		if !record.IsPresent {
			continue
		}
		calc.WorkedDays++
		calc.RegularHours = calc.RegularHours.Add(record.HoursWorked)
		calc.OvertimeHours = calc.OvertimeHours.Add(record.OvertimeHours)
	}

	basePay := dailyRate.Mul(decimal.NewFromInt(int64(calc.WorkedDays)))
	overtimePay := calc.OvertimeHours.Mul(hourlyRate).Mul(overtimeRate)
	calc.GrossPay = basePay.Add(overtimePay).Round(moneyScale)

	calc.TotalDeductions = decimal.Zero
	calc.Lines = make([]DeductionLine, 0, len(rules))
	for _, rule := range rules {
		line := ComputeDeduction(calc.GrossPay, rule)
		calc.TotalDeductions = calc.TotalDeductions.Add(line.Amount)
		calc.Lines = append(calc.Lines, line)
	}

	calc.NetPay = calc.GrossPay.Sub(calc.TotalDeductions)
	return calc
}

// ComputeDeduction applies a single rule to a gross pay amount. Percentage
// rules are always computed against the full gross pay, never against a
// partially deducted balance, so rules stack additively in any order.
func ComputeDeduction(grossPay decimal.Decimal, rule deduction.Rule) DeductionLine {
	var amount decimal.Decimal
	if rule.Kind == deduction.KindPercentage {
		amount = grossPay.Mul(rule.Value)
	} else {
		amount = rule.Value
	}

	return DeductionLine{
		Name:   rule.Name,
		Kind:   rule.Kind,
		Value:  rule.Value,
		Amount: amount.Round(moneyScale),
	}
}
