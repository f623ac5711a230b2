package postgresql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/paydeck/payroll-backend-go/internal/domain/payslip"
	"github.com/paydeck/payroll-backend-go/internal/pkg/database"
)

type payslipRepository struct {
	db database.Querier
}

func NewPayslipRepository(db database.Querier) payslip.PayslipRepository {
	return &payslipRepository{db: db}
}

const payslipColumns = `id, employee_id, pay_period_start, pay_period_end, gross_pay,
	total_deductions, net_pay, regular_hours, overtime_hours, overtime_rate,
	deductions, generated_at`

func scanPayslip(row pgx.Row) (payslip.Payslip, error) {
	var p payslip.Payslip
	var deductionsJSON []byte
	err := row.Scan(
		&p.ID, &p.EmployeeID, &p.PayPeriodStart, &p.PayPeriodEnd, &p.GrossPay,
		&p.TotalDeductions, &p.NetPay, &p.RegularHours, &p.OvertimeHours,
		&p.OvertimeRate, &deductionsJSON, &p.GeneratedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payslip.Payslip{}, payslip.ErrPayslipNotFound
		}
		return payslip.Payslip{}, err
	}

	if err := json.Unmarshal(deductionsJSON, &p.Deductions); err != nil {
		return payslip.Payslip{}, fmt.Errorf("failed to decode deduction lines: %w", err)
	}
	if p.Deductions == nil {
		p.Deductions = []payslip.DeductionLine{}
	}
	return p, nil
}

// Create inserts a new payslip row. There is no corresponding update or
// delete: the table is append-only and regeneration inserts a new row.
func (r *payslipRepository) Create(ctx context.Context, slip payslip.Payslip) (payslip.Payslip, error) {
	deductionsJSON, err := json.Marshal(slip.Deductions)
	if err != nil {
		return payslip.Payslip{}, fmt.Errorf("failed to encode deduction lines: %w", err)
	}

	query := `
		INSERT INTO payslips (employee_id, pay_period_start, pay_period_end, gross_pay,
			total_deductions, net_pay, regular_hours, overtime_hours, overtime_rate, deductions)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING ` + payslipColumns

	created, err := scanPayslip(r.db.QueryRow(ctx, query,
		slip.EmployeeID, slip.PayPeriodStart, slip.PayPeriodEnd, slip.GrossPay,
		slip.TotalDeductions, slip.NetPay, slip.RegularHours, slip.OvertimeHours,
		slip.OvertimeRate, deductionsJSON,
	))
	if err != nil {
		return payslip.Payslip{}, fmt.Errorf("failed to create payslip: %w", err)
	}

	return created, nil
}

func (r *payslipRepository) GetByID(ctx context.Context, id int64) (payslip.Payslip, error) {
	query := `SELECT ` + payslipColumns + ` FROM payslips WHERE id = $1`

	p, err := scanPayslip(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, payslip.ErrPayslipNotFound) {
			return payslip.Payslip{}, err
		}
		return payslip.Payslip{}, fmt.Errorf("failed to get payslip: %w", err)
	}
	return p, nil
}

func (r *payslipRepository) List(ctx context.Context, filter payslip.PayslipFilter) ([]payslip.Payslip, error) {
	conditions := []string{}
	args := []interface{}{}
	argIdx := 1

	if filter.EmployeeID != nil {
		conditions = append(conditions, fmt.Sprintf("employee_id = $%d", argIdx))
		args = append(args, *filter.EmployeeID)
		argIdx++
	}
	if filter.StartDate != nil {
		conditions = append(conditions, fmt.Sprintf("pay_period_start >= $%d", argIdx))
		args = append(args, *filter.StartDate)
		argIdx++
	}
	if filter.EndDate != nil {
		conditions = append(conditions, fmt.Sprintf("pay_period_end <= $%d", argIdx))
		args = append(args, *filter.EndDate)
		argIdx++
	}

	query := `SELECT ` + payslipColumns + ` FROM payslips`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY generated_at DESC"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list payslips: %w", err)
	}
	defer rows.Close()

	var slips []payslip.Payslip
	for rows.Next() {
		p, err := scanPayslip(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payslip: %w", err)
		}
		slips = append(slips, p)
	}

	return slips, rows.Err()
}
