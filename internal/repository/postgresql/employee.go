package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/paydeck/payroll-backend-go/internal/domain/employee"
	"github.com/paydeck/payroll-backend-go/internal/pkg/database"
	"github.com/paydeck/payroll-backend-go/internal/pkg/validator"
)

const uniqueViolationCode = "23505"

type employeeRepository struct {
	db database.Querier
}

func NewEmployeeRepository(db database.Querier) employee.EmployeeRepository {
	return &employeeRepository{db: db}
}

const employeeColumns = `id, badge_number, first_name, last_name, email, phone,
	department, position, monthly_salary, hire_date, is_active, created_at, updated_at`

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var e employee.Employee
	err := row.Scan(
		&e.ID, &e.BadgeNumber, &e.FirstName, &e.LastName, &e.Email, &e.Phone,
		&e.Department, &e.Position, &e.MonthlySalary, &e.HireDate, &e.IsActive,
		&e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, err
	}
	return e, nil
}

// translateEmployeePgError maps unique violations on the employees table to
// domain sentinels.
func translateEmployeePgError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
		switch {
		case strings.Contains(pgErr.ConstraintName, "badge_number"):
			return employee.ErrBadgeNumberExists
		case strings.Contains(pgErr.ConstraintName, "email"):
			return employee.ErrEmailExists
		}
	}
	return err
}

func (r *employeeRepository) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	query := `
		INSERT INTO employees (badge_number, first_name, last_name, email, phone,
			department, position, monthly_salary, hire_date, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING ` + employeeColumns

	created, err := scanEmployee(r.db.QueryRow(ctx, query,
		newEmployee.BadgeNumber, newEmployee.FirstName, newEmployee.LastName,
		newEmployee.Email, newEmployee.Phone, newEmployee.Department,
		newEmployee.Position, newEmployee.MonthlySalary, newEmployee.HireDate,
		newEmployee.IsActive,
	))
	if err != nil {
		if translated := translateEmployeePgError(err); translated != err {
			return employee.Employee{}, translated
		}
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return created, nil
}

func (r *employeeRepository) GetByID(ctx context.Context, id int64) (employee.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE id = $1`

	e, err := scanEmployee(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return employee.Employee{}, err
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}
	return e, nil
}

func (r *employeeRepository) ListActive(ctx context.Context) ([]employee.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE is_active = true ORDER BY id`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, e)
	}

	return employees, rows.Err()
}

func (r *employeeRepository) Update(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.Employee, error) {
	setParts := []string{"updated_at = NOW()"}
	args := []interface{}{req.ID}
	argIdx := 2

	appendSet := func(column string, value interface{}) {
		setParts = append(setParts, fmt.Sprintf("%s = $%d", column, argIdx))
		args = append(args, value)
		argIdx++
	}

	if req.BadgeNumber != nil {
		appendSet("badge_number", *req.BadgeNumber)
	}
	if req.FirstName != nil {
		appendSet("first_name", *req.FirstName)
	}
	if req.LastName != nil {
		appendSet("last_name", *req.LastName)
	}
	if req.Email != nil {
		appendSet("email", *req.Email)
	}
	if req.Phone != nil {
		appendSet("phone", *req.Phone)
	}
	if req.Department != nil {
		appendSet("department", *req.Department)
	}
	if req.Position != nil {
		appendSet("position", *req.Position)
	}
	if req.MonthlySalary != nil {
		appendSet("monthly_salary", *req.MonthlySalary)
	}
	if req.HireDate != nil {
		hireDate, _ := validator.IsValidDate(*req.HireDate)
		appendSet("hire_date", hireDate)
	}
	if req.IsActive != nil {
		appendSet("is_active", *req.IsActive)
	}

	query := fmt.Sprintf(`
		UPDATE employees
		SET %s
		WHERE id = $1
		RETURNING `+employeeColumns, strings.Join(setParts, ", "))

	updated, err := scanEmployee(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return employee.Employee{}, err
		}
		if translated := translateEmployeePgError(err); translated != err {
			return employee.Employee{}, translated
		}
		return employee.Employee{}, fmt.Errorf("failed to update employee: %w", err)
	}

	return updated, nil
}

func (r *employeeRepository) Deactivate(ctx context.Context, id int64) error {
	query := `UPDATE employees SET is_active = false, updated_at = NOW() WHERE id = $1 RETURNING id`

	var deactivatedID int64
	err := r.db.QueryRow(ctx, query, id).Scan(&deactivatedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.ErrEmployeeNotFound
		}
		return fmt.Errorf("failed to deactivate employee: %w", err)
	}

	return nil
}
