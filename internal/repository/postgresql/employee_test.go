package postgresql

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/paydeck/payroll-backend-go/internal/domain/employee"
	"github.com/shopspring/decimal"
)

func TestScanEmployee_NoRows(t *testing.T) {
	t.Parallel()

	row := stubRow{scanFn: func(dest ...interface{}) error {
		return pgx.ErrNoRows
	}}

	_, err := scanEmployee(row)
	if !errors.Is(err, employee.ErrEmployeeNotFound) {
		t.Fatalf("expected ErrEmployeeNotFound, got %v", err)
	}
}

func TestTranslateEmployeePgError(t *testing.T) {
	t.Parallel()

	badgeErr := &pgconn.PgError{Code: uniqueViolationCode, ConstraintName: "employees_badge_number_key"}
	if !errors.Is(translateEmployeePgError(badgeErr), employee.ErrBadgeNumberExists) {
		t.Fatalf("expected badge violation to map to ErrBadgeNumberExists")
	}

	emailErr := &pgconn.PgError{Code: uniqueViolationCode, ConstraintName: "employees_email_key"}
	if !errors.Is(translateEmployeePgError(emailErr), employee.ErrEmailExists) {
		t.Fatalf("expected email violation to map to ErrEmailExists")
	}

	other := errors.New("other")
	if translateEmployeePgError(other) != other {
		t.Fatalf("unexpected translation for generic error")
	}
}

func TestEmployeeRepository_Create_Success(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	repo := NewEmployeeRepository(mock)

	hireDate := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	now := time.Now().UTC()
	salary := decimal.RequireFromString("5000")

	rows := pgxmock.NewRows([]string{
		"id", "badge_number", "first_name", "last_name", "email", "phone",
		"department", "position", "monthly_salary", "hire_date", "is_active",
		"created_at", "updated_at",
	}).AddRow(
		int64(1), "EMP-001", "Ada", "Lovelace", "ada@example.com", nil,
		"Engineering", "Engineer", "5000", hireDate, true, now, now,
	)

	mock.ExpectQuery("INSERT INTO employees").
		WithArgs("EMP-001", "Ada", "Lovelace", "ada@example.com", (*string)(nil),
			"Engineering", "Engineer", salary, hireDate, true).
		WillReturnRows(rows)

	created, err := repo.Create(context.Background(), employee.Employee{
		BadgeNumber:   "EMP-001",
		FirstName:     "Ada",
		LastName:      "Lovelace",
		Email:         "ada@example.com",
		Department:    "Engineering",
		Position:      "Engineer",
		MonthlySalary: salary,
		HireDate:      hireDate,
		IsActive:      true,
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	if created.ID != 1 {
		t.Fatalf("expected id 1, got %d", created.ID)
	}
	if created.MonthlySalary.StringFixed(2) != "5000.00" {
		t.Fatalf("expected salary 5000.00, got %s", created.MonthlySalary.StringFixed(2))
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestEmployeeRepository_Deactivate_NotFound(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	repo := NewEmployeeRepository(mock)

	mock.ExpectQuery("UPDATE employees SET is_active = false").
		WithArgs(int64(5)).
		WillReturnError(pgx.ErrNoRows)

	err = repo.Deactivate(context.Background(), 5)
	if !errors.Is(err, employee.ErrEmployeeNotFound) {
		t.Fatalf("expected ErrEmployeeNotFound, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
