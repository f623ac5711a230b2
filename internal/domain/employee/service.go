package employee

import "context"

// EmployeeService defines business logic for employee records
type EmployeeService interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	Get(ctx context.Context, id int64) (EmployeeResponse, error)
	List(ctx context.Context) ([]EmployeeResponse, error)
	Update(ctx context.Context, req UpdateEmployeeRequest) (EmployeeResponse, error)

	// Deactivate soft-deletes an employee; payslips and attendance history survive.
	Deactivate(ctx context.Context, id int64) error
}
