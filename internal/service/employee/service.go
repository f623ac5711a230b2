package employee

import (
	"context"

	"github.com/paydeck/payroll-backend-go/internal/domain/employee"
	"github.com/paydeck/payroll-backend-go/internal/pkg/validator"
)

type EmployeeServiceImpl struct {
	employeeRepo employee.EmployeeRepository
}

func NewEmployeeService(employeeRepo employee.EmployeeRepository) employee.EmployeeService {
	return &EmployeeServiceImpl{employeeRepo: employeeRepo}
}

func (s *EmployeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	hireDate, _ := validator.IsValidDate(req.HireDate)

	created, err := s.employeeRepo.Create(ctx, employee.Employee{
		BadgeNumber:   req.BadgeNumber,
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		Email:         req.Email,
		Phone:         req.Phone,
		Department:    req.Department,
		Position:      req.Position,
		MonthlySalary: req.MonthlySalary,
		HireDate:      hireDate,
		IsActive:      true,
	})
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return mapToResponse(created), nil
}

func (s *EmployeeServiceImpl) Get(ctx context.Context, id int64) (employee.EmployeeResponse, error) {
	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return mapToResponse(emp), nil
}

func (s *EmployeeServiceImpl) List(ctx context.Context) ([]employee.EmployeeResponse, error) {
	employees, err := s.employeeRepo.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		result = append(result, mapToResponse(emp))
	}
	return result, nil
}

func (s *EmployeeServiceImpl) Update(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	updated, err := s.employeeRepo.Update(ctx, req)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return mapToResponse(updated), nil
}

func (s *EmployeeServiceImpl) Deactivate(ctx context.Context, id int64) error {
	return s.employeeRepo.Deactivate(ctx, id)
}

func mapToResponse(emp employee.Employee) employee.EmployeeResponse {
	return employee.EmployeeResponse{
		ID:            emp.ID,
		BadgeNumber:   emp.BadgeNumber,
		FirstName:     emp.FirstName,
		LastName:      emp.LastName,
		Email:         emp.Email,
		Phone:         emp.Phone,
		Department:    emp.Department,
		Position:      emp.Position,
		MonthlySalary: emp.MonthlySalary,
		HireDate:      emp.HireDate.Format("2006-01-02"),
		IsActive:      emp.IsActive,
	}
}
