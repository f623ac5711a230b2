package attendance

import (
	"context"
	"time"

	"github.com/paydeck/payroll-backend-go/internal/domain/attendance"
	"github.com/paydeck/payroll-backend-go/internal/domain/employee"
	"github.com/paydeck/payroll-backend-go/internal/pkg/validator"
)

type AttendanceServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
	}
}

func (s *AttendanceServiceImpl) Create(ctx context.Context, req attendance.CreateAttendanceRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	// The attendance row references the employee; reject unknown ids with
	// the employee sentinel instead of a bare FK violation.
	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	date, _ := validator.IsValidDate(req.Date)

	created, err := s.attendanceRepo.Create(ctx, attendance.Attendance{
		EmployeeID:    req.EmployeeID,
		Date:          date,
		IsPresent:     req.IsPresent,
		HoursWorked:   req.HoursWorked,
		OvertimeHours: req.OvertimeHours,
		Notes:         req.Notes,
	})
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return mapToResponse(created), nil
}

func (s *AttendanceServiceImpl) Update(ctx context.Context, req attendance.UpdateAttendanceRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	updated, err := s.attendanceRepo.Update(ctx, req)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return mapToResponse(updated), nil
}

func (s *AttendanceServiceImpl) List(ctx context.Context, filter attendance.AttendanceFilter) ([]attendance.AttendanceResponse, error) {
	// With no date bounds the listing defaults to the last 30 days.
	if filter.StartDate == nil && filter.EndDate == nil {
		thirtyDaysAgo := time.Now().AddDate(0, 0, -30)
		filter.StartDate = &thirtyDaysAgo
	}

	records, err := s.attendanceRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	result := make([]attendance.AttendanceResponse, 0, len(records))
	for _, record := range records {
		result = append(result, mapToResponse(record))
	}
	return result, nil
}

func mapToResponse(record attendance.Attendance) attendance.AttendanceResponse {
	return attendance.AttendanceResponse{
		ID:            record.ID,
		EmployeeID:    record.EmployeeID,
		Date:          record.Date.Format("2006-01-02"),
		IsPresent:     record.IsPresent,
		HoursWorked:   record.HoursWorked,
		OvertimeHours: record.OvertimeHours,
		Notes:         record.Notes,
	}
}
