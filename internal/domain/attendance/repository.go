package attendance

import (
	"context"
	"time"
)

type AttendanceRepository interface {
	Create(ctx context.Context, record Attendance) (Attendance, error)
	GetByID(ctx context.Context, id int64) (Attendance, error)
	Update(ctx context.Context, req UpdateAttendanceRequest) (Attendance, error)

	// List retrieves records matching the filter, newest date first.
	List(ctx context.Context, filter AttendanceFilter) ([]Attendance, error)

	// ListForPeriod retrieves all records for one employee with
	// start <= date <= end. Used by payslip generation; must be exhaustive
	// over the inclusive range.
	ListForPeriod(ctx context.Context, employeeID int64, start, end time.Time) ([]Attendance, error)
}
