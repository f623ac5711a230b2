package attendance

import (
	"time"

	"github.com/shopspring/decimal"
)

// Attendance is one employee's record for one calendar day.
// At most one record exists per (employee, date).
type Attendance struct {
	ID            int64
	EmployeeID    int64
	Date          time.Time
	IsPresent     bool
	HoursWorked   decimal.Decimal
	OvertimeHours decimal.Decimal
	Notes         *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
