package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type Employee struct {
	ID            int64
	BadgeNumber   string
	FirstName     string
	LastName      string
	Email         string
	Phone         *string
	Department    string
	Position      string
	MonthlySalary decimal.Decimal
	HireDate      time.Time
	IsActive      bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
