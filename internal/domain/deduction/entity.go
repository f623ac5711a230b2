package deduction

import (
	"time"

	"github.com/shopspring/decimal"
)

// Kind enum
type Kind string

const (
	KindPercentage Kind = "percentage"
	KindFixed      Kind = "fixed"
)

// Rule is a named salary deduction policy. Percentage rules hold a fraction
// of gross pay (0.15 for 15%), fixed rules hold a currency amount.
type Rule struct {
	ID          int64
	Name        string
	Kind        Kind
	Value       decimal.Decimal
	IsActive    bool
	Description *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
