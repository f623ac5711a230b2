package payslip

import "context"

// PayslipRepository is append-only: payslips are created once and never
// updated or deleted.
type PayslipRepository interface {
	Create(ctx context.Context, slip Payslip) (Payslip, error)
	GetByID(ctx context.Context, id int64) (Payslip, error)

	// List retrieves payslips matching the filter, newest generation first.
	List(ctx context.Context, filter PayslipFilter) ([]Payslip, error)
}
