package payslip

import "context"

// PayslipService defines payslip generation and read access
type PayslipService interface {
	// Generate computes and persists one payslip for an employee and pay
	// period. Repeated calls with the same input produce independent rows.
	Generate(ctx context.Context, req GeneratePayslipRequest) (PayslipResponse, error)

	Get(ctx context.Context, id int64) (PayslipResponse, error)
	List(ctx context.Context, filter PayslipFilter) ([]PayslipResponse, error)
}
