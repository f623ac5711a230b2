package deduction

import "context"

type RuleRepository interface {
	Create(ctx context.Context, rule Rule) (Rule, error)
	GetByID(ctx context.Context, id int64) (Rule, error)
	Update(ctx context.Context, req UpdateRuleRequest) (Rule, error)

	// List retrieves rules ordered by id. The stable order makes deduction
	// lines on generated payslips deterministic.
	List(ctx context.Context, activeOnly bool) ([]Rule, error)

	// ExistsActiveName reports whether an active rule other than excludeID
	// already uses the given name.
	ExistsActiveName(ctx context.Context, name string, excludeID int64) (bool, error)
}
