package deduction

import (
	"github.com/paydeck/payroll-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateRuleRequest struct {
	Name        string          `json:"name"`
	Kind        string          `json:"kind"`
	Value       decimal.Decimal `json:"value"`
	Description *string         `json:"description,omitempty"`
}

func (r *CreateRuleRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}
	if r.Kind != string(KindPercentage) && r.Kind != string(KindFixed) {
		errs = append(errs, validator.ValidationError{Field: "kind", Message: "must be 'percentage' or 'fixed'"})
	}
	if !r.Value.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "value", Message: "must be positive"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateRuleRequest struct {
	ID          int64            `json:"-"`
	Name        *string          `json:"name,omitempty"`
	Kind        *string          `json:"kind,omitempty"`
	Value       *decimal.Decimal `json:"value,omitempty"`
	IsActive    *bool            `json:"is_active,omitempty"`
	Description *string          `json:"description,omitempty"`
}

func (r *UpdateRuleRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "must not be empty"})
	}
	if r.Kind != nil && *r.Kind != string(KindPercentage) && *r.Kind != string(KindFixed) {
		errs = append(errs, validator.ValidationError{Field: "kind", Message: "must be 'percentage' or 'fixed'"})
	}
	if r.Value != nil && !r.Value.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "value", Message: "must be positive"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RuleResponse struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Kind        string          `json:"kind"`
	Value       decimal.Decimal `json:"value"`
	IsActive    bool            `json:"is_active"`
	Description *string         `json:"description,omitempty"`
}
