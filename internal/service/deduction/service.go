package deduction

import (
	"context"

	"github.com/paydeck/payroll-backend-go/internal/domain/deduction"
)

type RuleServiceImpl struct {
	deductionRepo deduction.RuleRepository
}

func NewRuleService(deductionRepo deduction.RuleRepository) deduction.RuleService {
	return &RuleServiceImpl{deductionRepo: deductionRepo}
}

func (s *RuleServiceImpl) Create(ctx context.Context, req deduction.CreateRuleRequest) (deduction.RuleResponse, error) {
	if err := req.Validate(); err != nil {
		return deduction.RuleResponse{}, err
	}

	// Only one active rule may carry a name at a time. Inactive rules keep
	// their name so old payslip lines stay attributable.
	exists, err := s.deductionRepo.ExistsActiveName(ctx, req.Name, 0)
	if err != nil {
		return deduction.RuleResponse{}, err
	}
	if exists {
		return deduction.RuleResponse{}, deduction.ErrActiveNameExists
	}

	created, err := s.deductionRepo.Create(ctx, deduction.Rule{
		Name:        req.Name,
		Kind:        deduction.Kind(req.Kind),
		Value:       req.Value,
		IsActive:    true,
		Description: req.Description,
	})
	if err != nil {
		return deduction.RuleResponse{}, err
	}

	return mapToResponse(created), nil
}

func (s *RuleServiceImpl) Update(ctx context.Context, req deduction.UpdateRuleRequest) (deduction.RuleResponse, error) {
	if err := req.Validate(); err != nil {
		return deduction.RuleResponse{}, err
	}

	current, err := s.deductionRepo.GetByID(ctx, req.ID)
	if err != nil {
		return deduction.RuleResponse{}, err
	}

	// Renaming or reactivating must not collide with another active rule.
	name := current.Name
	if req.Name != nil {
		name = *req.Name
	}
	active := current.IsActive
	if req.IsActive != nil {
		active = *req.IsActive
	}
	if active {
		exists, err := s.deductionRepo.ExistsActiveName(ctx, name, req.ID)
		if err != nil {
			return deduction.RuleResponse{}, err
		}
		if exists {
			return deduction.RuleResponse{}, deduction.ErrActiveNameExists
		}
	}

	updated, err := s.deductionRepo.Update(ctx, req)
	if err != nil {
		return deduction.RuleResponse{}, err
	}

	return mapToResponse(updated), nil
}

func (s *RuleServiceImpl) List(ctx context.Context, activeOnly bool) ([]deduction.RuleResponse, error) {
	rules, err := s.deductionRepo.List(ctx, activeOnly)
	if err != nil {
		return nil, err
	}

	result := make([]deduction.RuleResponse, 0, len(rules))
	for _, rule := range rules {
		result = append(result, mapToResponse(rule))
	}
	return result, nil
}

func mapToResponse(rule deduction.Rule) deduction.RuleResponse {
	return deduction.RuleResponse{
		ID:          rule.ID,
		Name:        rule.Name,
		Kind:        string(rule.Kind),
		Value:       rule.Value,
		IsActive:    rule.IsActive,
		Description: rule.Description,
	}
}
