package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/paydeck/payroll-backend-go/internal/domain/deduction"
	"github.com/paydeck/payroll-backend-go/internal/pkg/database"
)

type deductionRepository struct {
	db database.Querier
}

func NewDeductionRepository(db database.Querier) deduction.RuleRepository {
	return &deductionRepository{db: db}
}

const ruleColumns = `id, name, kind, value, is_active, description, created_at, updated_at`

func scanRule(row pgx.Row) (deduction.Rule, error) {
	var d deduction.Rule
	err := row.Scan(
		&d.ID, &d.Name, &d.Kind, &d.Value, &d.IsActive, &d.Description,
		&d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return deduction.Rule{}, deduction.ErrRuleNotFound
		}
		return deduction.Rule{}, err
	}
	return d, nil
}

func (r *deductionRepository) Create(ctx context.Context, rule deduction.Rule) (deduction.Rule, error) {
	query := `
		INSERT INTO deduction_configs (name, kind, value, is_active, description)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + ruleColumns

	created, err := scanRule(r.db.QueryRow(ctx, query,
		rule.Name, rule.Kind, rule.Value, rule.IsActive, rule.Description,
	))
	if err != nil {
		return deduction.Rule{}, fmt.Errorf("failed to create deduction rule: %w", err)
	}

	return created, nil
}

func (r *deductionRepository) GetByID(ctx context.Context, id int64) (deduction.Rule, error) {
	query := `SELECT ` + ruleColumns + ` FROM deduction_configs WHERE id = $1`

	rule, err := scanRule(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, deduction.ErrRuleNotFound) {
			return deduction.Rule{}, err
		}
		return deduction.Rule{}, fmt.Errorf("failed to get deduction rule: %w", err)
	}
	return rule, nil
}

func (r *deductionRepository) Update(ctx context.Context, req deduction.UpdateRuleRequest) (deduction.Rule, error) {
	setParts := []string{"updated_at = NOW()"}
	args := []interface{}{req.ID}
	argIdx := 2

	if req.Name != nil {
		setParts = append(setParts, fmt.Sprintf("name = $%d", argIdx))
		args = append(args, *req.Name)
		argIdx++
	}
	if req.Kind != nil {
		setParts = append(setParts, fmt.Sprintf("kind = $%d", argIdx))
		args = append(args, *req.Kind)
		argIdx++
	}
	if req.Value != nil {
		setParts = append(setParts, fmt.Sprintf("value = $%d", argIdx))
		args = append(args, *req.Value)
		argIdx++
	}
	if req.IsActive != nil {
		setParts = append(setParts, fmt.Sprintf("is_active = $%d", argIdx))
		args = append(args, *req.IsActive)
		argIdx++
	}
	if req.Description != nil {
		setParts = append(setParts, fmt.Sprintf("description = $%d", argIdx))
		args = append(args, *req.Description)
		argIdx++
	}

	query := fmt.Sprintf(`
		UPDATE deduction_configs
		SET %s
		WHERE id = $1
		RETURNING `+ruleColumns, strings.Join(setParts, ", "))

	updated, err := scanRule(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, deduction.ErrRuleNotFound) {
			return deduction.Rule{}, err
		}
		return deduction.Rule{}, fmt.Errorf("failed to update deduction rule: %w", err)
	}

	return updated, nil
}

func (r *deductionRepository) List(ctx context.Context, activeOnly bool) ([]deduction.Rule, error) {
	query := `SELECT ` + ruleColumns + ` FROM deduction_configs`
	if activeOnly {
		query += " WHERE is_active = true"
	}
	// Stable retrieval order keeps payslip deduction lines deterministic.
	query += " ORDER BY id"

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list deduction rules: %w", err)
	}
	defer rows.Close()

	var rules []deduction.Rule
	for rows.Next() {
		rule, err := scanRule(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan deduction rule: %w", err)
		}
		rules = append(rules, rule)
	}

	return rules, rows.Err()
}

func (r *deductionRepository) ExistsActiveName(ctx context.Context, name string, excludeID int64) (bool, error) {
	query := `SELECT EXISTS (
		SELECT 1 FROM deduction_configs
		WHERE name = $1 AND is_active = true AND id <> $2
	)`

	var exists bool
	if err := r.db.QueryRow(ctx, query, name, excludeID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check active deduction name: %w", err)
	}
	return exists, nil
}
