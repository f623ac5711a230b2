package deduction

import "errors"

var (
	ErrRuleNotFound     = errors.New("deduction rule not found")
	ErrActiveNameExists = errors.New("an active deduction rule with this name already exists")
)
