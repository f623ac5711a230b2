package employee

import "errors"

var (
	ErrEmployeeNotFound  = errors.New("employee not found")
	ErrBadgeNumberExists = errors.New("badge number already exists")
	ErrEmailExists       = errors.New("email already registered")
)
