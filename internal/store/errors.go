package store

import "errors"

var (
	ErrAccountExists         = errors.New("account already exists")
	ErrScheduleExists        = errors.New("scheduled transaction name already exists")
	ErrTransactionTypeExists = errors.New("transaction type already exists")
	ErrRecordNotFound        = errors.New("record not found")
	ErrInvalidRecord         = errors.New("invalid record")
	ErrConstraintViolation   = errors.New("database constraint violation")
)
