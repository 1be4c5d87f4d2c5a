package service

import "errors"

var (
	ErrUnknownAccount = errors.New("account does not exist")
	ErrUnknownType    = errors.New("transaction type does not exist")
)
