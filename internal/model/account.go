package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type Account struct {
	ID             int64
	Name           string
	OpeningDate    time.Time
	OpeningBalance decimal.Decimal
}

// TransactionType is an entry of the category catalog (Rent, Food, ...).
type TransactionType struct {
	ID   int64
	Name string
}
