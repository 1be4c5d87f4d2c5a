package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// MonthlyBucket is one point of a calendar-year series.
type MonthlyBucket struct {
	Month time.Month
	Total decimal.Decimal
}

// TypeTotal is the summed payment amount of one transaction type.
type TypeTotal struct {
	Type  string
	Total decimal.Decimal
}
