package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the on-disk and on-screen format for calendar dates.
const DateLayout = "2006-01-02"

// Transaction is a posted, one-off entry. Account and Type are referenced by
// name. Absent amounts are zero.
type Transaction struct {
	ID            int64
	Account       string
	Type          string
	Date          time.Time
	Description   string
	PaymentAmount decimal.Decimal
	DepositAmount decimal.Decimal
}

// NewDate returns the UTC midnight of the given calendar day.
func NewDate(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a YYYY-MM-DD string into a date.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, s, time.UTC)
}

// DateOf truncates t to its calendar day, keeping the wall clock date.
func DateOf(t time.Time) time.Time {
	return NewDate(t.Year(), t.Month(), t.Day())
}
