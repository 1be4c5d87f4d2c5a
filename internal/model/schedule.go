package model

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

type Frequency string

const (
	FrequencyMonthly Frequency = "Monthly"
)

const (
	MinDueDay = 1
	MaxDueDay = 31
)

// Frequencies lists the supported recurrence frequencies.
var Frequencies = []Frequency{FrequencyMonthly}

// ParseFrequency matches s case-insensitively against the supported frequencies.
func ParseFrequency(s string) (Frequency, error) {
	for _, f := range Frequencies {
		if strings.EqualFold(strings.TrimSpace(s), string(f)) {
			return f, nil
		}
	}
	return "", fmt.Errorf("unsupported frequency '%s' (supported: %v)", s, Frequencies)
}

// ScheduledTransaction is a recurring monthly obligation, identified by its
// unique ScheduleName.
type ScheduledTransaction struct {
	ID            int64
	ScheduleName  string
	Account       string
	Type          string
	Frequency     Frequency
	DueDay        int
	PaymentAmount decimal.Decimal
}
