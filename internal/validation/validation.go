package validation

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/hance08/clevercash/internal/constants"
	"github.com/hance08/clevercash/internal/model"
	"github.com/shopspring/decimal"
)

var (
	ErrEmptyName       = errors.New("name can't be empty")
	ErrNameTooLong     = fmt.Errorf("name too long (max %d characters)", constants.MaxNameLen)
	ErrInvalidAmount   = errors.New("amount must be a non-negative number with at most 2 decimals")
	ErrAmountTooLarge  = fmt.Errorf("amount can't exceed %s", constants.MaxAmount)
	ErrInvalidDueDay   = fmt.Errorf("due day must be between %d and %d", model.MinDueDay, model.MaxDueDay)
	ErrInvalidDate     = errors.New("invalid date format, use YYYY-MM-DD")
	ErrEmptyDesc       = errors.New("description is required")
	ErrDescTooLong     = fmt.Errorf("description too long (max %d characters)", constants.MaxDescriptionLen)
	ErrAmountsRequired = errors.New("either payment amount or deposit amount is required")
)

var maxAmount = decimal.RequireFromString(constants.MaxAmount)

// ValidateName checks a name used as a unique key (account, type, schedule).
func ValidateName(name string) error {
	name = strings.TrimSpace(name)

	if name == "" {
		return ErrEmptyName
	}
	if len(name) > constants.MaxNameLen {
		return ErrNameTooLong
	}
	return nil
}

func ValidateDescription(desc string) error {
	desc = strings.TrimSpace(desc)
	if desc == "" {
		return ErrEmptyDesc
	}
	if len(desc) > constants.MaxDescriptionLen {
		return ErrDescTooLong
	}
	return nil
}

// ParseAmount parses a user supplied amount such as "150", "150.5" or
// "1,250.00". An empty string is zero. Trailing zeros past the cents are
// accepted; a non-zero third decimal is not.
func ParseAmount(s string) (decimal.Decimal, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	if s == "" {
		return decimal.Zero, nil
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, ErrInvalidAmount
	}
	if d.IsNegative() || !d.Equal(d.Round(2)) {
		return decimal.Zero, ErrInvalidAmount
	}
	if d.GreaterThan(maxAmount) {
		return decimal.Zero, ErrAmountTooLarge
	}
	return d, nil
}

// ValidateAmountInput is ParseAmount shaped as a prompt validator.
func ValidateAmountInput(s string) error {
	_, err := ParseAmount(s)
	return err
}

func ParseDueDay(s string) (int, error) {
	day, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, ErrInvalidDueDay
	}
	if err := ValidateDueDay(day); err != nil {
		return 0, err
	}
	return day, nil
}

func ValidateDueDay(day int) error {
	if day < model.MinDueDay || day > model.MaxDueDay {
		return ErrInvalidDueDay
	}
	return nil
}

func ValidateDueDayInput(s string) error {
	_, err := ParseDueDay(s)
	return err
}

// ParseDate parses YYYY-MM-DD. An empty string yields fallback.
func ParseDate(s string, fallback time.Time) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return model.DateOf(fallback), nil
	}
	t, err := model.ParseDate(s)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return t, nil
}

func ValidateDateInput(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	_, err := ParseDate(s, time.Time{})
	return err
}

var ErrInvalidCurrency = errors.New("currency must be a 3 letter ISO 4217 code such as USD")

// ValidateCurrency accepts upper-case three letter codes.
func ValidateCurrency(code string) error {
	if len(code) != 3 {
		return ErrInvalidCurrency
	}
	for _, r := range code {
		if r < 'A' || r > 'Z' {
			return ErrInvalidCurrency
		}
	}
	return nil
}
