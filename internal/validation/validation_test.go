package validation

import (
	"strings"
	"testing"
	"time"

	"github.com/hance08/clevercash/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateName(t *testing.T) {
	assert.NoError(t, ValidateName("Checking"))
	assert.ErrorIs(t, ValidateName("   "), ErrEmptyName)
	assert.ErrorIs(t, ValidateName(strings.Repeat("a", 101)), ErrNameTooLong)
}

func TestValidateDescription(t *testing.T) {
	assert.NoError(t, ValidateDescription("Groceries"))
	assert.ErrorIs(t, ValidateDescription(""), ErrEmptyDesc)
	assert.ErrorIs(t, ValidateDescription(strings.Repeat("x", 201)), ErrDescTooLong)
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr error
	}{
		{in: "", want: "0"},
		{in: "150", want: "150"},
		{in: "150.5", want: "150.5"},
		{in: " 1,250.00 ", want: "1250"},
		{in: "0.01", want: "0.01"},
		{in: "-5", wantErr: ErrInvalidAmount},
		{in: "1.500", want: "1.5"},
		{in: "10.00000", want: "10"},
		{in: "1.234", wantErr: ErrInvalidAmount},
		{in: "2.0001", wantErr: ErrInvalidAmount},
		{in: "abc", wantErr: ErrInvalidAmount},
		{in: "1000000000.01", wantErr: ErrAmountTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseAmount(tt.in)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestParseDueDay(t *testing.T) {
	day, err := ParseDueDay("15")
	require.NoError(t, err)
	assert.Equal(t, 15, day)

	for _, in := range []string{"0", "32", "x", ""} {
		_, err := ParseDueDay(in)
		assert.ErrorIs(t, err, ErrInvalidDueDay, in)
	}
	assert.NoError(t, ValidateDueDayInput("31"))
}

func TestParseDate(t *testing.T) {
	fallback := time.Date(2024, time.March, 10, 18, 30, 0, 0, time.UTC)

	got, err := ParseDate("", fallback)
	require.NoError(t, err)
	assert.True(t, got.Equal(model.NewDate(2024, time.March, 10)))

	got, err = ParseDate("2023-12-31", fallback)
	require.NoError(t, err)
	assert.Equal(t, 2023, got.Year())

	_, err = ParseDate("31/12/2023", fallback)
	assert.ErrorIs(t, err, ErrInvalidDate)
	assert.NoError(t, ValidateDateInput(""))
	assert.ErrorIs(t, ValidateDateInput("2023-02-30"), ErrInvalidDate)
}

func TestValidateCurrency(t *testing.T) {
	assert.NoError(t, ValidateCurrency("TWD"))
	for _, in := range []string{"", "usd", "US", "EURO", "U$D"} {
		assert.ErrorIs(t, ValidateCurrency(in), ErrInvalidCurrency, in)
	}
}
