package account

import (
	"testing"
	"time"

	"github.com/hance08/clevercash/internal/model"
	"github.com/hance08/clevercash/internal/ui/prompts"
	"github.com/hance08/clevercash/internal/validation"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToInput(t *testing.T) {
	today := time.Date(2024, time.July, 4, 12, 0, 0, 0, time.UTC)

	input, err := toInput(prompts.AccountAnswers{Name: "Checking", OpeningBalance: "1,500.25"}, today)
	require.NoError(t, err)
	assert.Equal(t, "Checking", input.Name)
	assert.True(t, input.OpeningDate.Equal(model.NewDate(2024, time.July, 4)))
	assert.True(t, input.OpeningBalance.Equal(decimal.RequireFromString("1500.25")))

	_, err = toInput(prompts.AccountAnswers{Name: "Checking", OpeningDate: "07/04/2024"}, today)
	assert.ErrorIs(t, err, validation.ErrInvalidDate)

	_, err = toInput(prompts.AccountAnswers{Name: "Checking", OpeningBalance: "ten"}, today)
	assert.ErrorIs(t, err, validation.ErrInvalidAmount)
}

func TestToAnswersRoundTrip(t *testing.T) {
	acc := &model.Account{
		Name:           "Savings",
		OpeningDate:    model.NewDate(2023, time.December, 31),
		OpeningBalance: decimal.RequireFromString("10"),
	}

	answers := toAnswers(acc)
	assert.Equal(t, prompts.AccountAnswers{Name: "Savings", OpeningDate: "2023-12-31", OpeningBalance: "10.00"}, answers)

	merged := mergeFlags(answers, &createFlags{Balance: "20"})
	assert.Equal(t, "Savings", merged.Name)
	assert.Equal(t, "20", merged.OpeningBalance)
}
