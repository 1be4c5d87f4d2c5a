package account

import (
	"fmt"
	"time"

	"github.com/hance08/clevercash/internal/model"
	"github.com/hance08/clevercash/internal/service"
	"github.com/hance08/clevercash/internal/ui/prompts"
	"github.com/hance08/clevercash/internal/validation"
)

// toInput parses the raw account fields. An empty date means today.
func toInput(answers prompts.AccountAnswers, today time.Time) (service.AccountInput, error) {
	date, err := validation.ParseDate(answers.OpeningDate, today)
	if err != nil {
		return service.AccountInput{}, fmt.Errorf("opening date: %w", err)
	}

	balance, err := validation.ParseAmount(answers.OpeningBalance)
	if err != nil {
		return service.AccountInput{}, fmt.Errorf("opening balance: %w", err)
	}

	return service.AccountInput{
		Name:           answers.Name,
		OpeningDate:    date,
		OpeningBalance: balance,
	}, nil
}

func toAnswers(acc *model.Account) prompts.AccountAnswers {
	return prompts.AccountAnswers{
		Name:           acc.Name,
		OpeningDate:    acc.OpeningDate.Format(model.DateLayout),
		OpeningBalance: acc.OpeningBalance.StringFixed(2),
	}
}
