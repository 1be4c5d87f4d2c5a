package prompts

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/hance08/clevercash/internal/model"
	"github.com/hance08/clevercash/internal/validation"
)

// ScheduleAnswers holds the raw text of the scheduled transaction form.
type ScheduleAnswers struct {
	Name      string
	Account   string
	Type      string
	Frequency string
	DueDay    string
	Payment   string
}

func PromptScheduleForm(title string, accounts, types []string, defaults ScheduleAnswers, nameValidator func(string) error) (ScheduleAnswers, error) {
	if len(accounts) == 0 {
		return ScheduleAnswers{}, fmt.Errorf("no accounts yet, create one with 'clevercash account create'")
	}
	if len(types) == 0 {
		return ScheduleAnswers{}, fmt.Errorf("no transaction types yet, add one with 'clevercash type add'")
	}

	frequencies := make([]string, 0, len(model.Frequencies))
	for _, f := range model.Frequencies {
		frequencies = append(frequencies, string(f))
	}

	answers := ScheduleAnswers{
		Account:   defaults.Account,
		Type:      defaults.Type,
		Frequency: defaults.Frequency,
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewNote().Title(title),
			inputField("Schedule Name:", "", defaults.Name, &answers.Name, nameValidator),
			selectField("Account:", accounts, &answers.Account),
			selectField("Transaction Type:", types, &answers.Type),
		),
		huh.NewGroup(
			selectField("Frequency:", frequencies, &answers.Frequency),
			inputField("Due Day (1-31):", "Day of the month the payment is due", defaults.DueDay, &answers.DueDay, validation.ValidateDueDayInput),
			inputField("Payment Amount:", "", defaults.Payment, &answers.Payment, validation.ValidateAmountInput),
		),
	)

	if err := form.Run(); err != nil {
		return ScheduleAnswers{}, err
	}

	answers.Name = orDefault(answers.Name, defaults.Name)
	answers.DueDay = orDefault(answers.DueDay, defaults.DueDay)
	answers.Payment = orDefault(answers.Payment, defaults.Payment)
	return answers, nil
}
