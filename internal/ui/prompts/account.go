package prompts

import (
	"github.com/charmbracelet/huh"
	"github.com/hance08/clevercash/internal/validation"
)

// AccountAnswers holds the raw text of the account form.
type AccountAnswers struct {
	Name           string
	OpeningDate    string
	OpeningBalance string
}

// PromptAccountForm asks for every account field. Fields of defaults are
// shown as placeholders and used when left empty.
func PromptAccountForm(title string, defaults AccountAnswers, nameValidator func(string) error) (AccountAnswers, error) {
	var answers AccountAnswers

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewNote().Title(title),
			inputField("Account Name:", "", defaults.Name, &answers.Name, nameValidator),
			inputField("Opening Date (YYYY-MM-DD):", "Press Enter for the shown date", defaults.OpeningDate, &answers.OpeningDate, validation.ValidateDateInput),
			inputField("Opening Balance:", "Press Enter for the shown amount", defaults.OpeningBalance, &answers.OpeningBalance, validation.ValidateAmountInput),
		),
	)

	if err := form.Run(); err != nil {
		return AccountAnswers{}, err
	}

	answers.Name = orDefault(answers.Name, defaults.Name)
	answers.OpeningDate = orDefault(answers.OpeningDate, defaults.OpeningDate)
	answers.OpeningBalance = orDefault(answers.OpeningBalance, defaults.OpeningBalance)
	return answers, nil
}
